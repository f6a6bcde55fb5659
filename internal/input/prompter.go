package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"endgame-lab/internal/domain"
)

// ErrInputClosed is returned when the reader ends before a valid value was read.
var ErrInputClosed = errors.New("input closed before a valid value was entered")

// Prompter reads validated values from a terminal, re-prompting on bad input.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a prompter reading lines from r and writing prompts to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(r), out: w}
}

// ReadProbability prompts until a number in [0,1] is entered.
func (p *Prompter) ReadProbability(prompt string) (float64, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintf(p.out, "Invalid input: could not convert %q to a number. Please enter a number between 0 and 1.\n", line)
			continue
		}
		if err := domain.ValidateProbability("probability", v); err != nil {
			fmt.Fprintln(p.out, "Invalid input: Statistic must be between 0 and 1. Please enter a number between 0 and 1.")
			continue
		}
		return v, nil
	}
}

// ReadTeamParameters prompts for every team probability. Each field is re-prompted on its own.
func (p *Prompter) ReadTeamParameters() (domain.TeamParameters, error) {
	var params domain.TeamParameters
	fields := []struct {
		prompt string
		dst    *float64
	}{
		{"Your team's 3-point probability: ", &params.ThreePointProbability},
		{"Your team's 2-point probability: ", &params.TwoPointProbability},
		{"Your team's overtime win probability: ", &params.OvertimeWinProbability},
		{"Your team's offensive rebound probability: ", &params.OffensiveReboundProbability},
	}
	for _, f := range fields {
		v, err := p.ReadProbability(f.prompt)
		if err != nil {
			return domain.TeamParameters{}, err
		}
		*f.dst = v
	}
	return params, nil
}

// ReadTrialCount prompts until a positive integer is entered.
func (p *Prompter) ReadTrialCount() (int, error) {
	for {
		line, err := p.readLine("Enter the number of trials for the simulation: ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(p.out, "Invalid input: could not convert %q to an integer. Please enter a positive integer.\n", line)
			continue
		}
		if n <= 0 {
			fmt.Fprintln(p.out, "Invalid input: Number of trials must be a positive integer. Please enter a positive integer.")
			continue
		}
		return n, nil
	}
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}
