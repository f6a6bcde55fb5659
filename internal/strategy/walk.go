package strategy

import (
	"endgame-lab/internal/domain"
	"endgame-lab/internal/rng"
)

// phase is the state of a walk.
type phase int

const (
	phaseExchange phase = iota // regulation: possession exchanges while the clock runs
	phaseOvertime              // regulation over without a decisive score
	phaseResolved              // outcome decided
)

// walk is the explicit state threaded through a trial.
type walk struct {
	phase    phase
	timeLeft int
	outcome  domain.TrialOutcome
}

// exchangeFunc plays one possession exchange and returns the next state.
type exchangeFunc func(src rng.Source, input *TrialInput, w walk) walk

// run drives a walk from the initial clock to a resolution.
func run(src rng.Source, input *TrialInput, exchange exchangeFunc) domain.TrialOutcome {
	w := walk{phase: phaseExchange, timeLeft: input.TimeLeft}
	for w.phase != phaseResolved {
		switch w.phase {
		case phaseExchange:
			if w.timeLeft <= 0 {
				w = toOvertime(w)
				continue
			}
			w.outcome.Exchanges++
			w = exchange(src, input, w)
		case phaseOvertime:
			w = overtime(src, input, w)
		}
	}
	return w.outcome
}

// deduct consumes seconds from the clock. When the clock runs out the walk
// moves to overtime and the caller must not act on the remaining exchange.
func deduct(w walk, seconds int) (walk, bool) {
	w.timeLeft -= seconds
	if w.timeLeft <= 0 {
		return toOvertime(w), false
	}
	return w, true
}

func toOvertime(w walk) walk {
	w.phase = phaseOvertime
	w.outcome.TimeLeft = w.timeLeft
	return w
}

// overtime resolves a walk that left regulation without a decisive score.
func overtime(src rng.Source, input *TrialInput, w walk) walk {
	if src.Float64() < input.User.OvertimeWinProbability {
		return resolve(w, true, OvertimePoints, domain.ResolutionOvertimeWin)
	}
	return resolve(w, false, 0, domain.ResolutionOvertimeLoss)
}

func resolve(w walk, won bool, points int, resolution string) walk {
	if w.phase == phaseExchange {
		w.outcome.TimeLeft = w.timeLeft
	}
	w.phase = phaseResolved
	w.outcome.Won = won
	w.outcome.PointsScored += points
	w.outcome.Resolution = resolution
	return w
}
