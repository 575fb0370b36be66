// Package stage holds the state machine for the verse reveal sequence.
package stage

import (
	"errors"
	"fmt"
	"sync"
)

// Stage is the current phase of the verse reveal sequence.
type Stage int

const (
	// StageLoading is the phase before the first fetch completes.
	StageLoading Stage = iota
	// StageOpen is the phase where the page is open and the reveal may play.
	StageOpen
	// StageTurn is a transient label during the page turn; it renders the
	// same as StageOpen and exists only so a reveal in progress can be named.
	StageTurn
	// StageDisplay is the phase after the reveal finished.
	StageDisplay
)

func (s Stage) String() string {
	switch s {
	case StageLoading:
		return "loading"
	case StageOpen:
		return "open"
	case StageTurn:
		return "turn"
	case StageDisplay:
		return "display"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Event is an input to the stage machine.
type Event int

const (
	// EventReady fires when the launch sequence (fetch + schedule) completes.
	EventReady Event = iota
	// EventRevealDone fires when the presentation layer reports the page
	// turn animation finished.
	EventRevealDone
	// EventRefresh fires on a user refresh action.
	EventRefresh
)

func (e Event) String() string {
	switch e {
	case EventReady:
		return "ready"
	case EventRevealDone:
		return "reveal_done"
	case EventRefresh:
		return "refresh"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

var ErrInvalidTransition = errors.New("invalid stage transition")

// Controller applies events to the current stage. StageDisplay is reachable
// only through EventRevealDone, and StageLoading only exists before the
// first EventReady.
type Controller struct {
	mu    sync.Mutex
	stage Stage
}

func NewController() *Controller {
	return &Controller{stage: StageLoading}
}

// Stage returns the current stage.
func (c *Controller) Stage() Stage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stage
}

// Apply transitions the machine with the given event and returns the new
// stage. Events that have no transition from the current stage leave the
// stage untouched and return ErrInvalidTransition.
func (c *Controller) Apply(ev Event) (Stage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := transition(c.stage, ev)
	if err != nil {
		return c.stage, err
	}
	c.stage = next
	return next, nil
}

func transition(cur Stage, ev Event) (Stage, error) {
	switch cur {
	case StageLoading:
		if ev == EventReady {
			return StageOpen, nil
		}
	case StageOpen, StageTurn:
		switch ev {
		case EventRevealDone:
			return StageDisplay, nil
		case EventRefresh:
			// Refresh restarts the reveal regardless of previous stage.
			return StageOpen, nil
		}
	case StageDisplay:
		if ev == EventRefresh {
			return StageOpen, nil
		}
	}
	return cur, fmt.Errorf("%w: %s in %s", ErrInvalidTransition, ev, cur)
}
