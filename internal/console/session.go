package console

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mamadbah2/boletim/internal/domain/models"
)

// State is the step the menu conversation is in.
type State string

const (
	StateAwaitingChoice         State = "AWAITING_CHOICE"
	StateRegistering            State = "REGISTERING"
	StateListing                State = "LISTING"
	StateSearching              State = "SEARCHING"
	StateComputingAverages      State = "COMPUTING_AVERAGES"
	StateClassifyingBySituation State = "CLASSIFYING_BY_SITUATION"
	StateExiting                State = "EXITING"
)

var commandStates = map[models.CommandType]State{
	models.CommandRegister:  StateRegistering,
	models.CommandList:      StateListing,
	models.CommandSearch:    StateSearching,
	models.CommandAverages:  StateComputingAverages,
	models.CommandSituation: StateClassifyingBySituation,
	models.CommandExit:      StateExiting,
}

// Session tracks the conversation state. Every operation returns to
// AwaitingChoice; Exiting is terminal.
type Session struct {
	state  State
	logger *zap.Logger
}

// NewSession starts a session waiting for a menu choice.
func NewSession(logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{state: StateAwaitingChoice, logger: logger}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Done reports whether the session reached Exiting.
func (s *Session) Done() bool {
	return s.state == StateExiting
}

// Begin moves from AwaitingChoice into the state serving cmd. Unknown commands
// keep the session where it is and report false.
func (s *Session) Begin(cmd models.Command) (State, bool, error) {
	if s.state != StateAwaitingChoice {
		return s.state, false, fmt.Errorf("cannot start %s while %s", cmd.Type, s.state)
	}
	next, ok := commandStates[cmd.Type]
	if !ok {
		return s.state, false, nil
	}
	s.transition(next)
	return next, true, nil
}

// Finish returns to AwaitingChoice after an operation. It is a no-op once exiting.
func (s *Session) Finish() {
	if s.state == StateExiting || s.state == StateAwaitingChoice {
		return
	}
	s.transition(StateAwaitingChoice)
}

// Exit moves straight to the terminal state.
func (s *Session) Exit() {
	if s.state != StateExiting {
		s.transition(StateExiting)
	}
}

func (s *Session) transition(next State) {
	s.logger.Debug("session transition", zap.String("from", string(s.state)), zap.String("to", string(next)))
	s.state = next
}
