package form

import (
	"log"

	"github.com/google/uuid"
)

// Store owns the FormState of one mounted form. It is not safe for
// concurrent use; bubbletea delivers messages to a model one at a time.
type Store struct {
	id    string
	state FormState
}

func NewStore() *Store {
	return &Store{id: uuid.NewString(), state: InitialState()}
}

// ID identifies this mount in logs.
func (s *Store) ID() string {
	return s.id
}

func (s *Store) State() FormState {
	return s.state
}

// Dispatch runs action through Reduce and keeps the result.
func (s *Store) Dispatch(action Action) FormState {
	s.state = Reduce(s.state, action)
	log.Printf("form %s: %s", s.id, action.Type)
	return s.state
}

// Submit validates the current fields and dispatches either ShowModal or
// SetLoggedIn.
func (s *Store) Submit() FormState {
	return s.Dispatch(Validate(s.state))
}
