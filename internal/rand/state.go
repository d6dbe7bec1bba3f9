package rand

import "fmt"

// State is the complete position of a generator: the word buffer, the
// cursor and the mode. Restoring a State resumes the stream exactly.
type State struct {
	Words [N]uint32
	Left  int
	Next  int
	Mode  Mode
}

// Validate checks the cursor invariants. Next always equals N-Left.
func (s *State) Validate() error {
	if !s.Mode.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, uint8(s.Mode))
	}
	if s.Left < 0 || s.Left > N {
		return fmt.Errorf("left %d out of [0, %d]", s.Left, N)
	}
	if s.Next != N-s.Left {
		return fmt.Errorf("next %d does not match left %d", s.Next, s.Left)
	}
	return nil
}

// Save copies the generator position.
func (mt *Engine) Save() State {
	return State{
		Words: mt.state,
		Left:  mt.left,
		Next:  mt.next,
		Mode:  mt.mode,
	}
}

// Load replaces the generator position with s after validating it.
// On error the generator is left untouched.
func (mt *Engine) Load(s State) error {
	if err := s.Validate(); err != nil {
		return err
	}
	mt.state = s.Words
	mt.left = s.Left
	mt.next = s.Next
	mt.mode = s.Mode
	return nil
}
