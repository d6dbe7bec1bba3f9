package mtrand

import (
	"fmt"

	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"

	"github.com/nozzle/mtrand/internal/rand"
)

// MarshalEasyJSON writes s as {"mode":..,"left":..,"next":..,"state":[..]}.
func (s Snapshot) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"mode":`)
	w.String(s.Mode.String())
	w.RawString(`,"left":`)
	w.Int(s.Left)
	w.RawString(`,"next":`)
	w.Int(s.Next)
	w.RawString(`,"state":[`)
	for i, v := range s.Words {
		if i > 0 {
			w.RawByte(',')
		}
		w.Uint32(v)
	}
	w.RawString(`]}`)
}

// MarshalJSON implements json.Marshaler.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	w := jwriter.Writer{}
	s.MarshalEasyJSON(&w)
	return w.Buffer.BuildBytes(), w.Error
}

// UnmarshalEasyJSON reads the object written by MarshalEasyJSON. Unknown
// keys are skipped.
func (s *Snapshot) UnmarshalEasyJSON(l *jlexer.Lexer) {
	if l.IsNull() {
		l.Skip()
		return
	}
	l.Delim('{')
	for !l.IsDelim('}') {
		key := l.UnsafeFieldName(false)
		l.WantColon()
		if l.IsNull() {
			l.Skip()
			l.WantComma()
			continue
		}
		switch key {
		case "mode":
			mode, err := rand.ParseMode(l.String())
			if err != nil {
				l.AddError(err)
			}
			s.Mode = mode
		case "left":
			s.Left = l.Int()
		case "next":
			s.Next = l.Int()
		case "state":
			n := 0
			l.Delim('[')
			for !l.IsDelim(']') {
				v := l.Uint32()
				if n < rand.N {
					s.Words[n] = v
				}
				n++
				l.WantComma()
			}
			l.Delim(']')
			if n != rand.N && l.Ok() {
				l.AddError(fmt.Errorf("state has %d words, want %d", n, rand.N))
			}
		default:
			l.SkipRecursive()
		}
		l.WantComma()
	}
	l.Delim('}')
	l.Consumed()
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var out Snapshot
	l := jlexer.Lexer{Data: data}
	out.UnmarshalEasyJSON(&l)
	if err := l.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	if err := out.Validate(); err != nil {
		return err
	}
	*s = out
	return nil
}
