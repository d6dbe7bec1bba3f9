package rand

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects the twist rule and the range mapping.
type Mode uint8

const (
	// MT19937 is the corrected Mersenne Twister, the default since PHP 7.1.
	MT19937 Mode = iota
	// PHP is the legacy twist with the transposed low-bit test and the
	// floating-point range scaling that went with it.
	PHP
)

// ErrUnknownMode is returned when a mode name or number is not recognized.
var ErrUnknownMode = errors.New("unknown mode")

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	switch m {
	case MT19937, PHP:
		return true
	}
	return false
}

func (m Mode) String() string {
	switch m {
	case MT19937:
		return "mt19937"
	case PHP:
		return "php"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode accepts the mode names used by this package as well as PHP's
// MT_RAND_MT19937 (0) and MT_RAND_PHP (1) constants.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mt19937", "correct", "mt_rand_mt19937", "0":
		return MT19937, nil
	case "php", "legacy", "mt_rand_php", "1":
		return PHP, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
