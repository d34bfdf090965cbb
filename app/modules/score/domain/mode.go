package scoredomain

import "fmt"

// Mode is the game mode a score was set in.
type Mode int

const (
	ModeStandard Mode = iota
	ModeTaiko
	ModeCatch
	ModeMania
)

// ParseMode converts the integer play_mode used by the store and the HTTP
// surface into a Mode.
func ParseMode(v int) (Mode, error) {
	m := Mode(v)
	if !m.IsValid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMode, v)
	}
	return m, nil
}

// IsValid reports whether m is one of the four known modes.
func (m Mode) IsValid() bool {
	return m >= ModeStandard && m <= ModeMania
}

func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "std"
	case ModeTaiko:
		return "taiko"
	case ModeCatch:
		return "ctb"
	case ModeMania:
		return "mania"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}
