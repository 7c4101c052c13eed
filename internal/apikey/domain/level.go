// Package domain defines the API key payload model: the privilege Level enumeration and
// the Payload record sealed inside every key.
package domain

import (
	"fmt"
)

// Level is the privilege tier carried by an API key.
//
// The set is closed. Values serialize as lowercase strings and are parsed case-sensitively
// so keys issued by independent processes interoperate.
type Level string

const (
	LevelPlatinum Level = "platinum"
	LevelGold     Level = "gold"
	LevelSilver   Level = "silver"
	LevelBronze   Level = "bronze"
)

// DefaultLevel is used when no level is requested.
const DefaultLevel = LevelBronze

// Levels returns every level, from highest to lowest privilege.
func Levels() []Level {
	return []Level{LevelPlatinum, LevelGold, LevelSilver, LevelBronze}
}

// ParseLevel converts a string into a Level. Returns ErrInvalidLevel for anything outside
// the closed set, including case variants.
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if err := l.Validate(); err != nil {
		return "", err
	}
	return l, nil
}

// Validate checks if the level is one of the known tiers.
func (l Level) Validate() error {
	switch l {
	case LevelPlatinum, LevelGold, LevelSilver, LevelBronze:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLevel, string(l))
	}
}

// Rank orders levels: bronze is 1, platinum is 4, unknown levels are 0.
// Key validation never consults it.
func (l Level) Rank() int {
	switch l {
	case LevelPlatinum:
		return 4
	case LevelGold:
		return 3
	case LevelSilver:
		return 2
	case LevelBronze:
		return 1
	default:
		return 0
	}
}

// String returns the wire representation of the level.
func (l Level) String() string {
	return string(l)
}

// MarshalText implements encoding.TextMarshaler. Unknown levels are refused.
func (l Level) MarshalText() ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return []byte(l), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown levels are refused.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
