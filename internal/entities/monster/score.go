package monster

import (
	"bytes"
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
)

// Score is an ability score that may be absent. Absent is not zero: a
// creature without Constitution has no Con modifier at all. The zero value
// is absent.
type Score struct {
	value   int
	present bool
}

// NoScore is the absent score
var NoScore = Score{}

// NewScore returns a present score
func NewScore(v int) Score {
	return Score{value: v, present: true}
}

// Value returns the score and whether it is present
func (s Score) Value() (int, bool) {
	return s.value, s.present
}

// Present reports whether the creature has this score
func (s Score) Present() bool {
	return s.present
}

// Modifier is floor((score-10)/2); ok is false when the score is absent
func (s Score) Modifier() (int, bool) {
	if !s.present {
		return 0, false
	}
	return floorDiv(s.value-10, 2), true
}

// Add shifts a present score; absent scores stay absent
func (s Score) Add(delta int) Score {
	if !s.present {
		return s
	}
	return NewScore(s.value + delta)
}

// AddFloored shifts a present score and clamps it at floor
func (s Score) AddFloored(delta, floor int) Score {
	if !s.present {
		return s
	}
	return NewScore(max(s.value+delta, floor))
}

func (s Score) String() string {
	if !s.present {
		return "-"
	}
	return strconv.Itoa(s.value)
}

// MarshalJSON writes null for an absent score
func (s Score) MarshalJSON() ([]byte, error) {
	if !s.present {
		return []byte("null"), nil
	}
	return json.Marshal(s.value)
}

// UnmarshalJSON reads a number or null
func (s *Score) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*s = NoScore
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return errors.InvalidArgumentf("ability score must be a number or null: %s", string(data))
	}
	*s = NewScore(v)
	return nil
}

// MarshalYAML writes null for an absent score
func (s Score) MarshalYAML() (interface{}, error) {
	if !s.present {
		return nil, nil
	}
	return s.value, nil
}

// UnmarshalYAML reads a number, null, "~" or "-"
func (s *Score) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.InvalidArgumentf("ability score must be a scalar at line %d", value.Line)
	}
	if value.Tag == "!!null" || value.Value == "-" || value.Value == "" {
		*s = NoScore
		return nil
	}
	var v int
	if err := value.Decode(&v); err != nil {
		return errors.InvalidArgumentf("ability score %q at line %d is not a number", value.Value, value.Line)
	}
	*s = NewScore(v)
	return nil
}

// IsZero lets omitempty drop absent scores
func (s Score) IsZero() bool {
	return !s.present
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
