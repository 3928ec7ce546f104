package monster

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
)

// ChallengeRating is a rung on the CR ladder 1/8, 1/6, 1/4, 1/3, 1/2, 1..30.
// The zero value is unset.
type ChallengeRating int

// Fractional challenge ratings. Integer ratings come from CR.
const (
	CRUnknown ChallengeRating = iota
	CROneEighth
	CROneSixth
	CROneQuarter
	CROneThird
	CROneHalf
)

// MaxCR is the highest integer challenge rating
const MaxCR = 30

var fractions = map[ChallengeRating]string{
	CROneEighth:  "1/8",
	CROneSixth:   "1/6",
	CROneQuarter: "1/4",
	CROneThird:   "1/3",
	CROneHalf:    "1/2",
}

var fractionalXP = map[ChallengeRating]int{
	CROneEighth:  50,
	CROneSixth:   65,
	CROneQuarter: 100,
	CROneThird:   135,
	CROneHalf:    200,
}

// integerXP is indexed by CR-1
var integerXP = []int{
	400, 600, 800, 1200, 1600, 2400, 3200, 4800, 6400, 9600,
	12800, 19200, 25600, 38400, 51200, 76800, 102400, 153600, 204800, 307200,
	409600, 614400, 819200, 1228800, 1638400, 2457600, 3276800, 4915200, 6553600, 9830400,
}

// CR returns the rung for an integer challenge rating 1..30
func CR(n int) ChallengeRating {
	if n < 1 || n > MaxCR {
		return CRUnknown
	}
	return CROneHalf + ChallengeRating(n)
}

// ParseChallengeRating reads "1/8".."1/2" or an integer 1..30
func ParseChallengeRating(s string) (ChallengeRating, error) {
	text := strings.TrimSpace(s)
	text = strings.TrimSpace(strings.TrimPrefix(strings.ToUpper(text), "CR"))
	for cr, label := range fractions {
		if text == label {
			return cr, nil
		}
	}
	n, err := strconv.Atoi(text)
	if err != nil || CR(n) == CRUnknown {
		return CRUnknown, errors.InvalidArgumentf("invalid challenge rating %q", s)
	}
	return CR(n), nil
}

// Valid reports whether c is on the ladder
func (c ChallengeRating) Valid() bool {
	return c >= CROneEighth && c <= CR(MaxCR)
}

// Step moves n rungs along the ladder; false when that leaves it
func (c ChallengeRating) Step(n int) (ChallengeRating, bool) {
	if !c.Valid() {
		return CRUnknown, false
	}
	stepped := c + ChallengeRating(n)
	if !stepped.Valid() {
		return CRUnknown, false
	}
	return stepped, true
}

// Value is the numeric rating, e.g. 0.25 for 1/4
func (c ChallengeRating) Value() float64 {
	switch c {
	case CROneEighth:
		return 0.125
	case CROneSixth:
		return 1.0 / 6
	case CROneQuarter:
		return 0.25
	case CROneThird:
		return 1.0 / 3
	case CROneHalf:
		return 0.5
	}
	if !c.Valid() {
		return 0
	}
	return float64(c - CROneHalf)
}

// XP is the experience award for defeating a creature of this rating
func (c ChallengeRating) XP() int {
	if xp, ok := fractionalXP[c]; ok {
		return xp
	}
	if !c.Valid() {
		return 0
	}
	return integerXP[c-CROneHalf-1]
}

func (c ChallengeRating) String() string {
	if label, ok := fractions[c]; ok {
		return label
	}
	if !c.Valid() {
		return ""
	}
	return strconv.Itoa(int(c - CROneHalf))
}

// MarshalText implements encoding.TextMarshaler
func (c ChallengeRating) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *ChallengeRating) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*c = CRUnknown
		return nil
	}
	parsed, err := ParseChallengeRating(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// UnmarshalJSON accepts both "1/2" and bare integers
func (c *ChallengeRating) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		return c.UnmarshalText([]byte(s))
	}
	return c.UnmarshalText(trimmed)
}

// UnmarshalYAML accepts both "1/2" and bare integers
func (c *ChallengeRating) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.InvalidArgumentf("challenge rating must be a scalar at line %d", value.Line)
	}
	return c.UnmarshalText([]byte(value.Value))
}
