// Package templates implements the rule packages that derive a creature
// variant from a base creature.
//
// Every template checks a precondition, then mutates a clone. The input
// creature is never modified, whether Apply succeeds or not.
package templates

import (
	"strings"

	"github.com/KirkDiggler/rpg-bestiary/internal/entities/monster"
	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
)

// Template is a named, stateless transformation of a creature
type Template interface {
	Kind() Kind
	Name() string
	IsCompatible(c *monster.Creature) bool
	// Apply returns a new creature. Incompatibility is reported as a
	// FailedPrecondition error carrying DiagnosticMessage.
	Apply(c *monster.Creature) (*monster.Creature, error)
	DiagnosticMessage() string
}

// Kind identifies one of the known templates
type Kind int

// Known templates
const (
	KindUnspecified Kind = iota
	KindAdvanced
	KindGiant
	KindYoung
)

// Kinds returns every known template kind in display order
func Kinds() []Kind {
	return []Kind{KindAdvanced, KindGiant, KindYoung}
}

// ParseKind resolves a case-insensitive template name
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "advanced":
		return KindAdvanced, nil
	case "giant":
		return KindGiant, nil
	case "young":
		return KindYoung, nil
	}
	return KindUnspecified, errors.InvalidArgumentf("unknown template %q", name).
		WithMeta("template", name)
}

// String is the lower-case key used in slugs and requests
func (k Kind) String() string {
	switch k {
	case KindAdvanced:
		return "advanced"
	case KindGiant:
		return "giant"
	case KindYoung:
		return "young"
	}
	return "unspecified"
}

// Template returns the implementation for k
func (k Kind) Template() (Template, error) {
	switch k {
	case KindAdvanced:
		return Advanced{}, nil
	case KindGiant:
		return Giant{}, nil
	case KindYoung:
		return Young{}, nil
	}
	return nil, errors.InvalidArgumentf("unknown template kind %d", int(k))
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// incompatible builds the error Apply returns when a template cannot be
// applied. cause is the lower-level failure, if any.
func incompatible(t Template, c *monster.Creature, cause error) error {
	var err *errors.Error
	if cause != nil {
		err = errors.WrapWithCode(cause, errors.CodeFailedPrecondition, t.DiagnosticMessage())
	} else {
		err = errors.FailedPrecondition(t.DiagnosticMessage())
	}
	return err.WithMeta("template", t.Name()).WithMeta("creature", c.Name)
}
