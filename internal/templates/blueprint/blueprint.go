// Package blueprint composes templates into an ordered pipeline and reports
// where and why a pipeline stopped.
package blueprint

import (
	"github.com/KirkDiggler/rpg-bestiary/internal/entities/monster"
	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
	"github.com/KirkDiggler/rpg-bestiary/internal/templates"
)

// Selection asks for one template applied Count times in a row
type Selection struct {
	Kind  templates.Kind `json:"kind"`
	Count int            `json:"count"`
}

// Step is one application in an expanded blueprint
type Step struct {
	Kind     templates.Kind
	Name     string
	Template templates.Template
}

// Application is a run of one template applied Count times in a row
type Application struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Blueprint is an ordered, repeat-expanded list of templates
type Blueprint struct {
	steps []Step
}

// New expands selections in order. Zero counts are skipped.
func New(selections []Selection) (*Blueprint, error) {
	b := &Blueprint{}
	for i, sel := range selections {
		if sel.Count < 0 {
			return nil, errors.InvalidArgumentf("selection %d: count must not be negative", i).
				WithMeta("template", sel.Kind.String())
		}
		tmpl, err := sel.Kind.Template()
		if err != nil {
			return nil, err
		}
		for range sel.Count {
			b.steps = append(b.steps, Step{Kind: sel.Kind, Name: tmpl.Name(), Template: tmpl})
		}
	}
	return b, nil
}

// Steps returns the expanded pipeline
func (b *Blueprint) Steps() []Step {
	steps := make([]Step, len(b.steps))
	copy(steps, b.steps)
	return steps
}

// Len is the number of template applications
func (b *Blueprint) Len() int {
	return len(b.steps)
}

// Reshape folds every step over c. The first failing step ends the
// pipeline with an *IncompatibleError; c itself is never modified. An empty
// blueprint returns a clone of c.
func (b *Blueprint) Reshape(c *monster.Creature) (*monster.Creature, error) {
	current := c.Clone()
	var history []Application

	for _, step := range b.steps {
		next, err := step.Template.Apply(current)
		if err != nil {
			return nil, &IncompatibleError{
				Kind:       step.Kind,
				Template:   step.Name,
				Diagnostic: step.Template.DiagnosticMessage(),
				History:    history,
				cause:      err,
			}
		}
		current = next
		history = appendRun(history, step.Name)
	}

	return current, nil
}

// appendRun run-length encodes consecutive repeats of the same template
func appendRun(history []Application, name string) []Application {
	if n := len(history); n > 0 && history[n-1].Name == name {
		history[n-1].Count++
		return history
	}
	return append(history, Application{Name: name, Count: 1})
}
