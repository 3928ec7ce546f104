package blueprint

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
	"github.com/KirkDiggler/rpg-bestiary/internal/templates"
)

// IncompatibleError reports the template that stopped a pipeline and the
// templates applied before it
type IncompatibleError struct {
	Kind       templates.Kind `json:"kind"`
	Template   string         `json:"template"`
	Diagnostic string         `json:"diagnostic"`
	History    []Application  `json:"history,omitempty"`

	cause error
}

// Message is the diagnostic sentence followed, when templates were applied
// first, by their run-length encoded history
func (e *IncompatibleError) Message() string {
	if len(e.History) == 0 {
		return e.Diagnostic
	}
	runs := make([]string, len(e.History))
	for i, app := range e.History {
		runs[i] = fmt.Sprintf("%s (x%d)", app.Name, app.Count)
	}
	return e.Diagnostic + " — Templates applied before failure: " + strings.Join(runs, ", ")
}

func (e *IncompatibleError) Error() string {
	return e.Message()
}

// Applied is the number of successful applications before the failure
func (e *IncompatibleError) Applied() int {
	total := 0
	for _, app := range e.History {
		total += app.Count
	}
	return total
}

// Unwrap exposes the failure as a FailedPrecondition so the error helpers
// and gRPC mapping treat it like any other error
func (e *IncompatibleError) Unwrap() error {
	history := make([]interface{}, len(e.History))
	for i, app := range e.History {
		history[i] = map[string]interface{}{"name": app.Name, "count": float64(app.Count)}
	}

	var err *errors.Error
	if e.cause != nil {
		err = errors.WrapWithCode(e.cause, errors.CodeFailedPrecondition, e.Message())
	} else {
		err = errors.FailedPrecondition(e.Message())
	}
	return err.WithMetaMap(map[string]interface{}{
		"kind":     e.Kind.String(),
		"template": e.Template,
		"history":  history,
	})
}

// AsIncompatible extracts an *IncompatibleError from err
func AsIncompatible(err error) (*IncompatibleError, bool) {
	var incompatible *IncompatibleError
	if errors.As(err, &incompatible) {
		return incompatible, true
	}
	return nil, false
}
