package v1alpha1

import (
	"encoding/json"
	"math"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-bestiary/internal/errors"
	"github.com/KirkDiggler/rpg-bestiary/internal/templates"
	"github.com/KirkDiggler/rpg-bestiary/internal/templates/blueprint"
)

// request reads typed fields from a struct request. The first type error
// sticks and is reported by err.
type request struct {
	fields map[string]*structpb.Value
	vb     *errors.ValidationBuilder
}

func newRequest(req *structpb.Struct) *request {
	return &request{fields: req.GetFields(), vb: errors.NewValidationBuilder()}
}

func (r *request) stringField(name string) string {
	v, ok := r.fields[name]
	if !ok {
		return ""
	}
	if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
		return ""
	}
	s, isString := v.GetKind().(*structpb.Value_StringValue)
	if !isString {
		r.vb.InvalidField(name, "must be a string")
		return ""
	}
	return s.StringValue
}

func (r *request) requiredStringField(name string) string {
	s := r.stringField(name)
	if _, ok := r.fields[name]; !ok || s == "" {
		r.vb.RequiredField(name)
	}
	return s
}

func (r *request) intField(name string) int {
	v, ok := r.fields[name]
	if !ok {
		return 0
	}
	n, isNumber := v.GetKind().(*structpb.Value_NumberValue)
	if !isNumber || n.NumberValue != math.Trunc(n.NumberValue) {
		r.vb.InvalidField(name, "must be an integer")
		return 0
	}
	return int(n.NumberValue)
}

func (r *request) boolField(name string) bool {
	v, ok := r.fields[name]
	if !ok {
		return false
	}
	b, isBool := v.GetKind().(*structpb.Value_BoolValue)
	if !isBool {
		r.vb.InvalidField(name, "must be a boolean")
		return false
	}
	return b.BoolValue
}

// selections reads [{"template": "giant", "count": 2}, ...]. A missing
// count means once.
func (r *request) selectionsField(name string) []blueprint.Selection {
	v, ok := r.fields[name]
	if !ok {
		return nil
	}
	list := v.GetListValue()
	if list == nil {
		r.vb.InvalidField(name, "must be a list")
		return nil
	}

	selections := make([]blueprint.Selection, 0, len(list.GetValues()))
	for _, item := range list.GetValues() {
		entry := item.GetStructValue()
		if entry == nil {
			r.vb.InvalidField(name, "entries must be objects")
			return nil
		}
		sub := &request{fields: entry.GetFields(), vb: r.vb}
		kind, err := templates.ParseKind(sub.stringField("template"))
		if err != nil {
			r.vb.Field(name, errors.GetMessage(err))
			return nil
		}
		count := 1
		if _, hasCount := entry.GetFields()["count"]; hasCount {
			count = sub.intField("count")
		}
		selections = append(selections, blueprint.Selection{Kind: kind, Count: count})
	}
	return selections
}

func (r *request) err() error {
	return r.vb.Build()
}

// toValue converts any JSON-tagged value to a struct value
func toValue(v interface{}) (*structpb.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, errors.Wrap(err, "failed to decode response")
	}
	value, err := structpb.NewValue(generic)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build response")
	}
	return value, nil
}

// response accumulates top-level fields of a struct response
type response struct {
	fields map[string]*structpb.Value
	err    error
}

func newResponse() *response {
	return &response{fields: make(map[string]*structpb.Value)}
}

func (r *response) set(name string, v interface{}) *response {
	if r.err != nil {
		return r
	}
	value, err := toValue(v)
	if err != nil {
		r.err = errors.Wrapf(err, "field %s", name)
		return r
	}
	r.fields[name] = value
	return r
}

func (r *response) build() (*structpb.Struct, error) {
	if r.err != nil {
		return nil, r.err
	}
	return &structpb.Struct{Fields: r.fields}, nil
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
