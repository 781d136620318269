package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Code classifies a violation so callers can react to the kind of failure
// without parsing the message.
type Code string

// Violation codes
const (
	CodeRequired   Code = "required"
	CodeFormat     Code = "format"
	CodeRange      Code = "range"
	CodeUniqueness Code = "uniqueness"
	CodePolicy     Code = "policy"
)

// Violation describes one failed rule on one field path.
type Violation struct {
	Field   string
	Code    Code
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s: %s", v.Field, v.Code, v.Message)
}

// Errors is the complete set of violations found in one validation pass.
// It implements error so schemas can return it directly.
type Errors []Violation

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.String()
	}
	return fmt.Sprintf("validation failed: [%s]", strings.Join(msgs, "; "))
}

// ErrOrNil returns the set as an error, or nil when no violations were found.
func (e Errors) ErrOrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// AsErrors unwraps a validation error back into its violation set.
func AsErrors(err error) (Errors, bool) {
	var e Errors
	ok := errors.As(err, &e)
	return e, ok
}

// Collect converts the error returned by validator.Struct into a violation
// set. Field paths come from the struct's yaml tags, with the top-level
// struct name stripped (Session.startTime -> startTime).
func Collect(err error) Errors {
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return Errors{{Field: "", Code: CodeFormat, Message: err.Error()}}
	}

	violations := make(Errors, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		violations = append(violations, Violation{
			Field:   trimNamespace(fe.Namespace()),
			Code:    codeForTag(fe.Tag()),
			Message: fmt.Sprintf("failed %q constraint on value %q", fe.Tag(), fmt.Sprint(fe.Value())),
		})
	}
	return violations
}

// Prefix returns a copy of the set with every field path prefixed, used by
// aggregate schemas to report element violations under an indexed path
// (e.g. "sessions[2].startTime").
func Prefix(e Errors, prefix string) Errors {
	out := make(Errors, len(e))
	for i, v := range e {
		v.Field = prefix + v.Field
		out[i] = v
	}
	return out
}

func trimNamespace(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func codeForTag(tag string) Code {
	switch tag {
	case "required", "min":
		// min is only used for non-empty collection constraints
		return CodeRequired
	default:
		return CodeFormat
	}
}
