package container

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds returned by the containers. Match them with errors.Is.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrInvalidAttribute = errors.New("invalid attribute")
	ErrTypeConflict     = errors.New("attribute type conflict")
)

// previewLimit is the number of values shown per type in a TypeConflictError.
const previewLimit = 3

// TypeGroup is the values of one runtime type found in a mixed attribute list.
type TypeGroup struct {
	Type   string
	Values []any
}

// TypeConflictError reports an attribute list whose elements cannot share one ONNX type.
type TypeConflictError struct {
	Attribute string
	Groups    []TypeGroup
}

// Types lists the runtime types found, in first-seen order.
func (e *TypeConflictError) Types() []string {
	types := make([]string, len(e.Groups))
	for i, g := range e.Groups {
		types[i] = g.Type
	}
	return types
}

func (e *TypeConflictError) Error() string {
	rows := make([]string, len(e.Groups))
	for i, g := range e.Groups {
		n := len(g.Values)
		if n > previewLimit {
			n = previewLimit
		}
		vals := make([]string, 0, n+1)
		for _, v := range g.Values[:n] {
			vals = append(vals, fmt.Sprint(v))
		}
		if len(g.Values) > previewLimit {
			vals = append(vals, "...")
		}
		rows[i] = g.Type + ": " + strings.Join(vals, ", ")
	}
	return fmt.Sprintf("attribute '%s' mixes types {%s}\n%s",
		e.Attribute, strings.Join(e.Types(), ", "), strings.Join(rows, "\n"))
}

func (e *TypeConflictError) Is(target error) bool {
	return target == ErrTypeConflict
}
