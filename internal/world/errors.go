package world

import (
	"errors"
	"fmt"
	"strings"

	"github.com/appengine-ltd/goose-world/internal/names"
)

var (
	ErrLocationNotActive = errors.New("location not active for this configuration")
	ErrPoolMismatch      = errors.New("pool does not match active location count")
)

type DuplicateError struct {
	Kind  string
	Name  string
	ID    int64
	Other string
}

func (e *DuplicateError) Error() string {
	if e.Other != "" {
		return fmt.Sprintf("duplicate %s id %d: %q collides with %q", e.Kind, e.ID, e.Name, e.Other)
	}
	return fmt.Sprintf("duplicate %s name %q", e.Kind, e.Name)
}

// UnknownNameError reports a reference to a token, location or region that
// the catalogs do not define.
type UnknownNameError struct {
	Kind       string
	Name       string
	Suggestion []string
}

func (e *UnknownNameError) Error() string {
	if len(e.Suggestion) == 0 {
		return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
	}
	return fmt.Sprintf("unknown %s %q (did you mean %s?)", e.Kind, e.Name, quoteJoin(e.Suggestion))
}

func unknownName(kind, name string, idx *names.Index) *UnknownNameError {
	err := &UnknownNameError{Kind: kind, Name: name}
	if idx != nil {
		err.Suggestion = idx.Suggest(name, 3)
	}
	return err
}

// OptionConflictError is returned when option values contradict each other
// or fall outside their declared range.
type OptionConflictError struct {
	Options []string
	Reason  string
}

func (e *OptionConflictError) Error() string {
	return fmt.Sprintf("conflicting options %s: %s", strings.Join(e.Options, ", "), e.Reason)
}

func quoteJoin(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(quoted, " or ")
}
