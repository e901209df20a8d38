// Package jsonparse parses user typed JSON text without ever failing loudly.
package jsonparse

import (
	"github.com/norskhelsenett/hecevent/pkg/entity"
)

// Result reports whether the text held a JSON object or array, and the value
// it held when it did.
type Result struct {
	OK     bool
	Parsed entity.Value
}

// Parse strictly parses text. Empty text, malformed JSON and top-level
// scalars (true, 1, "x", null) all come back with OK false and a null value.
func Parse(text string) Result {
	v, err := entity.ParseString(text)
	if err != nil {
		return Result{}
	}

	switch v.Kind() {
	case entity.ObjectKind, entity.Array:
		return Result{OK: true, Parsed: v}
	}

	return Result{}
}
