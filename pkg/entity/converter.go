package entity

import "strings"

// PathSeparator joins the keys of nested objects in a Variable path.
const PathSeparator = "."

// Variable is one row of the key/value editor: a dotted path and its leaf
// text. Value may also hold a data element token such as "%pageName%".
type Variable struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// IsEmpty reports a row with neither key nor value.
func (v Variable) IsEmpty() bool {
	return v.Key == "" && v.Value == ""
}

// AddToVariablesFromEntity appends the leaves of v to base in depth-first
// order. Nested objects extend the path; arrays are leaves. A non-object root
// contributes nothing.
func AddToVariablesFromEntity(base []Variable, v Value, prefix string) []Variable {
	obj, ok := v.AsObject()
	if !ok {
		return base
	}

	obj.Range(func(key string, item Value) bool {
		path := key
		if prefix != "" {
			path = prefix + PathSeparator + key
		}

		if item.Kind() == ObjectKind {
			base = AddToVariablesFromEntity(base, item, path)
		} else {
			base = append(base, Variable{Key: path, Value: item.Text()})
		}
		return true
	})

	return base
}

// AddToEntityFromVariables writes every non-empty variable into base,
// creating intermediate objects along its path. When two paths collide the
// later variable wins. Values are stored as strings.
func AddToEntityFromVariables(base *Object, variables []Variable) *Object {
	if base == nil {
		base = NewObject()
	}

	for _, variable := range variables {
		if variable.IsEmpty() {
			continue
		}

		parts := strings.Split(variable.Key, PathSeparator)
		current := base
		for _, part := range parts[:len(parts)-1] {
			next, ok := current.Get(part)
			child, isObject := next.AsObject()
			if !ok || !isObject {
				child = NewObject()
				current.Set(part, ObjectValue(child))
			}
			current = child
		}

		current.Set(parts[len(parts)-1], StringValue(variable.Value))
	}

	return base
}
