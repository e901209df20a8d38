package entity

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML document into a Value. Mapping order is kept, so a
// settings file written in YAML flattens the same way its JSON twin does.
func ParseYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Value{}, err
	}
	if doc.Kind == 0 {
		return Value{}, fmt.Errorf("entity: empty YAML document")
	}
	return FromYAMLNode(&doc)
}

func FromYAMLNode(node *yaml.Node) (Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return NullValue(), nil
		}
		return FromYAMLNode(node.Content[0])
	case yaml.AliasNode:
		return FromYAMLNode(node.Alias)
	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("entity: line %d: mapping keys must be scalars", keyNode.Line)
			}
			val, err := FromYAMLNode(valNode)
			if err != nil {
				return Value{}, err
			}
			obj.Set(keyNode.Value, val)
		}
		return ObjectValue(obj), nil
	case yaml.SequenceNode:
		items := make([]Value, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := FromYAMLNode(child)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return ArrayValue(items...), nil
	case yaml.ScalarNode:
		return yamlScalar(node)
	}
	return Value{}, fmt.Errorf("entity: line %d: unsupported YAML node kind %d", node.Line, node.Kind)
}

func yamlScalar(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return NullValue(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, err
		}
		return BoolValue(b), nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return Value{}, err
		}
		return NumberValue(json.Number(strconv.FormatInt(i, 10))), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return Value{}, err
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return Value{}, fmt.Errorf("entity: line %d: %q is not representable in JSON", node.Line, node.Value)
		}
		return FloatValue(f), nil
	}
	return StringValue(node.Value), nil
}
