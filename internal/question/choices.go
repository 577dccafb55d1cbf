package question

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"promptly/internal/ask"
)

// Choices holds multiple choice entries in file order. They are written
// either as a list of labels or as a key/label mapping.
type Choices struct {
	Items []ask.Choice
	Keyed bool
}

// Len returns the number of entries.
func (c Choices) Len() int { return len(c.Items) }

// UnmarshalYAML reads a sequence of labels or an ordered mapping.
func (c *Choices) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var labels []string
		if err := node.Decode(&labels); err != nil {
			return err
		}
		*c = Choices{Items: ask.ChoiceList(labels...)}
		return nil
	case yaml.MappingNode:
		items := make([]ask.Choice, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if value.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: choice %q must map to a label", value.Line, key.Value)
			}
			items = append(items, ask.Choice{Key: ask.Symbol(key.Value), Label: value.Value})
		}
		*c = Choices{Items: items, Keyed: true}
		return nil
	default:
		return fmt.Errorf("line %d: choices must be a list or a mapping", node.Line)
	}
}

// MarshalYAML writes choices back in their original form.
func (c Choices) MarshalYAML() (any, error) {
	if !c.Keyed {
		labels := make([]string, 0, len(c.Items))
		for _, item := range c.Items {
			labels = append(labels, item.Label)
		}
		return labels, nil
	}
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, item := range c.Items {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: string(item.Key)},
			&yaml.Node{Kind: yaml.ScalarNode, Value: item.Label},
		)
	}
	return node, nil
}

// UnmarshalJSON reads an array of labels or an object, keeping key order.
func (c *Choices) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*c = Choices{}
		return nil
	}
	if trimmed[0] == '[' {
		var labels []string
		if err := json.Unmarshal(trimmed, &labels); err != nil {
			return err
		}
		*c = Choices{Items: ask.ChoiceList(labels...)}
		return nil
	}
	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	if tok, err := decoder.Token(); err != nil || tok != json.Delim('{') {
		return fmt.Errorf("choices must be an array or an object")
	}
	var items []ask.Choice
	for decoder.More() {
		tok, err := decoder.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("choice key must be a string")
		}
		var label string
		if err := decoder.Decode(&label); err != nil {
			return fmt.Errorf("choice %q: %w", key, err)
		}
		items = append(items, ask.Choice{Key: ask.Symbol(key), Label: label})
	}
	if _, err := decoder.Token(); err != nil {
		return err
	}
	*c = Choices{Items: items, Keyed: true}
	return nil
}

// MarshalJSON writes choices back in their original form, keeping key order.
func (c Choices) MarshalJSON() ([]byte, error) {
	if !c.Keyed {
		labels := make([]string, 0, len(c.Items))
		for _, item := range c.Items {
			labels = append(labels, item.Label)
		}
		return json.Marshal(labels)
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, item := range c.Items {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(item.Key))
		if err != nil {
			return nil, err
		}
		label, err := json.Marshal(item.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(label)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
