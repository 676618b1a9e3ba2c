package result

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes a non-generic outcome as a YAML document with the same
// canonical fields as the JSON form.
func (c Codec) MarshalYAML(r Result) ([]byte, error) {
	node, err := c.yamlNode(c.Marshal(r))
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

// UnmarshalYAML decodes a YAML document holding a non-generic outcome.
func (c Codec) UnmarshalYAML(data []byte) (Result, error) {
	raw, err := yamlToJSON(data)
	if err != nil {
		return Result{}, err
	}
	return c.Unmarshal(raw)
}

// MarshalYAMLOf is the typed counterpart of Codec.MarshalYAML.
func MarshalYAMLOf[T any](c Codec, r Of[T]) ([]byte, error) {
	node, err := c.yamlNode(MarshalOf(c, r))
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

// UnmarshalYAMLOf is the typed counterpart of Codec.UnmarshalYAML.
func UnmarshalYAMLOf[T any](c Codec, data []byte) (Of[T], error) {
	raw, err := yamlToJSON(data)
	if err != nil {
		return Of[T]{}, err
	}
	return UnmarshalOf[T](c, raw)
}

// yamlNode re-parses the JSON encoding (JSON is valid YAML) so the canonical
// key order is kept, then switches every node to block style.
func (c Codec) yamlNode(data []byte, err error) (*yaml.Node, error) {
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	resetStyle(&doc)
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		return doc.Content[0], nil
	}
	return &doc, nil
}

func resetStyle(n *yaml.Node) {
	n.Style = 0
	for _, child := range n.Content {
		resetStyle(child)
	}
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrMalformed, err)
	}
	if doc == nil {
		return nil, errors.Join(ErrMalformed, errors.New("root must be a mapping"))
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Join(ErrMalformed, err)
	}
	return out, nil
}

func (r Result) MarshalYAML() (any, error) {
	return DefaultCodec.yamlNode(DefaultCodec.Marshal(r))
}

func (r *Result) UnmarshalYAML(value *yaml.Node) error {
	var doc map[string]any
	if err := value.Decode(&doc); err != nil {
		return errors.Join(ErrMalformed, err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return errors.Join(ErrMalformed, err)
	}
	decoded, err := DefaultCodec.Unmarshal(raw)
	if err != nil {
		return err
	}
	*r = decoded
	return nil
}
