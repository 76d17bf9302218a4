package build

import (
	"bytes"
	"io"

	"github.com/lestrrat-go/xmlom/node"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// yamlDocument is the tree description read by ReadYAML:
//
//	version: "1.0"
//	encoding: UTF-8
//	root:
//	  name: fuc
//	  attributes:
//	    codigo: M4310
//	  children:
//	    - name: nome
//	      text: Programação Avançada
//
// attributes is kept as a yaml.Node so that the order written in the
// file is the order stored in the entity.
type yamlDocument struct {
	Version  string      `yaml:"version"`
	Encoding string      `yaml:"encoding"`
	Root     *yamlEntity `yaml:"root"`
}

type yamlEntity struct {
	Name       string        `yaml:"name"`
	Text       string        `yaml:"text"`
	Attributes yaml.Node     `yaml:"attributes"`
	Children   []*yamlEntity `yaml:"children"`
}

// FromYAML builds a document from a YAML tree description.
func FromYAML(data []byte) (*node.Document, error) {
	return ReadYAML(bytes.NewReader(data))
}

// ReadYAML builds a document from a YAML tree description read from src.
// Unknown keys are rejected.
func ReadYAML(src io.Reader) (*node.Document, error) {
	dec := yaml.NewDecoder(src)
	dec.KnownFields(true)

	var desc yamlDocument
	if err := dec.Decode(&desc); err != nil {
		return nil, errors.Wrap(err, "failed to decode tree description")
	}
	if desc.Root == nil {
		return nil, errors.Wrap(node.ErrInvalidArgument, "tree description has no root")
	}

	root, err := desc.Root.entity()
	if err != nil {
		return nil, err
	}

	var options []node.DocumentOption
	if desc.Version != "" {
		options = append(options, node.WithVersion(desc.Version))
	}
	if desc.Encoding != "" {
		options = append(options, node.WithEncoding(desc.Encoding))
	}
	return node.NewDocument(root, options...)
}

func (y *yamlEntity) items() ([]Item, error) {
	var items []Item
	switch y.Attributes.Kind {
	case 0:
	case yaml.MappingNode:
		content := y.Attributes.Content
		for i := 0; i+1 < len(content); i += 2 {
			key, value := content[i], content[i+1]
			if value.Kind != yaml.ScalarNode {
				return nil, errors.Wrapf(node.ErrInvalidArgument,
					"attribute %s of %s (line %d) is not a scalar", key.Value, y.Name, value.Line)
			}
			items = append(items, Attr(key.Value, value.Value))
		}
	default:
		return nil, errors.Wrapf(node.ErrInvalidArgument,
			"attributes of %s (line %d) must be a mapping", y.Name, y.Attributes.Line)
	}

	if y.Text != "" {
		items = append(items, Text(y.Text))
	}
	return items, nil
}

func (y *yamlEntity) entity() (*node.Entity, error) {
	if y == nil {
		return nil, errors.Wrap(node.ErrInvalidArgument, "empty entity in tree description")
	}

	items, err := y.items()
	if err != nil {
		return nil, err
	}
	e, err := Entity(y.Name, items...)
	if err != nil {
		return nil, err
	}

	for _, c := range y.Children {
		child, err := c.entity()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to build %s", y.Name)
		}
		if err := e.AddChildren(child); err != nil {
			return nil, errors.Wrapf(err, "failed to build %s", y.Name)
		}
	}
	return e, nil
}
