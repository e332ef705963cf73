package formfile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// OptionList holds select options in one of three YAML shapes:
//
//	options: [draft, published]              # scalars, label == value
//	options: [{label: Lisabon, value: 1}]    # explicit pairs
//	options: {Lisabon: 1, Madrid: 2}         # label: value, in file order
type OptionList struct {
	scalars []any
	pairs   []model.OptionPair
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *OptionList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		o.pairs = make([]model.OptionPair, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var value any
			if err := node.Content[i+1].Decode(&value); err != nil {
				return fmt.Errorf("option %q: %w", node.Content[i].Value, err)
			}
			o.pairs = append(o.pairs, model.OptionPair{Label: node.Content[i].Value, Value: value})
		}
		return nil
	case yaml.SequenceNode:
		for idx, item := range node.Content {
			if item.Kind == yaml.MappingNode {
				if len(o.scalars) > 0 {
					return fmt.Errorf("line %d: options mix scalars and label/value pairs", item.Line)
				}
				var pair struct {
					Label string `yaml:"label"`
					Value any    `yaml:"value"`
				}
				if err := item.Decode(&pair); err != nil {
					return fmt.Errorf("option %d: %w", idx, err)
				}
				o.pairs = append(o.pairs, model.OptionPair{Label: pair.Label, Value: pair.Value})
				continue
			}
			if len(o.pairs) > 0 {
				return fmt.Errorf("line %d: options mix scalars and label/value pairs", item.Line)
			}
			var value any
			if err := item.Decode(&value); err != nil {
				return fmt.Errorf("option %d: %w", idx, err)
			}
			o.scalars = append(o.scalars, value)
		}
		if o.scalars == nil && o.pairs == nil {
			o.scalars = []any{}
		}
		return nil
	default:
		return fmt.Errorf("line %d: options must be a list or a mapping", node.Line)
	}
}

// Source converts the list into a model.OptionSource.
func (o OptionList) Source() model.OptionSource {
	if o.pairs != nil {
		return model.Pairs(o.pairs...)
	}
	return model.Scalars(o.scalars...)
}

// Len reports the number of options.
func (o OptionList) Len() int {
	return len(o.scalars) + len(o.pairs)
}
