// Package options turns option sources into ordered option descriptors with
// pre-selection applied. Selection compares string forms, so a numeric 2 and
// the string "2" select the same entry.
package options

import (
	"iter"

	"github.com/goliatone/go-formbuilder/pkg/binding"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Build returns the descriptors for source in input order. An entry is
// selected when its value equals the string form of selected, or, when
// selected is a slice or array, of any of its members. The sequence can be
// ranged over any number of times.
func Build(source model.OptionSource, selected any) iter.Seq[model.OptionDescriptor] {
	matcher := newSelection(selected)
	return func(yield func(model.OptionDescriptor) bool) {
		if source.IsPairs() {
			for _, pair := range source.Pairs {
				value := binding.Stringify(pair.Value)
				descriptor := model.OptionDescriptor{
					Label:    binding.Stringify(pair.Label),
					Value:    value,
					Selected: matcher.has(value),
				}
				if !yield(descriptor) {
					return
				}
			}
			return
		}
		for _, item := range source.Scalars {
			value := binding.Stringify(item)
			descriptor := model.OptionDescriptor{
				Label:    value,
				Value:    value,
				Selected: matcher.has(value),
			}
			if !yield(descriptor) {
				return
			}
		}
	}
}

// Collect materialises Build into a slice.
func Collect(source model.OptionSource, selected any) []model.OptionDescriptor {
	out := make([]model.OptionDescriptor, 0, source.Len())
	for descriptor := range Build(source, selected) {
		out = append(out, descriptor)
	}
	return out
}

// FromCollection builds a pair source from arbitrary items using accessor
// functions for the value and the label.
func FromCollection[T any](items []T, value func(T) any, label func(T) any) model.OptionSource {
	pairs := make([]model.OptionPair, 0, len(items))
	for _, item := range items {
		pairs = append(pairs, model.OptionPair{Label: label(item), Value: value(item)})
	}
	return model.OptionSource{Pairs: pairs}
}

// FromMap builds a pair source from label/value entries, following the order
// given by keys. Keys missing from entries are skipped.
func FromMap(entries map[string]any, keys []string) model.OptionSource {
	pairs := make([]model.OptionPair, 0, len(keys))
	for _, key := range keys {
		value, ok := entries[key]
		if !ok {
			continue
		}
		pairs = append(pairs, model.OptionPair{Label: key, Value: value})
	}
	return model.OptionSource{Pairs: pairs}
}

type selection struct {
	values map[string]struct{}
}

func newSelection(selected any) selection {
	members := binding.Members(selected)
	if len(members) == 0 {
		return selection{}
	}
	values := make(map[string]struct{}, len(members))
	for _, member := range members {
		values[binding.Stringify(member)] = struct{}{}
	}
	return selection{values: values}
}

func (s selection) has(value string) bool {
	if s.values == nil {
		return false
	}
	_, ok := s.values[value]
	return ok
}
