package options_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/options"
)

func TestBuildPairsSelectsByStringEquality(t *testing.T) {
	source := model.Pairs(
		model.OptionPair{Label: "Lisabon", Value: 1},
		model.OptionPair{Label: "Madrid", Value: 2},
	)

	want := []model.OptionDescriptor{
		{Label: "Lisabon", Value: "1", Selected: false},
		{Label: "Madrid", Value: "2", Selected: true},
	}
	if diff := cmp.Diff(want, options.Collect(source, 2)); diff != "" {
		t.Fatalf("descriptors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, options.Collect(source, "2")); diff != "" {
		t.Fatalf("string selection mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildScalarsPreservesOrderAndDuplicates(t *testing.T) {
	source := model.Scalars("VISA", "MasterCard", "VISA", 3.5)

	want := []model.OptionDescriptor{
		{Label: "VISA", Value: "VISA", Selected: true},
		{Label: "MasterCard", Value: "MasterCard"},
		{Label: "VISA", Value: "VISA", Selected: true},
		{Label: "3.5", Value: "3.5"},
	}
	if diff := cmp.Diff(want, options.Collect(source, "VISA")); diff != "" {
		t.Fatalf("descriptors mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMultipleSelection(t *testing.T) {
	source := model.Scalars("red", "green", "blue")
	got := options.Collect(source, []string{"blue", "red"})

	want := []model.OptionDescriptor{
		{Label: "red", Value: "red", Selected: true},
		{Label: "green", Value: "green"},
		{Label: "blue", Value: "blue", Selected: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("descriptors mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildNoMatchIsNotAnError(t *testing.T) {
	for _, selected := range []any{nil, "missing", []int{}} {
		for _, descriptor := range options.Collect(model.Scalars("a", "b"), selected) {
			if descriptor.Selected {
				t.Fatalf("selected=%v: expected no selection, got %+v", selected, descriptor)
			}
		}
	}
}

func TestBuildIsReiterableAndStopsEarly(t *testing.T) {
	seq := options.Build(model.Scalars("a", "b", "c"), "b")

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	if first != 3 || second != 3 {
		t.Fatalf("expected two full passes of 3, got %d and %d", first, second)
	}

	seen := 0
	for range seq {
		seen++
		break
	}
	if seen != 1 {
		t.Fatalf("expected early break after one item, got %d", seen)
	}
}

func TestFromCollection(t *testing.T) {
	type city struct {
		ID   int
		Name string
	}
	cities := []city{{1, "Lisbon"}, {2, "Porto"}}

	source := options.FromCollection(cities,
		func(c city) any { return c.ID },
		func(c city) any { return c.Name },
	)
	want := []model.OptionDescriptor{
		{Label: "Lisbon", Value: "1"},
		{Label: "Porto", Value: "2", Selected: true},
	}
	if diff := cmp.Diff(want, options.Collect(source, 2)); diff != "" {
		t.Fatalf("descriptors mismatch (-want +got):\n%s", diff)
	}
}

func TestFromMapFollowsKeyOrder(t *testing.T) {
	source := options.FromMap(map[string]any{"Dollar": "$", "Kroner": "DKK"}, []string{"Kroner", "Euro", "Dollar"})
	want := []model.OptionDescriptor{
		{Label: "Kroner", Value: "DKK"},
		{Label: "Dollar", Value: "$"},
	}
	if diff := cmp.Diff(want, options.Collect(source, nil)); diff != "" {
		t.Fatalf("descriptors mismatch (-want +got):\n%s", diff)
	}
}
