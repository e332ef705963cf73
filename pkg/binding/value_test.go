package binding_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/binding"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

type Address struct {
	City   string
	Street string `form:"street_line"`
}

type Person struct {
	ID      int
	Name    string
	Admin   bool
	Address Address
	Tags    []string
	secret  string
}

type status string

func TestResolveValueExplicitWins(t *testing.T) {
	obj := binding.Struct(Person{ID: 4, Name: "Ada"})

	spec := model.FieldSpec{Path: model.Path("name")}.WithValue("")
	value, ok := binding.ResolveValue(spec, obj)
	if !ok || value != "" {
		t.Fatalf("expected explicit empty value to win, got %v (%v)", value, ok)
	}
}

func TestResolveValueFromBoundObject(t *testing.T) {
	obj := binding.Struct(&Person{ID: 4, Name: "Ada", Address: Address{City: "London", Street: "Baker St"}})

	cases := map[string]any{
		"name":                "Ada",
		"Name":                "Ada",
		"address.city":        "London",
		"address.street_line": "Baker St",
	}
	for raw, want := range cases {
		got, ok := binding.ResolveValue(model.FieldSpec{Path: model.ParsePath(raw)}, obj)
		if !ok {
			t.Fatalf("expected %q to resolve", raw)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("value for %q mismatch (-want +got):\n%s", raw, diff)
		}
	}
}

func TestResolveValueMissingAttributeIsSoft(t *testing.T) {
	obj := binding.Struct(Person{})
	for _, raw := range []string{"nickname", "secret", "address.zip", "name.first"} {
		value, ok := binding.ResolveValue(model.FieldSpec{Path: model.ParsePath(raw)}, obj)
		if ok || value != nil {
			t.Fatalf("expected %q to be absent, got %v (%v)", raw, value, ok)
		}
	}

	value, ok := binding.ResolveValue(model.FieldSpec{Path: model.Path("q")}, nil)
	if ok || value != nil {
		t.Fatalf("expected unbound field to be absent, got %v", value)
	}
}

func TestLookupReportsAttributeNotFound(t *testing.T) {
	obj := binding.Map("search", map[string]any{"q": "go"})
	if _, err := binding.Lookup(obj, model.Path("missing")); !errors.Is(err, model.ErrAttributeNotFound) {
		t.Fatalf("expected ErrAttributeNotFound, got %v", err)
	}
	if _, err := binding.Lookup(obj, model.Path("")); !errors.Is(err, model.ErrInvalidPath) {
		t.Fatalf("expected ErrInvalidPath, got %v", err)
	}
}

func TestLookupThroughNestedMaps(t *testing.T) {
	obj := binding.Map("person", map[string]any{
		"address": map[string]any{"city": "Lisbon"},
		"meta":    map[string]string{"source": "import"},
	})

	city, err := binding.Lookup(obj, model.Path("address", "city"))
	if err != nil || city != "Lisbon" {
		t.Fatalf("expected Lisbon, got %v (%v)", city, err)
	}
	source, err := binding.Lookup(obj, model.Path("meta", "source"))
	if err != nil || source != "import" {
		t.Fatalf("expected import, got %v (%v)", source, err)
	}
}

func TestStructAdapterPersistenceState(t *testing.T) {
	fresh := binding.Struct(Person{})
	if !fresh.IsNew() {
		t.Fatalf("expected zero id to mark record as new")
	}
	if fresh.ModelName() != "person" {
		t.Fatalf("expected model name person, got %q", fresh.ModelName())
	}

	saved := binding.Struct(Person{ID: 9})
	if saved.IsNew() {
		t.Fatalf("expected non-zero id to mark record as persisted")
	}
	if saved.RecordID() != 9 {
		t.Fatalf("expected id 9, got %v", saved.RecordID())
	}

	forced := binding.Struct(Person{ID: 9}, binding.WithNew(true), binding.WithModelName("member"), binding.WithID("m-9"))
	if !forced.IsNew() || forced.ModelName() != "member" || forced.RecordID() != "m-9" {
		t.Fatalf("expected options to override inferred state, got new=%v name=%q id=%v", forced.IsNew(), forced.ModelName(), forced.RecordID())
	}
	if forced.ResourceType() != "member" {
		t.Fatalf("expected resource type to default to the model name, got %q", forced.ResourceType())
	}
}

func TestIsChecked(t *testing.T) {
	cases := []struct {
		value any
		on    string
		want  bool
	}{
		{true, "1", true},
		{false, "1", false},
		{false, "0", true},
		{"1", "1", true},
		{1, "1", true},
		{"yes", "yes", true},
		{nil, "1", false},
		{"rails", "django", false},
	}
	for _, tc := range cases {
		if got := binding.IsChecked(tc.value, tc.on); got != tc.want {
			t.Fatalf("IsChecked(%v, %q) = %v, want %v", tc.value, tc.on, got, tc.want)
		}
	}
}

func TestStringify(t *testing.T) {
	n := 42
	var nilPtr *int
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"x", "x"},
		{[]byte("raw"), "raw"},
		{true, "true"},
		{7, "7"},
		{int64(-3), "-3"},
		{uint8(200), "200"},
		{2.5, "2.5"},
		{float32(1.5), "1.5"},
		{&n, "42"},
		{nilPtr, ""},
		{status("active"), "active"},
		{time.Time{}, ""},
		{time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), "2024-01-02T03:04:05Z"},
	}
	for _, tc := range cases {
		if got := binding.Stringify(tc.in); got != tc.want {
			t.Fatalf("Stringify(%#v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMembers(t *testing.T) {
	if diff := cmp.Diff([]any{1, 2}, binding.Members([]int{1, 2})); diff != "" {
		t.Fatalf("members mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"ab"}, binding.Members("ab")); diff != "" {
		t.Fatalf("string members mismatch (-want +got):\n%s", diff)
	}
	if got := binding.Members(nil); got != nil {
		t.Fatalf("expected nil members, got %v", got)
	}
}
