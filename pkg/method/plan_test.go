package method_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/method"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

func TestPlanForPassThrough(t *testing.T) {
	for _, raw := range []string{"GET", "post", " Get "} {
		plan, err := method.PlanFor(raw)
		if err != nil {
			t.Fatalf("PlanFor(%q): %v", raw, err)
		}
		if plan.Override != nil {
			t.Fatalf("PlanFor(%q): expected no override, got %+v", raw, plan.Override)
		}
		if plan.Wire != plan.Declared {
			t.Fatalf("PlanFor(%q): expected wire %q to equal declared %q", raw, plan.Wire, plan.Declared)
		}
	}
}

func TestPlanForEmulatedVerbs(t *testing.T) {
	cases := map[string]string{
		"PUT":    "put",
		"patch":  "patch",
		"DELETE": "delete",
	}
	for raw, wantValue := range cases {
		plan, err := method.PlanFor(raw)
		if err != nil {
			t.Fatalf("PlanFor(%q): %v", raw, err)
		}
		want := &method.OverrideField{Name: "_method", Value: wantValue}
		if diff := cmp.Diff(want, plan.Override); diff != "" {
			t.Fatalf("override mismatch for %q (-want +got):\n%s", raw, diff)
		}
		if plan.Wire != model.MethodPost {
			t.Fatalf("PlanFor(%q): expected wire POST, got %q", raw, plan.Wire)
		}
		if !plan.Emulated() {
			t.Fatalf("PlanFor(%q): expected emulated plan", raw)
		}
	}
}

func TestPlanForUnsupported(t *testing.T) {
	for _, raw := range []string{"TRACE", "", "CONNECT"} {
		if _, err := method.PlanFor(raw); !errors.Is(err, model.ErrUnsupportedMethod) {
			t.Fatalf("PlanFor(%q): expected ErrUnsupportedMethod, got %v", raw, err)
		}
	}
}

func TestPlanMethod(t *testing.T) {
	plan, err := method.PlanMethod(model.MethodPut)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Override == nil || plan.Override.Value != "put" {
		t.Fatalf("expected put override, got %+v", plan.Override)
	}
}
