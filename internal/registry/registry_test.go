package registry

import (
	"testing"

	"github.com/Tythos/gtestbox/internal/check"
)

func TestRegistry_PreservesRegistrationOrder(t *testing.T) {
	reg := New()
	reg.Add(Case{Suite: "First", Name: "A", Fn: func(*check.T) {}})
	reg.Add(Case{Suite: "First", Name: "B", Fn: func(*check.T) {}})
	reg.Add(Case{Suite: "Second", Name: "C", Fn: func(*check.T) {}})

	cases := reg.Cases()
	if len(cases) != 3 {
		t.Fatalf("expected 3 cases, got %d", len(cases))
	}

	expected := []string{"First/A", "First/B", "Second/C"}
	for i, name := range expected {
		if cases[i].FullName() != name {
			t.Errorf("case %d: expected %s, got %s", i, name, cases[i].FullName())
		}
	}
}

func TestRegistry_Len(t *testing.T) {
	reg := New()
	if reg.Len() != 0 {
		t.Errorf("expected empty registry, got %d", reg.Len())
	}

	reg.Add(Case{Suite: "S", Name: "N", Fn: func(*check.T) {}})
	if reg.Len() != 1 {
		t.Errorf("expected 1 case, got %d", reg.Len())
	}
}
