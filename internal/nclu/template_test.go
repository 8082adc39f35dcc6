package nclu

import (
	"errors"
	"testing"
)

func TestCommandListBranches(t *testing.T) {
	list := []string{"a", "b"}

	assertList(t, CommandList(list, ""), "a", "b")
	assertList(t, CommandList(nil, "a\nb"), "a", "b")
	assertList(t, CommandList(list, "c\nd"), "a", "b")
	assertList(t, CommandList(nil, ""))
}

func TestCommandListTrimsAndSkipsBlankLines(t *testing.T) {
	template := "\n    add int swp1\r\n\n    add int swp2   \n  "
	assertList(t, CommandList(nil, template), "add int swp1", "add int swp2")
}

func TestCommandListEmptyIsNotNil(t *testing.T) {
	if got := CommandList(nil, ""); got == nil {
		t.Fatal("expected empty slice, got nil")
	}
}

func TestRenderTemplate(t *testing.T) {
	vars := map[string]string{"iface": "swp1", "addr": "10.0.0.1/32"}

	got, err := RenderTemplate("add int {{iface}} ip address {{ addr }}", vars)
	if err != nil {
		t.Fatal(err)
	}
	if got != "add int swp1 ip address 10.0.0.1/32" {
		t.Fatalf("unexpected render: %q", got)
	}
}

func TestRenderTemplateUnknownVar(t *testing.T) {
	got, err := RenderTemplate("add int {{missing}}", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "add int " {
		t.Fatalf("expected unknown var to render empty, got %q", got)
	}
}

func TestRenderTemplatePlain(t *testing.T) {
	got, err := RenderTemplate("add int swp1", map[string]string{"iface": "swp2"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "add int swp1" {
		t.Fatalf("expected template unchanged, got %q", got)
	}
}

func TestRenderTemplateUnterminated(t *testing.T) {
	_, err := RenderTemplate("add int {{iface", nil)
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func assertList(t *testing.T, got []string, expected ...string) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("expected %q, got %q", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected %q, got %q", expected, got)
		}
	}
}
