package notification

import (
	"testing"
)

func TestRenderTemplate(t *testing.T) {
	out := RenderTemplate("Hi {{name}}, thanks for reaching out to {{company}}!", map[string]string{
		"name":    "Jane",
		"company": "Acme",
	})
	if out != "Hi Jane, thanks for reaching out to Acme!" {
		t.Errorf("got %q", out)
	}
}

func TestRenderTemplate_UnknownPlaceholderKept(t *testing.T) {
	out := RenderTemplate("Hi {{name}}, {{missing}}", map[string]string{"name": "Jane"})
	if out != "Hi Jane, {{missing}}" {
		t.Errorf("got %q", out)
	}
}

func TestRenderTemplate_EmptyFields(t *testing.T) {
	out := RenderTemplate("Hi {{name}}", nil)
	if out != "Hi {{name}}" {
		t.Errorf("got %q", out)
	}
}
