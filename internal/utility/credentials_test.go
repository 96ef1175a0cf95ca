package utility

import (
	"strings"
	"testing"
)

func TestGeneratePassword_Length(t *testing.T) {
	pw, err := GeneratePassword(12)
	if err != nil {
		t.Fatalf("GeneratePassword: %v", err)
	}
	if len(pw) != 12 {
		t.Errorf("len = %d, want 12", len(pw))
	}
}

func TestGeneratePassword_MinimumLength(t *testing.T) {
	pw, err := GeneratePassword(3)
	if err != nil {
		t.Fatalf("GeneratePassword: %v", err)
	}
	if len(pw) != 8 {
		t.Errorf("short requests must be raised to 8 characters, got %d", len(pw))
	}
}

func TestGeneratePassword_CharsetOnly(t *testing.T) {
	pw, err := GeneratePassword(64)
	if err != nil {
		t.Fatalf("GeneratePassword: %v", err)
	}
	for _, r := range pw {
		if !strings.ContainsRune(passwordCharset, r) {
			t.Errorf("character %q outside charset", r)
		}
	}
}

func TestGeneratePassword_Unique(t *testing.T) {
	a, _ := GeneratePassword(16)
	b, _ := GeneratePassword(16)
	if a == b {
		t.Error("two generated passwords should not collide")
	}
}
