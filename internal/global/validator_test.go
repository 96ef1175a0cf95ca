package global

import (
	"testing"
)

type brandingInput struct {
	Color string `validate:"omitempty,hex_color"`
}

func TestHexColorRule(t *testing.T) {
	InitValidator()

	valid := []string{"", "#fff", "#FFF", "#1a2b3c", "#ABCDEF"}
	for _, color := range valid {
		if err := Validate.Struct(brandingInput{Color: color}); err != nil {
			t.Errorf("%q must be accepted: %v", color, err)
		}
	}

	invalid := []string{"fff", "#ff", "#ffff", "#fffffff", "#ggg", "red"}
	for _, color := range invalid {
		if err := Validate.Struct(brandingInput{Color: color}); err == nil {
			t.Errorf("%q must be rejected", color)
		}
	}
}

type passwordInput struct {
	Password string `validate:"strong_password"`
}

func TestStrongPasswordRule(t *testing.T) {
	InitValidator()

	if err := Validate.Struct(passwordInput{Password: "Abcdef12"}); err != nil {
		t.Errorf("compliant password rejected: %v", err)
	}
	for _, p := range []string{"short1A", "alllower1", "ALLUPPER1", "NoDigitsHere"} {
		if err := Validate.Struct(passwordInput{Password: p}); err == nil {
			t.Errorf("%q must be rejected", p)
		}
	}
}
