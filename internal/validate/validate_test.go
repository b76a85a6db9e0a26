package validate

import (
	"errors"
	"testing"
)

func TestCredentials(t *testing.T) {
	cases := []struct {
		Casename string
		Email    string
		Password string
		Field    string
	}{
		{"valid", "someone@example.com", "hunter22", ""},
		{"valid with display casing", "Someone@Example.COM", "123456", ""},
		{"empty email", "", "hunter22", "email"},
		{"no at sign", "someone.example.com", "hunter22", "email"},
		{"no domain", "someone@", "hunter22", "email"},
		{"spaces", "some one@example.com", "hunter22", "email"},
		{"password five chars", "someone@example.com", "12345", "password"},
		{"empty password", "someone@example.com", "", "password"},
		{"email checked first", "nonsense", "", "email"},
	}

	for _, c := range cases {
		t.Run(c.Casename, func(t *testing.T) {
			err := Credentials(c.Email, c.Password)
			if c.Field == "" {
				if err != nil {
					t.Errorf("unexpected error: %s", err)
				}
				return
			}

			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected a validation error, got %v", err)
			}
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("expected a field error, got %v", err)
			}
			if fieldErr.Field != c.Field {
				t.Errorf("expected field %q, got %q", c.Field, fieldErr.Field)
			}
		})
	}
}

func TestPasswordMinLength(t *testing.T) {
	if err := Password("123456"); err != nil {
		t.Errorf("six characters must pass: %s", err)
	}
	if err := Password("12345"); err == nil {
		t.Error("five characters must fail")
	}
}
