package util

import (
	"errors"
	"strings"
	"testing"
)

func TestValidationBuilder(t *testing.T) {
	v := &ValidationBuilder{}
	v.Add(true, "should not appear")
	if v.HasErrors() {
		t.Error("passing condition recorded an error")
	}
	if v.Build() != nil {
		t.Error("Build() returned error with no failures")
	}

	v.Add(false, "interface name is required")
	v.AddErrorf("unknown intent %q", "rename")
	if !v.HasErrors() {
		t.Fatal("failures not recorded")
	}

	err := v.Build()
	if !errors.Is(err, ErrValidationFailed) {
		t.Errorf("Build() error does not unwrap to ErrValidationFailed: %v", err)
	}
	msg := err.Error()
	for _, want := range []string{"interface name is required", `unknown intent "rename"`} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q missing %q", msg, want)
		}
	}
}

func TestValidationErrorSingle(t *testing.T) {
	err := (&ValidationError{Errors: []string{"just one"}}).Error()
	if strings.Contains(err, "\n") {
		t.Errorf("single failure rendered multi-line: %q", err)
	}
}
