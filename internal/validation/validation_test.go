package validation

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Title   string `validate:"required,max=10"`
	Message string `validate:"required,min=5"`
	Email   string `validate:"omitempty,email"`
}

func TestStructAcceptsValidRequest(t *testing.T) {
	req := sampleRequest{Title: "Hello", Message: "long enough"}
	if err := Struct(&req); err != nil {
		t.Fatalf("Struct() error = %v, want nil", err)
	}
}

func TestStructReportsMissingFields(t *testing.T) {
	err := Struct(&sampleRequest{})
	if err == nil {
		t.Fatal("Struct() error = nil, want required failures")
	}
	msg := err.Error()
	if !strings.Contains(msg, "title is required") {
		t.Fatalf("message = %q, want title failure", msg)
	}
	if !strings.Contains(msg, "message is required") {
		t.Fatalf("message = %q, want message failure", msg)
	}
}

func TestStructReportsMinLength(t *testing.T) {
	err := Struct(&sampleRequest{Title: "Hi", Message: "ab"})
	if err == nil {
		t.Fatal("Struct() error = nil, want min failure")
	}
	if !strings.Contains(err.Error(), "message must be at least 5 characters long") {
		t.Fatalf("message = %q, want min-length text", err.Error())
	}
}

func TestStructReportsInvalidEmail(t *testing.T) {
	err := Struct(&sampleRequest{Title: "Hi", Message: "long enough", Email: "not-an-email"})
	if err == nil {
		t.Fatal("Struct() error = nil, want email failure")
	}
	if !strings.Contains(err.Error(), "email must be a valid email address") {
		t.Fatalf("message = %q, want email text", err.Error())
	}
}
