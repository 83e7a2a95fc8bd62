package backend

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestClassifyNil(t *testing.T) {
	if err := classify("generate", nil); err != nil {
		t.Errorf("classify(nil) = %v, want nil", err)
	}
}

func TestClassifyDeadline(t *testing.T) {
	err := classify("generate", context.DeadlineExceeded)

	var be *Error
	if !errors.As(err, &be) {
		t.Fatalf("classify should return *Error, got %T", err)
	}
	if be.Kind != KindTimeout {
		t.Errorf("kind = %q, want %q", be.Kind, KindTimeout)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("classified error should unwrap to the original cause")
	}
}

func TestClassifyConnectionFailure(t *testing.T) {
	cause := fmt.Errorf("dial tcp: connection refused")
	err := classify("generate", cause)

	var be *Error
	if !errors.As(err, &be) {
		t.Fatalf("classify should return *Error, got %T", err)
	}
	if be.Kind != KindUnavailable {
		t.Errorf("kind = %q, want %q", be.Kind, KindUnavailable)
	}
}

func TestUnavailable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"timeout", &Error{Kind: KindTimeout, Op: "generate", Err: context.DeadlineExceeded}, true},
		{"quota", &Error{Kind: KindQuota, Op: "generate", Err: fmt.Errorf("429")}, true},
		{"unavailable", &Error{Kind: KindUnavailable, Op: "generate", Err: fmt.Errorf("503")}, true},
		{"invalid", &Error{Kind: KindInvalid, Op: "generate", Err: fmt.Errorf("400")}, false},
		{"plain", fmt.Errorf("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		if got := Unavailable(tt.err); got != tt.want {
			t.Errorf("%s: Unavailable() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Kind: KindQuota, Op: "generate", Err: fmt.Errorf("rate limited")}
	msg := err.Error()
	if msg != "backend generate: quota: rate limited" {
		t.Errorf("unexpected error message %q", msg)
	}
}

func TestGeneratorFunc(t *testing.T) {
	gen := GeneratorFunc(func(ctx context.Context, prompt string) (string, error) {
		return "echo: " + prompt, nil
	})

	out, err := gen.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if out != "echo: hello" {
		t.Errorf("Generate = %q, want %q", out, "echo: hello")
	}
}
