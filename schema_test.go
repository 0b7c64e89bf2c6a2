package drafthorse_test

import (
	"context"
	"testing"

	drafthorse "github.com/olf42/drafthorse"
)

func TestValidate_UnknownSchema(t *testing.T) {
	err := drafthorse.Validate(context.Background(), []byte("<x/>"), "no-such-profile")
	iss, ok := drafthorse.AsIssues(err)
	if !ok || iss[0].Code != drafthorse.CodeUnknownSchema {
		t.Fatalf("expected unknown_schema, got %v", err)
	}
}

func TestValidate_PropagatesValidatorError(t *testing.T) {
	want := drafthorse.Issues{{Path: "/", Code: drafthorse.CodeValidationFailed, Message: "nope"}}
	drafthorse.RegisterSchema("failing-profile", drafthorse.ValidatorFunc(
		func(ctx context.Context, doc []byte) error { return want },
	))
	err := drafthorse.Validate(context.Background(), []byte("<x/>"), "failing-profile")
	iss, ok := drafthorse.AsIssues(err)
	if !ok || iss[0].Message != "nope" {
		t.Fatalf("validator error must propagate unchanged, got %v", err)
	}
}

func TestSchemas_ReportsRegistrationOrder(t *testing.T) {
	pass := drafthorse.ValidatorFunc(func(ctx context.Context, doc []byte) error { return nil })
	drafthorse.RegisterSchema("order-a", pass)
	drafthorse.RegisterSchema("order-b", pass)
	var seen []string
	for _, name := range drafthorse.Schemas() {
		if name == "order-a" || name == "order-b" {
			seen = append(seen, name)
		}
	}
	if len(seen) != 2 || seen[0] != "order-a" || seen[1] != "order-b" {
		t.Fatalf("expected registration order, got %v", seen)
	}
	if err := drafthorse.Validate(context.Background(), nil, "order-a"); err != nil {
		t.Fatalf("pass validator should pass: %v", err)
	}
}
