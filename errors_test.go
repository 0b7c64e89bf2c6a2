package drafthorse_test

import (
	"fmt"
	"strings"
	"testing"

	drafthorse "github.com/olf42/drafthorse"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := drafthorse.Issues{
		{Path: "/a", Code: drafthorse.CodeTagMismatch},
		{Path: "/b", Code: drafthorse.CodeUnknownElement},
		{Path: "/c", Code: drafthorse.CodeInvalidDecimal},
		{Path: "/d", Code: drafthorse.CodeMissingAttribute},
	}
	s := iss.Error()
	if s == "" {
		t.Fatalf("expected non-empty error summary")
	}
	if !strings.Contains(s, "tag_mismatch at /a") {
		t.Fatalf("summary should lead with the first issue, got %q", s)
	}
	if !strings.Contains(s, "total 4") {
		t.Fatalf("summary should report the total beyond the shown prefix, got %q", s)
	}
}

func TestAsIssues(t *testing.T) {
	err := fmt.Errorf("wrapping: %w", drafthorse.Issues{{Path: "/", Code: drafthorse.CodeParseError}})
	iss, ok := drafthorse.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected one issue through errors.As, got %v ok=%v", iss, ok)
	}
	if _, ok := drafthorse.AsIssues(fmt.Errorf("plain")); ok {
		t.Fatalf("plain errors must not extract as Issues")
	}
	if _, ok := drafthorse.AsIssues(nil); ok {
		t.Fatalf("nil must not extract as Issues")
	}
}

func TestPrefixIssues(t *testing.T) {
	err := drafthorse.PrefixIssues(drafthorse.Issues{
		{Path: "/", Code: drafthorse.CodeInvalidDecimal},
		{Path: "/Inner", Code: drafthorse.CodeUnknownElement},
	}, "/Outer")
	iss, _ := drafthorse.AsIssues(err)
	if iss[0].Path != "/Outer" {
		t.Fatalf("root path should rebase to the prefix, got %q", iss[0].Path)
	}
	if iss[1].Path != "/Outer/Inner" {
		t.Fatalf("nested path should gain the prefix, got %q", iss[1].Path)
	}
	plain := fmt.Errorf("not issues")
	if got := drafthorse.PrefixIssues(plain, "/x"); got != plain {
		t.Fatalf("non-Issues errors must pass through unchanged")
	}
}
