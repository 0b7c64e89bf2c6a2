package drafthorse

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeTagMismatch           = "tag_mismatch"
	CodeUnknownElement        = "unknown_element"
	CodeUnknownField          = "unknown_field"
	CodeInvalidType           = "invalid_type"
	CodeInvalidDecimal        = "invalid_decimal"
	CodeMissingAttribute      = "missing_attribute"
	CodeMalformedDate         = "malformed_date_container"
	CodeUnsupportedDateFormat = "unsupported_date_format"
	CodeMalformedIndicator    = "malformed_indicator"
	CodeParseError            = "parse_error"
	CodeUnknownSchema         = "unknown_schema"
	CodeValidationFailed      = "validation_failed"
)

// Issue represents a single codec or validation failure.
type Issue struct {
	Path    string `json:"path"` // Slash-separated element path (for example: /HeaderExchangedDocument/IssueDateTime).
	Code    string `json:"code"` // One of the codes listed above.
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`  // Optional: the offending qualified tag.
	Attr    string `json:"attr,omitempty"` // Optional: the offending attribute name.
	Cause   error  `json:"-"`              // Optional: underlying error.
}

// Issues is a collection of failures that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unknown_element at /SpecifiedSupplyChainTradeTransaction
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Message != "" {
			fmt.Fprintf(b, ": %s", it.Message)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// PrefixIssues rebases the paths of all Issues in err under prefix. Errors
// that are not Issues pass through unchanged.
func PrefixIssues(err error, prefix string) error {
	iss, ok := AsIssues(err)
	if !ok {
		return err
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		if it.Path == "/" || it.Path == "" {
			it.Path = prefix
		} else {
			it.Path = prefix + it.Path
		}
		out[i] = it
	}
	return out
}
