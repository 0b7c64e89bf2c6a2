package drafthorse

import (
	"context"
	"sync"
)

// Validator checks rendered document bytes against one schema profile.
type Validator interface {
	Validate(ctx context.Context, doc []byte) error
}

// ValidatorFunc adapts a plain function to the Validator interface.
type ValidatorFunc func(ctx context.Context, doc []byte) error

func (f ValidatorFunc) Validate(ctx context.Context, doc []byte) error { return f(ctx, doc) }

var (
	schemaMu   sync.RWMutex
	schemaReg  = map[string]Validator{}
	schemaList []string
)

// RegisterSchema registers a validator under a schema profile name. Later
// registrations replace earlier ones. Registration normally happens in
// package init; validation may run from any goroutine.
func RegisterSchema(name string, v Validator) {
	schemaMu.Lock()
	defer schemaMu.Unlock()
	if _, dup := schemaReg[name]; !dup {
		schemaList = append(schemaList, name)
	}
	schemaReg[name] = v
}

// Schemas reports the registered schema profile names in registration order.
func Schemas() []string {
	schemaMu.RLock()
	defer schemaMu.RUnlock()
	out := make([]string, len(schemaList))
	copy(out, schemaList)
	return out
}

// Validate runs the named schema validator over rendered document bytes.
// The validator's error is propagated unchanged.
func Validate(ctx context.Context, doc []byte, schema string) error {
	schemaMu.RLock()
	v, ok := schemaReg[schema]
	schemaMu.RUnlock()
	if !ok {
		return Issues{{Path: "/", Code: CodeUnknownSchema, Message: "no validator registered for schema " + schema}}
	}
	return v.Validate(ctx, doc)
}
