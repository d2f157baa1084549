package tsc

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the bridge. Callers distinguish them with [errors.Is].
var (
	// ErrForeignCall marks any failure while invoking into or reading from the engine.
	ErrForeignCall = errors.New("foreign call failed")
	// ErrTypeMismatch marks a scalar accessor used on a property of another type.
	ErrTypeMismatch = errors.New("property type mismatch")
	// ErrMissingProperty marks a property or child that was required but absent.
	ErrMissingProperty = errors.New("missing property")
	// ErrUnrecognizedKind marks a syntax kind code the table does not know.
	ErrUnrecognizedKind = errors.New("unrecognized syntax kind code")
	// ErrUnsupportedMutation is returned by every mutator of a NodeList.
	ErrUnsupportedMutation = errors.New("node list is not modifiable")
	// ErrIndexOutOfRange marks out-of-bounds positional access.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrContextClosed marks use of a wrapper after its program context was closed.
	ErrContextClosed = errors.New("program context is closed")
	// ErrScannerClosed marks use of a scanner after Close.
	ErrScannerClosed = errors.New("scanner is closed")
	// ErrNoToken marks a token query before the first Scan after a reset.
	ErrNoToken = errors.New("scanner has no current token")
	// ErrStopTraversal may be returned by a ForEachChild callback to stop early.
	ErrStopTraversal = errors.New("stop traversal")
)

// ForeignCallError wraps a failure raised by the engine.
type ForeignCallError struct {
	Op  string
	Err error
}

func (e *ForeignCallError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrForeignCall.Error(), e.Op, e.Err)
}

// Unwrap returns the underlying engine failure.
func (e *ForeignCallError) Unwrap() error { return e.Err }

// Is reports whether target is ErrForeignCall.
func (e *ForeignCallError) Is(target error) bool { return target == ErrForeignCall }

// PropertyError describes a failed typed property access.
// Kind is either ErrTypeMismatch or ErrMissingProperty.
type PropertyError struct {
	Kind     error
	Property string
	NodeKind SyntaxKind
	Want     string
	Got      string
}

func (e *PropertyError) Error() string {
	if e.Kind == ErrTypeMismatch {
		return fmt.Sprintf("property <%s> on %s: %s: want %s, got %s", e.Property, e.NodeKind, e.Kind, e.Want, e.Got)
	}

	return fmt.Sprintf("property <%s> does not exist on %s: %s", e.Property, e.NodeKind, e.Kind)
}

// Unwrap returns the error kind.
func (e *PropertyError) Unwrap() error { return e.Kind }

func missingProperty(name string, kind SyntaxKind) error {
	return &PropertyError{Kind: ErrMissingProperty, Property: name, NodeKind: kind}
}

func typeMismatch(name string, kind SyntaxKind, want, got string) error {
	return &PropertyError{Kind: ErrTypeMismatch, Property: name, NodeKind: kind, Want: want, Got: got}
}
