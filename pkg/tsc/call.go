package tsc

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/dop251/goja"

	"github.com/Sumatoshi-tech/tscbridge/pkg/safeconv"
)

var errNotFunction = errors.New("not a function")

// CallRecorder observes every foreign call a program makes.
type CallRecorder interface {
	RecordForeignCall(op string, took time.Duration, err error)
}

// do runs fn as one foreign call. Calls are serialized per program; a closed
// program fails every call. Engine exceptions and panics raised while fn runs
// come back as *ForeignCallError tagged with op.
func (p *Program) do(op string, fn func() error) (err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return fmt.Errorf("%s: %w", op, ErrContextClosed)
	}

	started := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = &ForeignCallError{Op: op, Err: panicError(r)}
		}

		if p.recorder != nil {
			p.recorder.RecordForeignCall(op, time.Since(started), err)
		}
	}()

	err = fn()
	if isEngineError(err) {
		err = &ForeignCallError{Op: op, Err: err}
	}

	return err
}

func isEngineError(err error) bool {
	if err == nil {
		return false
	}

	var fce *ForeignCallError
	if errors.As(err, &fce) {
		return false
	}

	var exception *goja.Exception

	var interrupted *goja.InterruptedError

	return errors.As(err, &exception) || errors.As(err, &interrupted)
}

func panicError(r any) error {
	switch v := r.(type) {
	case error:
		return v
	case goja.Value:
		return fmt.Errorf("engine threw %s", v.String())
	default:
		return fmt.Errorf("engine panic: %v", v)
	}
}

// invoke calls obj[method](args...) with obj as the receiver.
func invoke(obj *goja.Object, method string, args ...goja.Value) (goja.Value, error) {
	fn, ok := goja.AssertFunction(obj.Get(method))
	if !ok {
		return nil, &ForeignCallError{Op: method, Err: errNotFunction}
	}

	v, err := fn(obj, args...)
	if err != nil {
		return nil, &ForeignCallError{Op: method, Err: err}
	}

	return v, nil
}

// hasMethod reports whether obj[method] is callable.
func hasMethod(obj *goja.Object, method string) bool {
	_, ok := goja.AssertFunction(obj.Get(method))

	return ok
}

// isMissing reports a property that does not exist on the object.
func isMissing(v goja.Value) bool {
	return v == nil || goja.IsUndefined(v)
}

// isAbsent reports a property that is missing or explicitly null.
func isAbsent(v goja.Value) bool {
	return isMissing(v) || goja.IsNull(v)
}

// typeOf names the engine type of v for error messages.
func typeOf(v goja.Value) string {
	switch {
	case isMissing(v):
		return "undefined"
	case goja.IsNull(v):
		return "null"
	}

	if obj, ok := v.(*goja.Object); ok {
		if _, isFunc := goja.AssertFunction(obj); isFunc {
			return "function"
		}

		if obj.ClassName() == "Array" {
			return "array"
		}

		return "object"
	}

	switch v.Export().(type) {
	case bool:
		return "boolean"
	case string:
		return "string"
	case int64, float64:
		return "number"
	case *big.Int:
		return "bigint"
	default:
		return v.ExportType().String()
	}
}
// intValue converts a whole engine number to int; fractions are rejected.
// intValue converts an engine number to int.
func intValue(v goja.Value) (int, bool) {
	if isAbsent(v) {
		return 0, false
	}

	if _, isObj := v.(*goja.Object); isObj {
		return 0, false
	}

	return safeconv.ToInt(v.Export())
}

// objectValue returns v as an object, or nil when it is not one.
func objectValue(v goja.Value) *goja.Object {
	obj, ok := v.(*goja.Object)
	if !ok || obj == nil {
		return nil
	}

	return obj
}
