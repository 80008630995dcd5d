package bind

import (
	stderrors "errors"
	"strconv"

	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	"github.com/wippyai/ffi-boundary/coerce"
	"github.com/wippyai/ffi-boundary/errors"
	"github.com/wippyai/ffi-boundary/stack"
)

// Func describes one boundary entry point: a named function signature
// over WIT primitive types, as declared by the interface description a
// scaffolding layer works from.
type Func struct {
	Namespace string
	Name      string
	Params    []wit.Type
	Result    wit.Type // nil when the function returns nothing
}

// BoundFunc is a Func with its parameter descriptors resolved. It is
// immutable and safe for concurrent use.
type BoundFunc struct {
	fn        Func
	params    []coerce.Descriptor
	result    coerce.Descriptor
	hasResult bool
}

// Bind resolves the signature's WIT types to coercion descriptors.
// Signatures using compound or non-coercible WIT types fail here, at
// bind time, rather than on the first call.
func Bind(f Func) (*BoundFunc, error) {
	params := make([]coerce.Descriptor, len(f.Params))
	for i, t := range f.Params {
		d, ok := coerce.DescriptorFromWIT(t)
		if !ok {
			return nil, errors.New(errors.PhaseBind, errors.KindUnsupported).
				Path("param[" + strconv.Itoa(i) + "]").
				Detail("%s#%s: WIT type has no coercion descriptor", f.Namespace, f.Name).
				Build()
		}
		params[i] = d
	}

	b := &BoundFunc{fn: f, params: params}
	if f.Result != nil {
		d, ok := coerce.DescriptorFromWIT(f.Result)
		if !ok {
			return nil, errors.New(errors.PhaseBind, errors.KindUnsupported).
				Detail("%s#%s: result WIT type has no coercion descriptor", f.Namespace, f.Name).
				Build()
		}
		b.result = d
		b.hasResult = true
	}
	return b, nil
}

// Name returns the namespace-qualified function name.
func (b *BoundFunc) Name() string {
	if b.fn.Namespace == "" {
		return b.fn.Name
	}
	return b.fn.Namespace + "#" + b.fn.Name
}

// Params returns the resolved parameter descriptors.
func (b *BoundFunc) Params() []coerce.Descriptor {
	out := make([]coerce.Descriptor, len(b.params))
	copy(out, b.params)
	return out
}

// Result returns the resolved result descriptor, if any.
func (b *BoundFunc) Result() (coerce.Descriptor, bool) {
	return b.result, b.hasResult
}

// Coerce converts each caller argument with its parameter's descriptor.
// The first rejected argument aborts the call; its error carries the
// argument position in the path.
func (b *BoundFunc) Coerce(args ...any) ([]any, error) {
	if len(args) != len(b.params) {
		return nil, errors.InvalidData(errors.PhaseLower, nil,
			"argument count mismatch: expected "+strconv.Itoa(len(b.params))+", got "+strconv.Itoa(len(args)))
	}

	out := make([]any, len(args))
	for i, arg := range args {
		v, err := coerce.Convert(arg, b.params[i])
		if err != nil {
			Logger().Debug("argument rejected",
				zap.String("func", b.Name()),
				zap.Int("index", i),
				zap.String("target", b.params[i].String()),
				zap.Error(err))
			return nil, withArgPath(err, i)
		}
		out[i] = v
	}
	return out, nil
}

// LowerArgs coerces each argument and packs it into core stack slots,
// ready to hand to the runtime on the far side. Text parameters travel
// through linear memory, which is the scaffolding layer's concern, so a
// signature containing text cannot be lowered this way.
func (b *BoundFunc) LowerArgs(args ...any) ([]uint64, error) {
	natives, err := b.Coerce(args...)
	if err != nil {
		return nil, err
	}

	flat := make([]uint64, len(natives))
	for i, v := range natives {
		slot, err := stack.Lower(b.params[i], v)
		if err != nil {
			return nil, withArgPath(err, i)
		}
		flat[i] = slot
	}
	return flat, nil
}

// LiftResult unpacks the runtime's scalar result slot into the
// declared result type.
func (b *BoundFunc) LiftResult(slot uint64) (any, error) {
	if !b.hasResult {
		return nil, errors.InvalidData(errors.PhaseLift, nil, "function declares no result")
	}
	return stack.Lift(b.result, slot)
}

// withArgPath prefixes the argument position onto a classified error's
// path, leaving other errors untouched.
func withArgPath(err error, i int) error {
	var e *errors.Error
	if stderrors.As(err, &e) {
		c := *e
		c.Path = append([]string{"arg[" + strconv.Itoa(i) + "]"}, e.Path...)
		return &c
	}
	return err
}
