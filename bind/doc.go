// Package bind produces per-signature entry points for scaffolding
// layers.
//
// A code generator that reads an interface description declares each
// function as a bind.Func over WIT primitive types; Bind resolves the
// signature once, and the returned BoundFunc coerces and lowers caller
// arguments on every call:
//
//	f, err := bind.Bind(bind.Func{
//		Namespace: "demo:limits",
//		Name:      "take-u8",
//		Params:    []wit.Type{wit.U8{}},
//	})
//	slots, err := f.LowerArgs(255)  // []uint64{255}
//	_, err = f.LowerArgs(256)       // [lower] value_out_of_range at arg[0] ...
//
// Rejections surface the classified error from the errors package so
// the call site can raise its caller's equivalent of a TypeError or
// ValueError.
package bind
