// Package meta gives boundary interfaces a verifiable identity.
//
// A scaffolding layer generates entry points from an interface
// description; the runtime on the far side was built from its own copy
// of that description. Checksum lets both sides confirm they agree on
// every signature before the first value crosses, and ContractVersion
// guards the coercion rules themselves.
package meta
