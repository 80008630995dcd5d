package coerce

import (
	"unicode/utf8"

	"github.com/wippyai/ffi-boundary/errors"
	"github.com/wippyai/ffi-boundary/internal/limits"
)

// Text converts a caller value to well-formed text.
//
// Accepted sources are strings and rune slices; anything else is a type
// mismatch. The result never contains an unpaired surrogate: a string
// that is not valid UTF-8 (which is how an encoded surrogate manifests
// in Go) and a rune slice holding a surrogate or out-of-range code
// point fail with malformed_text, a distinct category from the
// mismatch. Well-formed input passes through with the exact code point
// sequence preserved.
func Text(value any) (string, error) {
	switch v := value.(type) {
	case string:
		if !utf8.ValidString(v) {
			return "", errors.MalformedText(errors.PhaseValidate, nil, "text is not well-formed UTF-8")
		}
		return v, nil
	case []rune:
		for i, r := range v {
			if limits.IsSurrogate(r) {
				return "", errors.New(errors.PhaseValidate, errors.KindMalformedText).
					Value(r).
					Detail("unpaired surrogate code point U+%04X at index %d", r, i).
					Build()
			}
			if !limits.ValidRune(r) {
				return "", errors.New(errors.PhaseValidate, errors.KindMalformedText).
					Value(r).
					Detail("code point 0x%X at index %d is not a Unicode scalar value", r, i).
					Build()
			}
		}
		return string(v), nil
	default:
		return "", errors.TypeMismatch(errors.PhaseLower, nil, limits.TypeName(value), DescText.String())
	}
}
