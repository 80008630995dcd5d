package coerce

import (
	"math"
	"testing"

	"github.com/wippyai/ffi-boundary/errors"
)

func TestConvert_ResultTypes(t *testing.T) {
	tests := []struct {
		name   string
		target Descriptor
		value  any
		check  func(any) bool
	}{
		{"i8", DescI8, 5, func(v any) bool { _, ok := v.(int8); return ok }},
		{"i16", DescI16, 5, func(v any) bool { _, ok := v.(int16); return ok }},
		{"i32", DescI32, 5, func(v any) bool { _, ok := v.(int32); return ok }},
		{"i64", DescI64, 5, func(v any) bool { _, ok := v.(int64); return ok }},
		{"u8", DescU8, 5, func(v any) bool { _, ok := v.(uint8); return ok }},
		{"u16", DescU16, 5, func(v any) bool { _, ok := v.(uint16); return ok }},
		{"u32", DescU32, 5, func(v any) bool { _, ok := v.(uint32); return ok }},
		{"u64", DescU64, 5, func(v any) bool { _, ok := v.(uint64); return ok }},
		{"f32", DescF32, 1.5, func(v any) bool { _, ok := v.(float32); return ok }},
		{"f64", DescF64, 1.5, func(v any) bool { _, ok := v.(float64); return ok }},
		{"text", DescText, "hi", func(v any) bool { _, ok := v.(string); return ok }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Convert(tt.value, tt.target)
			if err != nil {
				t.Fatalf("Convert failed: %v", err)
			}
			if !tt.check(out) {
				t.Errorf("Convert(%v, %s) returned %T, want exact native type", tt.value, tt.target, out)
			}
		})
	}
}

func TestConvert_FailureLeavesNoResult(t *testing.T) {
	out, err := Convert("nope", DescU8)
	if err == nil {
		t.Fatal("Convert succeeded")
	}
	if out != nil {
		t.Errorf("failed Convert returned partial result %v", out)
	}
}

func TestConvert_UnknownDescriptor(t *testing.T) {
	_, err := Convert(1, Descriptor(99))
	if err == nil {
		t.Fatal("Convert with unknown descriptor succeeded")
	}
	if errors.IsTypeMismatch(err) || errors.IsDomainViolation(err) {
		t.Errorf("unknown descriptor misclassified: %v", err)
	}
}

func TestConvert_IdempotentAcrossDescriptors(t *testing.T) {
	inputs := map[Descriptor]any{
		DescI8:   int8(-5),
		DescI16:  int16(-500),
		DescI32:  int32(-50000),
		DescI64:  int64(-5000000000),
		DescU8:   uint8(200),
		DescU16:  uint16(60000),
		DescU32:  uint32(4000000000),
		DescU64:  uint64(18000000000000000000),
		DescF32:  float32(2.5),
		DescF64:  math.Copysign(0, -1),
		DescText: "愛",
	}

	for d, v := range inputs {
		t.Run(d.String(), func(t *testing.T) {
			first, err := Convert(v, d)
			if err != nil {
				t.Fatalf("Convert failed: %v", err)
			}
			second, err := Convert(first, d)
			if err != nil {
				t.Fatalf("re-Convert failed: %v", err)
			}
			if first != second {
				t.Errorf("re-coercion changed the value: %v != %v", first, second)
			}
		})
	}
}
