package coerce

import (
	stderrors "errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/wippyai/ffi-boundary/errors"
)

func bigInt(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad big.Int literal %q", s)
	}
	return n
}

func TestInteger_StrictBounds(t *testing.T) {
	tests := []struct {
		name     string
		target   Descriptor
		min, max string
	}{
		{"i8", DescI8, "-128", "127"},
		{"i16", DescI16, "-32768", "32767"},
		{"i32", DescI32, "-2147483648", "2147483647"},
		{"i64", DescI64, "-9223372036854775808", "9223372036854775807"},
		{"u8", DescU8, "0", "255"},
		{"u16", DescU16, "0", "65535"},
		{"u32", DescU32, "0", "4294967295"},
		{"u64", DescU64, "0", "18446744073709551615"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min := bigInt(t, tt.min)
			max := bigInt(t, tt.max)
			one := big.NewInt(1)

			for _, n := range []*big.Int{min, max} {
				out, err := Convert(n, tt.target)
				if err != nil {
					t.Fatalf("Convert(%s) failed: %v", n, err)
				}
				if fmt.Sprint(out) != n.String() {
					t.Errorf("Convert(%s) = %v, want exact round-trip", n, out)
				}
			}

			for _, n := range []*big.Int{
				new(big.Int).Sub(min, one),
				new(big.Int).Add(max, one),
			} {
				_, err := Convert(n, tt.target)
				if err == nil {
					t.Fatalf("Convert(%s) succeeded, want range failure", n)
				}
				if !errors.IsDomainViolation(err) {
					t.Errorf("Convert(%s) error kind = %v, want value_out_of_range", n, err)
				}
				var e *errors.Error
				if !stderrors.As(err, &e) {
					t.Fatalf("error is not *errors.Error: %v", err)
				}
				if e.Target != tt.name {
					t.Errorf("error target = %q, want %q", e.Target, tt.name)
				}
				if e.Value == nil {
					t.Error("error does not carry the offending value")
				}
			}
		})
	}
}

func TestInteger_NativeWidths(t *testing.T) {
	if v, err := I8(-128); err != nil || v != -128 {
		t.Errorf("I8(-128) = %d, %v", v, err)
	}
	if v, err := I16(32767); err != nil || v != 32767 {
		t.Errorf("I16(32767) = %d, %v", v, err)
	}
	if v, err := I32(-2147483648); err != nil || v != -2147483648 {
		t.Errorf("I32(min) = %d, %v", v, err)
	}
	if v, err := I64(int64(-9223372036854775808)); err != nil || v != -9223372036854775808 {
		t.Errorf("I64(min) = %d, %v", v, err)
	}
	if v, err := U8(255); err != nil || v != 255 {
		t.Errorf("U8(255) = %d, %v", v, err)
	}
	if v, err := U16(65535); err != nil || v != 65535 {
		t.Errorf("U16(65535) = %d, %v", v, err)
	}
	if v, err := U32(4294967295); err != nil || v != 4294967295 {
		t.Errorf("U32(max) = %d, %v", v, err)
	}
	if v, err := U64(uint64(18446744073709551615)); err != nil || v != 18446744073709551615 {
		t.Errorf("U64(max) = %d, %v", v, err)
	}
}

func TestInteger_LargerNumbers(t *testing.T) {
	fail := []struct {
		target Descriptor
		value  int64
	}{
		{DescI8, 1000},
		{DescI16, 100000},
		{DescI32, 10000000000},
		{DescU8, 1000},
		{DescU16, 100000},
		{DescU32, 10000000000},
	}
	for _, tt := range fail {
		if _, err := Convert(tt.value, tt.target); !errors.IsDomainViolation(err) {
			t.Errorf("Convert(%d, %s) = %v, want range failure", tt.value, tt.target, err)
		}
	}

	ok := []struct {
		target Descriptor
		value  int64
	}{
		{DescI8, 100},
		{DescI16, 10000},
		{DescI32, 1000000000},
		{DescI64, 1000000000000000000},
		{DescU8, 100},
		{DescU16, 10000},
		{DescU32, 1000000000},
	}
	for _, tt := range ok {
		out, err := Convert(tt.value, tt.target)
		if err != nil {
			t.Errorf("Convert(%d, %s) failed: %v", tt.value, tt.target, err)
			continue
		}
		if fmt.Sprint(out) != fmt.Sprint(tt.value) {
			t.Errorf("Convert(%d, %s) = %v", tt.value, tt.target, out)
		}
	}

	// 10^19 exceeds i64 but fits u64.
	n := bigInt(t, "10000000000000000000")
	if v, err := U64(n); err != nil || v != 10000000000000000000 {
		t.Errorf("U64(10^19) = %d, %v", v, err)
	}
	if _, err := I64(n); !errors.IsDomainViolation(err) {
		t.Errorf("I64(10^19) = %v, want range failure", err)
	}
}

func TestInteger_Booleans(t *testing.T) {
	for _, target := range Descriptors() {
		if !target.IsInteger() {
			continue
		}
		t.Run(target.String(), func(t *testing.T) {
			out, err := Convert(false, target)
			if err != nil || fmt.Sprint(out) != "0" {
				t.Errorf("Convert(false) = %v, %v, want 0", out, err)
			}
			out, err = Convert(true, target)
			if err != nil || fmt.Sprint(out) != "1" {
				t.Errorf("Convert(true) = %v, %v, want 1", out, err)
			}
		})
	}
}

// indexed declares an exact integer equivalent via the Indexer protocol.
type indexed struct {
	n int64
}

func (x indexed) Index() *big.Int {
	return big.NewInt(x.n)
}

// bigIndexed reports a value only *big.Int can hold.
type bigIndexed struct {
	s string
}

func (x bigIndexed) Index() *big.Int {
	n, _ := new(big.Int).SetString(x.s, 10)
	return n
}

type nilIndexed struct{}

func (nilIndexed) Index() *big.Int { return nil }

func TestInteger_IndexProtocol(t *testing.T) {
	for _, target := range Descriptors() {
		if !target.IsInteger() {
			continue
		}
		out, err := Convert(indexed{123}, target)
		if err != nil {
			t.Errorf("Convert(indexed{123}, %s) failed: %v", target, err)
			continue
		}
		if fmt.Sprint(out) != "123" {
			t.Errorf("Convert(indexed{123}, %s) = %v", target, out)
		}
	}

	// The protocol is subject to the same bounds as a plain integer.
	if _, err := I8(indexed{128}); !errors.IsDomainViolation(err) {
		t.Errorf("I8(indexed{128}) = %v, want range failure", err)
	}
	if v, err := U64(bigIndexed{"18446744073709551615"}); err != nil || v != 18446744073709551615 {
		t.Errorf("U64(bigIndexed max) = %d, %v", v, err)
	}

	if _, err := U8(nilIndexed{}); err == nil {
		t.Error("U8(nilIndexed{}) succeeded, want failure")
	}
}

func TestInteger_RejectsNonIntegers(t *testing.T) {
	type plain struct{ x int }

	sources := []struct {
		name  string
		value any
	}{
		{"nil", nil},
		{"text", "0"},
		{"float zero", 0.0},
		{"float32 zero", float32(0)},
		{"integral float", 42.0},
		{"plain struct", plain{1}},
		{"rune slice", []rune("0")},
	}

	for _, target := range Descriptors() {
		if !target.IsInteger() {
			continue
		}
		for _, src := range sources {
			t.Run(target.String()+"/"+src.name, func(t *testing.T) {
				_, err := Convert(src.value, target)
				if err == nil {
					t.Fatalf("Convert(%v) succeeded, want type mismatch", src.value)
				}
				if !errors.IsTypeMismatch(err) {
					t.Errorf("Convert(%v) error = %v, want type_mismatch", src.value, err)
				}
			})
		}
	}
}

func TestInteger_Idempotent(t *testing.T) {
	first, err := Convert(int16(-300), DescI16)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Convert(first, DescI16)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("re-coercion changed the value: %v != %v", first, second)
	}
}
