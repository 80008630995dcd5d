package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/wippyai/ffi-boundary/coerce"
	"github.com/wippyai/ffi-boundary/stack"
)

func main() {
	var (
		typeName    = flag.String("type", "", "Target type (i8..i64, u8..u64, f32, f64, text)")
		value       = flag.String("value", "", "Value to coerce")
		list        = flag.Bool("list", false, "List target types and exit")
		showSlot    = flag.Bool("slot", false, "Also show the core stack slot for scalar results")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *list {
		for _, d := range coerce.Descriptors() {
			fmt.Println(d)
		}
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *typeName == "" {
		fmt.Fprintln(os.Stderr, "Usage: coerce -type <target> -value <value> [-slot]")
		fmt.Fprintln(os.Stderr, "       coerce -list")
		fmt.Fprintln(os.Stderr, "       coerce -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*typeName, *value, *showSlot); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(typeName, raw string, showSlot bool) error {
	target, ok := coerce.ParseDescriptor(typeName)
	if !ok {
		return fmt.Errorf("unknown target type %q", typeName)
	}

	value := parseValue(raw)
	out, err := coerce.Convert(value, target)
	if err != nil {
		return err
	}

	fmt.Printf("%v (%T)\n", out, out)

	if showSlot && target != coerce.DescText {
		slot, err := stack.Lower(target, out)
		if err != nil {
			return err
		}
		fmt.Printf("slot: 0x%016x\n", slot)
	}
	return nil
}

// parseValue interprets the flag the way a dynamically typed caller
// would supply it: integer literals stay exact (arbitrary precision),
// decimal and special-float literals become floats, true/false become
// booleans, quoted or unrecognized input is text.
func parseValue(raw string) any {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}

	if n, ok := new(big.Int).SetString(raw, 10); ok {
		return n
	}

	switch strings.ToLower(raw) {
	case "nan":
		return parseFloat("NaN")
	case "inf", "+inf", "infinity":
		return parseFloat("+Inf")
	case "-inf", "-infinity":
		return parseFloat("-Inf")
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}

	if s, err := strconv.Unquote(raw); err == nil {
		return s
	}
	return raw
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
