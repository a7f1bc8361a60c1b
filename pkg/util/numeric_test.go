package util

import (
	"math"
	"testing"
)

func TestFinite(t *testing.T) {
	if got := Finite(42.5); got != 42.5 {
		t.Fatalf("unexpected %v", got)
	}
	if got := Finite(math.NaN()); got != 0 {
		t.Fatalf("NaN should coerce to 0, got %v", got)
	}
	if got := Finite(math.Inf(1)); got != 0 {
		t.Fatalf("+Inf should coerce to 0, got %v", got)
	}
	if got := FiniteDefault(math.Inf(-1), 1); got != 1 {
		t.Fatalf("-Inf should coerce to default, got %v", got)
	}
}

func TestNum(t *testing.T) {
	m := map[string]any{
		"f":   1.5,
		"i":   int(3),
		"nan": math.NaN(),
		"s":   "text",
	}
	if got := Num(m, "f"); got != 1.5 {
		t.Fatalf("unexpected %v", got)
	}
	if got := Num(m, "i"); got != 3 {
		t.Fatalf("unexpected %v", got)
	}
	if got := Num(m, "nan"); got != 0 {
		t.Fatalf("NaN entry should read as 0, got %v", got)
	}
	if got := Num(m, "s"); got != 0 {
		t.Fatalf("non-numeric entry should read as 0, got %v", got)
	}
	if got := Num(nil, "f"); got != 0 {
		t.Fatalf("nil map should read as 0, got %v", got)
	}
}

func TestFlag(t *testing.T) {
	m := map[string]any{"on": true, "n": 1}
	if !Flag(m, "on") {
		t.Fatalf("expected true")
	}
	if Flag(m, "n") || Flag(m, "missing") || Flag(nil, "on") {
		t.Fatalf("expected false")
	}
}
