package migraine

import (
	"errors"
	"math"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		src      string
		expected float64
	}{
		// arithmetic
		{"32 + 40", 72},
		{"15 + 20 + 5", 40},
		{"42 - 30 - 6", 6},
		{"5 * 2 * 8", 80},
		{"80 / 20 / 2", 2},
		{"15 - 20 / 5 + 10 * 2", 31},
		{"2 * 8 + 21 / 7 * 4 - 15 + 6 + 3 * 8 / 4 / 2 - 1 + 4", 25},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"(3)", 3},
		{"(3 + 4) / 2", 3.5},
		{"-(2+3)*4", -20},
		{"-(-3 + 5 * -(14 - -7)) / -2", -54},
		{"", 0},
		{"{}", 0},

		// variables
		{"x = 2.625", 2.625},
		{"x = 5; x + 1", 6},
		{"x = y = 5", 5},
		{"x = y = 5; x + y", 10},
		{"x = 12; y = 2 * x; z = -y / 2;", -12},
		{"(x = 2) * x", 4},
		{"n = 5; { n = 6 } n", 6},
		{"{ n = 1; { n = n + 1 } n }", 2},

		// functions
		{"add(1,2); fun add(n1,n2){ n1 + n2 }", 0},
		{"fun add(n1,n2){ n1 + n2 } add(3, 8)", 11},
		{"fun square(n){n*n} square(5)", 25},
		{"fun square(n){n*n} fun add(a,b){a+b} add(square(2), square(3))", 13},
		{"fun zero() {} zero()", 0},
		{"fun one() { 1 } one() + one()", 2},
		{"a = 2; fun f(a, b) { a + b } f(a * 10, a)", 22},
		{"n = 5; fun f(n) { n = 10 } f(1); n", 5},
		{"fun sum(n) { if (n > 0) { n + sum(n - 1) } } sum(4)", 10},
		{"fun outer() { fun inner() { 3 } inner() + 1 } outer()", 4},
		{"{ fun inBlock() { 2 } } inBlock()", 2},

		// the callee sees the caller's variables
		{"fun f() { x } x = 3; f()", 3},
		{"fun g() { y } fun h() { y = 7; g() } h()", 7},

		// conditionals
		{"n=5; if (n==5) { n=6 } n", 6},
		{"n=5; if (0) { n=6 } n", 5},
		{"if (1 == 1) { 7 }", 7},
		{"if (1 == 2) { 7 }", 0},
		{"if (2 < 3) { 1 }", 1},
		{"if (3 < 2) { 1 }", 0},
		{"if (3 > 2) { 1 }", 1},
		{"if (3 <= 3) { 1 }", 1},
		{"if (2 >= 3) { 1 }", 0},
		{"if (5 - 5) { 1 }", 0},
		{"if (-2) { 1 }", 1},
		{"if (x = 0) { 1 } x", 0},
	}

	for _, test := range tests {
		got, err := Run(test.src)
		if err != nil {
			t.Fatalf("%q: %v", test.src, err)
		}
		if got != test.expected {
			t.Fatalf("%q: got %v, expected %v", test.src, got, test.expected)
		}
	}
}

func TestEvaluateIEEE(t *testing.T) {
	if v, err := Run("1 / 0"); err != nil || !math.IsInf(v, 1) {
		t.Fatalf("got %v %v", v, err)
	}
	if v, err := Run("-1 / 0"); err != nil || !math.IsInf(v, -1) {
		t.Fatalf("got %v %v", v, err)
	}
	if v, err := Run("0 / 0"); err != nil || !math.IsNaN(v) {
		t.Fatalf("got %v %v", v, err)
	}
	if v, err := Run("x = 1 / 0; x - x"); err != nil || !math.IsNaN(v) {
		t.Fatalf("got %v %v", v, err)
	}
}

func TestEvaluateUndefinedIdentifier(t *testing.T) {
	for _, src := range []string{
		"{ n = 6 } n",
		"n + 1",
		"fun f(n) { n } f(1); n",
		"fun f() { local = 1 } f(); local",
	} {
		_, err := Run(src)
		var undefined *UndefinedIdentifier
		if !errors.As(err, &undefined) {
			t.Fatalf("%q: got %v", src, err)
		}
	}

	_, err := Run("{ n = 6 } n")
	var undefined *UndefinedIdentifier
	errors.As(err, &undefined)
	if undefined.Name != "n" {
		t.Fatalf("got %v", undefined.Name)
	}
	if err.Error() != "undefined identifier: n" {
		t.Fatalf("got %v", err)
	}
}

func TestEvaluateUndefinedFunction(t *testing.T) {
	for _, src := range []string{
		"nope()",
		"fun outer() { fun inner() { 3 } 0 } inner()",
	} {
		_, err := Run(src)
		var undefined *UndefinedFunction
		if !errors.As(err, &undefined) {
			t.Fatalf("%q: got %v", src, err)
		}
	}
}

func TestEvaluateBadFunctionCall(t *testing.T) {
	_, err := Run("fun add(n1,n2){n1+n2} add(5)")
	var bad *BadFunctionCall
	if !errors.As(err, &bad) {
		t.Fatalf("got %v", err)
	}
	if *bad != (BadFunctionCall{Name: "add", Expected: 2, Received: 1}) {
		t.Fatalf("got %+v", bad)
	}
	if err.Error() != "add expected 2 arguments, but received 1" {
		t.Fatalf("got %v", err)
	}
}

func TestEvaluateDuplicateFunction(t *testing.T) {
	_, err := Run("fun f() { 1 } fun f() { 2 }")
	var dup *DuplicateFunction
	if !errors.As(err, &dup) || dup.Name != "f" {
		t.Fatalf("got %v", err)
	}
}

func TestEvaluateErrorAborts(t *testing.T) {
	interp := New(nil)
	_, err := interp.Eval(t.Context(), "x = 1; y = nope; x = 2")
	if err == nil {
		t.Fatal("should error")
	}
	if v := interp.Variables()["x"]; v != 1 {
		t.Fatalf("got %v", v)
	}
}

func TestEvaluateScopesBalanced(t *testing.T) {
	scopes := NewScopes()
	functions := make(Functions)
	for _, src := range []string{
		"fun f(n) { { n } } f(1)",
		"fun g(n) { { missing } } g(1)",
		"{ { { 1 } } }",
	} {
		prog, err := ParseString(src)
		if err != nil {
			t.Fatal(err)
		}
		if err := Collect(prog, functions); err != nil {
			t.Fatal(err)
		}
		Evaluate(prog, scopes.Root(), functions)
		if scopes.Depth() != 1 {
			t.Fatalf("%q: depth %d", src, scopes.Depth())
		}
	}
}
