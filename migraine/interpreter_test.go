package migraine

import (
	"errors"
	"strings"
	"testing"
)

func TestInterpreterPersists(t *testing.T) {
	interp := New(nil)
	ctx := t.Context()

	if _, err := interp.Eval(ctx, "x = 5"); err != nil {
		t.Fatal(err)
	}
	if _, err := interp.Eval(ctx, "fun inc(n) { n + 1 }"); err != nil {
		t.Fatal(err)
	}
	v, err := interp.Eval(ctx, "inc(x)")
	if err != nil {
		t.Fatal(err)
	}
	if v != 6 {
		t.Fatalf("got %v", v)
	}

	// a later run may redefine a function
	if _, err := interp.Eval(ctx, "fun inc(n) { n + 2 }"); err != nil {
		t.Fatal(err)
	}
	if v, _ := interp.Eval(ctx, "inc(x)"); v != 7 {
		t.Fatalf("got %v", v)
	}
}

func TestInterpreterCollectFailureKeepsTable(t *testing.T) {
	interp := New(nil)
	ctx := t.Context()
	_, err := interp.Eval(ctx, "fun a() { 1 } fun b() { 2 } fun b() { 3 }")
	var dup *DuplicateFunction
	if !errors.As(err, &dup) {
		t.Fatalf("got %v", err)
	}
	if len(interp.Functions()) != 0 {
		t.Fatalf("got %v", interp.Functions())
	}
}

func TestInterpreterDefineAndCall(t *testing.T) {
	interp := New(nil)
	ctx := t.Context()
	interp.Define("pi", 3.5)
	if _, err := interp.Eval(ctx, "fun area(r) { pi * r * r }"); err != nil {
		t.Fatal(err)
	}
	v, err := interp.Call("area", 2)
	if err != nil {
		t.Fatal(err)
	}
	if v != 14 {
		t.Fatalf("got %v", v)
	}

	_, err = interp.Call("area")
	var bad *BadFunctionCall
	if !errors.As(err, &bad) || bad.Expected != 1 || bad.Received != 0 {
		t.Fatalf("got %v", err)
	}

	vars := interp.Variables()
	if len(vars) != 1 || vars["pi"] != 3.5 {
		t.Fatalf("got %v", vars)
	}
	if _, ok := interp.Functions()["area"]; !ok {
		t.Fatal()
	}
}

func TestInterpreterLoad(t *testing.T) {
	interp := New(nil)
	ctx := t.Context()
	err := interp.Load(ctx,
		NewSource("lib", "fun double(n) { n * 2 }"),
		NewSource("broken", "x = (1"),
	)
	if err == nil || !strings.HasPrefix(err.Error(), "load broken: ") {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "at broken:1:7") {
		t.Fatalf("got %v", err)
	}
	if v, err := interp.Eval(ctx, "double(4)"); err != nil || v != 8 {
		t.Fatalf("got %v %v", v, err)
	}
}

func TestInterpreterEvalFailureKeepsTable(t *testing.T) {
	interp := New(nil)
	ctx := t.Context()
	if _, err := interp.Eval(ctx, "fun a() { 1 }"); err != nil {
		t.Fatal(err)
	}
	_, err := interp.Eval(ctx, "x = 1; fun b() { 2 } { fun c() { 3 } } nope")
	var undefined *UndefinedIdentifier
	if !errors.As(err, &undefined) {
		t.Fatalf("got %v", err)
	}
	functions := interp.Functions()
	if len(functions) != 1 || functions["a"] == nil {
		t.Fatalf("got %v", functions)
	}
	if v := interp.Variables()["x"]; v != 1 {
		t.Fatalf("got %v", v)
	}
}
