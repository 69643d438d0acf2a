package migraine

import (
	"errors"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input  string
		tokens []Token
	}{
		{
			input: "x = 12.5;",
			tokens: []Token{
				{TokenIdentifier, "x"},
				{TokenOperator, "="},
				{TokenNumber, "12.5"},
				{TokenTerminator, ";"},
			},
		},
		{
			input: "a==b<=c >= d<e>f",
			tokens: []Token{
				{TokenIdentifier, "a"},
				{TokenOperator, "=="},
				{TokenIdentifier, "b"},
				{TokenOperator, "<="},
				{TokenIdentifier, "c"},
				{TokenOperator, ">="},
				{TokenIdentifier, "d"},
				{TokenOperator, "<"},
				{TokenIdentifier, "e"},
				{TokenOperator, ">"},
				{TokenIdentifier, "f"},
			},
		},
		{
			input: "fun add(n1,n2){n1+n2}",
			tokens: []Token{
				{TokenIdentifier, "fun"},
				{TokenIdentifier, "add"},
				{TokenSymbol, "("},
				{TokenIdentifier, "n1"},
				{TokenSymbol, ","},
				{TokenIdentifier, "n2"},
				{TokenSymbol, ")"},
				{TokenSymbol, "{"},
				{TokenIdentifier, "n1"},
				{TokenOperator, "+"},
				{TokenIdentifier, "n2"},
				{TokenSymbol, "}"},
			},
		},
		{
			input: "12abc _x1 -3",
			tokens: []Token{
				{TokenNumber, "12"},
				{TokenIdentifier, "abc"},
				{TokenIdentifier, "_x1"},
				{TokenOperator, "-"},
				{TokenNumber, "3"},
			},
		},
		{
			input: "  \t\n  ",
		},
		{
			input: "",
		},
	}

	for _, test := range tests {
		stream, err := Tokenize(test.input)
		if err != nil {
			t.Fatalf("%q: %v", test.input, err)
		}
		got := stream.Tokens()
		if len(got) != len(test.tokens) {
			t.Fatalf("%q: got %v", test.input, got)
		}
		for i, token := range test.tokens {
			if got[i] != token {
				t.Fatalf("%q: token %d: got %v, expected %v", test.input, i, got[i], token)
			}
		}
	}
}

func TestTokenizeCRLF(t *testing.T) {
	stream, err := Tokenize("x = 1;\r\ny = 2")
	if err != nil {
		t.Fatal(err)
	}
	if stream.Count() != 7 {
		t.Fatalf("got %v", stream.Tokens())
	}
	for range 4 {
		stream.Consume()
	}
	pos := stream.Pos()
	if pos.Line != 2 || pos.Column != 1 || pos.Offset != 7 {
		t.Fatalf("got %+v", pos)
	}
}

func TestTokenizeError(t *testing.T) {
	_, err := Tokenize("x = 1 $")
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("got %v", err)
	}
	if lexErr.Text != "$" || lexErr.Pos.Offset != 6 {
		t.Fatalf("got %+v", lexErr)
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, "unexpected token \"$\" at <input>:1:7\n") {
		t.Fatalf("got %s", msg)
	}
	if !strings.Contains(msg, "x = 1 $\n      ^\n") {
		t.Fatalf("got %q", msg)
	}

	_, err = Tokenize("1.2.3")
	if !errors.As(err, &lexErr) || lexErr.Pos.Offset != 3 {
		t.Fatalf("got %v", err)
	}
}
