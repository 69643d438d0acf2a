package migraine

import (
	"regexp"
	"unicode/utf8"
)

type tokenDefinition struct {
	kind    TokenKind
	pattern *regexp.Regexp
}

// tried in order at each position, first match wins
var tokenDefinitions = []tokenDefinition{
	{TokenOperator, regexp.MustCompile(`^(==|<=|>=|[*/+\-=<>])`)},
	{TokenSymbol, regexp.MustCompile(`^[(){},]`)},
	{TokenWhitespace, regexp.MustCompile(`^\s+`)},
	{TokenNumber, regexp.MustCompile(`^\d+(\.\d+)?`)},
	{TokenIdentifier, regexp.MustCompile(`^[A-Za-z0-9_]+`)},
	{TokenTerminator, regexp.MustCompile(`^;`)},
}

func Tokenize(src string) (*TokenStream, error) {
	return TokenizeSource(NewSource("", src))
}

func TokenizeSource(source *Source) (*TokenStream, error) {
	stream := NewTokenStream()
	input := source.Content
	pos := Pos{
		Source: source,
		Line:   1,
		Column: 1,
	}

	for pos.Offset < len(input) {
		rest := input[pos.Offset:]

		var (
			kind TokenKind
			text string
		)
		for _, def := range tokenDefinitions {
			if loc := def.pattern.FindStringIndex(rest); loc != nil && loc[1] > 0 {
				kind = def.kind
				text = rest[:loc[1]]
				break
			}
		}
		if text == "" {
			r, _ := utf8.DecodeRuneInString(rest)
			return nil, WithPos(&LexError{
				Pos:  pos,
				Text: string(r),
			}, pos)
		}

		if kind != TokenWhitespace {
			stream.add(Token{Kind: kind, Text: text}, pos)
		}
		pos = advance(pos, text)
	}

	return stream, nil
}

func advance(pos Pos, text string) Pos {
	for _, r := range text {
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	pos.Offset += len(text)
	return pos
}
