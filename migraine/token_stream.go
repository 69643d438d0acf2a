package migraine

import (
	"slices"
	"strings"
)

// TokenStream is a forward-only cursor over lexed tokens.
type TokenStream struct {
	tokens    []Token
	positions []Pos
	idx       int
	consumed  Token
}

func NewTokenStream(tokens ...Token) *TokenStream {
	s := &TokenStream{}
	for _, token := range tokens {
		s.Add(token)
	}
	return s
}

func (s *TokenStream) Add(token Token) {
	s.add(token, Pos{})
}

func (s *TokenStream) add(token Token, pos Pos) {
	s.tokens = append(s.tokens, token)
	s.positions = append(s.positions, pos)
}

func (s *TokenStream) Count() int {
	return len(s.tokens) - s.idx
}

func (s *TokenStream) IsEmpty() bool {
	return s.Count() == 0
}

func (s *TokenStream) Current() (Token, error) {
	if s.IsEmpty() {
		return Token{}, ErrStreamEmpty
	}
	return s.tokens[s.idx], nil
}

// Consumed returns the last token removed from the stream.
func (s *TokenStream) Consumed() Token {
	return s.consumed
}

// Pos returns the position of the current token, or of the end of input.
func (s *TokenStream) Pos() Pos {
	if s.idx < len(s.positions) {
		return s.positions[s.idx]
	}
	if n := len(s.positions); n > 0 {
		last := s.positions[n-1]
		if last.Source != nil {
			return advance(last, s.tokens[n-1].Text)
		}
	}
	return Pos{}
}

func (s *TokenStream) Consume() (bool, error) {
	if s.IsEmpty() {
		return false, ErrStreamEmpty
	}
	s.consumed = s.tokens[s.idx]
	s.idx++
	return true, nil
}

func (s *TokenStream) ConsumeText(text string) bool {
	if s.IsEmpty() || s.tokens[s.idx].Text != text {
		return false
	}
	s.Consume()
	return true
}

func (s *TokenStream) ConsumeKind(kind TokenKind) bool {
	if s.IsEmpty() || s.tokens[s.idx].Kind != kind {
		return false
	}
	s.Consume()
	return true
}

func (s *TokenStream) ConsumeAnyText(texts ...string) bool {
	for _, text := range texts {
		if s.ConsumeText(text) {
			return true
		}
	}
	return false
}

func (s *TokenStream) ConsumeAnyKind(kinds ...TokenKind) bool {
	for _, kind := range kinds {
		if s.ConsumeKind(kind) {
			return true
		}
	}
	return false
}

func (s *TokenStream) ExpectText(text string) error {
	if s.ConsumeText(text) {
		return nil
	}
	return s.expected("'" + text + "'")
}

func (s *TokenStream) ExpectKind(kind TokenKind) error {
	if s.ConsumeKind(kind) {
		return nil
	}
	return s.expected(kind.String())
}

func (s *TokenStream) expected(what string) error {
	err := &ParseError{
		Expected: what,
	}
	if !s.IsEmpty() {
		err.Found = s.tokens[s.idx].Text
	}
	return WithPos(err, s.Pos())
}

// LookAhead peeks at the token offset places after the current one.
// LookAhead(0) is the current token.
func (s *TokenStream) LookAhead(offset int) (Token, bool) {
	i := s.idx + offset
	if offset < 0 || i >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[i], true
}

// Tokens returns the tokens not yet consumed.
func (s *TokenStream) Tokens() []Token {
	return slices.Clone(s.tokens[s.idx:])
}

// String joins the remaining token texts with spaces. The result lexes back to the same tokens.
func (s *TokenStream) String() string {
	texts := make([]string, 0, s.Count())
	for _, token := range s.tokens[s.idx:] {
		texts = append(texts, token.Text)
	}
	return strings.Join(texts, " ")
}
