package migraine

import (
	"errors"
	"fmt"
	"strings"
)

var ErrStreamEmpty = errors.New("can't consume token on an empty stream")

type LexError struct {
	Pos  Pos
	Text string
}

func (l *LexError) Error() string {
	return fmt.Sprintf("unexpected token %q", l.Text)
}

// ParseError reports a grammar violation. Found is empty when the stream ended.
type ParseError struct {
	Expected string
	Found    string
}

func (p *ParseError) Error() string {
	if p.Found == "" {
		return fmt.Sprintf("expected %s, got end of input", p.Expected)
	}
	return fmt.Sprintf("expected %s, got '%s'", p.Expected, p.Found)
}

type UndefinedIdentifier struct {
	Name string
}

func (u *UndefinedIdentifier) Error() string {
	return "undefined identifier: " + u.Name
}

type UndefinedFunction struct {
	Name string
}

func (u *UndefinedFunction) Error() string {
	return fmt.Sprintf("function %s is undefined", u.Name)
}

type BadFunctionCall struct {
	Name     string
	Expected int
	Received int
}

func (b *BadFunctionCall) Error() string {
	return fmt.Sprintf("%s expected %d arguments, but received %d", b.Name, b.Expected, b.Received)
}

type DuplicateFunction struct {
	Name string
}

func (d *DuplicateFunction) Error() string {
	return fmt.Sprintf("function %s is already defined", d.Name)
}

type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	if p.Pos.Source == nil {
		return p.Err.Error()
	}

	var sb strings.Builder
	name := p.Pos.Source.Name
	if name == "" {
		name = "<input>"
	}
	sb.WriteString(fmt.Sprintf("%s at %s:%d:%d\n", p.Err.Error(), name, p.Pos.Line, p.Pos.Column))

	lines := p.Pos.Source.Lines
	idx := p.Pos.Line - 1
	if idx >= 0 && idx < len(lines) {
		line := lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")

		// caret
		runes := []rune(line)
		col := p.Pos.Column - 1
		for i, r := range runes {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	var posErr PosError
	if errors.As(err, &posErr) {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}
