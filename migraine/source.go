package migraine

import "strings"

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Pos is a location in a Source. Offset is in bytes, Line and Column start at 1.
type Pos struct {
	Source *Source
	Offset int
	Line   int
	Column int
}
