package format

import "strings"

type indentLevel uint8

const (
	topLevel indentLevel = iota
	blockLevel
)

// Indentation tracks the current indent as a stack of levels. Top-level
// entries come from clause keywords and template blocks, block-level entries
// from expanded parens.
type Indentation struct {
	unit   string
	levels []indentLevel
}

// NewIndentation returns an empty stack rendering width spaces per level.
func NewIndentation(width int) *Indentation {
	return &Indentation{unit: strings.Repeat(" ", max(width, 0))}
}

// Indent returns the whitespace for the current depth.
func (i *Indentation) Indent() string {
	return strings.Repeat(i.unit, len(i.levels))
}

// Depth returns the number of open levels.
func (i *Indentation) Depth() int { return len(i.levels) }

// IncreaseTopLevel opens a top-level indent.
func (i *Indentation) IncreaseTopLevel() {
	i.levels = append(i.levels, topLevel)
}

// IncreaseBlockLevel opens a block-level indent.
func (i *Indentation) IncreaseBlockLevel() {
	i.levels = append(i.levels, blockLevel)
}

// DecreaseTopLevel closes the innermost level only if it is top-level.
func (i *Indentation) DecreaseTopLevel() {
	if n := len(i.levels); n > 0 && i.levels[n-1] == topLevel {
		i.levels = i.levels[:n-1]
	}
}

// DecreaseBlockLevel closes levels until one block-level indent has been
// removed or the stack is empty. Top-level indents opened inside the block
// are discarded with it.
func (i *Indentation) DecreaseBlockLevel() {
	for len(i.levels) > 0 {
		last := i.levels[len(i.levels)-1]
		i.levels = i.levels[:len(i.levels)-1]
		if last == blockLevel {
			return
		}
	}
}

// Reset drops every level.
func (i *Indentation) Reset() {
	i.levels = i.levels[:0]
}
