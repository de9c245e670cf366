// Package feedback parses the line-oriented markup the oracle returns for resume
// feedback and renders it as HTML or plain terminal text.
//
// Each line is trimmed and classified in order:
//
//	**text**   bold (at least one character between the markers)
//	### text   sub-heading
//	## text    heading
//	* text     bullet
//	---        divider (the whole line)
//	(blank)    dropped
//	anything   paragraph
//
// There is no error path. Unrecognized markup is a paragraph.
package feedback

import (
	"strings"
)

// Kind is the type of a rendered block.
type Kind string

// Block kinds.
const (
	KindBold       Kind = "bold"
	KindSubheading Kind = "subheading"
	KindHeading    Kind = "heading"
	KindBullet     Kind = "bullet"
	KindDivider    Kind = "divider"
	KindParagraph  Kind = "paragraph"
)

// Block is one classified line. Text has its markup removed.
type Block struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text,omitempty"`
}

// Parse classifies every non-blank line of text.
func Parse(text string) []Block {
	var blocks []Block
	for _, raw := range strings.Split(text, "\n") {
		if b, ok := parseLine(raw); ok {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

func parseLine(raw string) (Block, bool) {
	line := strings.TrimSpace(raw)

	switch {
	case len(line) > 4 && strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**"):
		return Block{Kind: KindBold, Text: line[2 : len(line)-2]}, true
	case strings.HasPrefix(line, "### "):
		return Block{Kind: KindSubheading, Text: strings.TrimPrefix(line, "### ")}, true
	case strings.HasPrefix(line, "## "):
		return Block{Kind: KindHeading, Text: strings.TrimPrefix(line, "## ")}, true
	case strings.HasPrefix(line, "* "):
		return Block{Kind: KindBullet, Text: strings.TrimPrefix(line, "* ")}, true
	case line == "---":
		return Block{Kind: KindDivider}, true
	case line == "":
		return Block{}, false
	default:
		return Block{Kind: KindParagraph, Text: line}, true
	}
}
