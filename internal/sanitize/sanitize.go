// Package sanitize turns a raw completion reply into console-ready
// prose plus an optional extracted code fragment.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	fencedBlockRe = regexp.MustCompile("(?s)```(?:[a-zA-Z0-9#+._-]*\\n)?(.*?)```")
	linkRe        = regexp.MustCompile(`\[([^\]]+)\]\([^\)]+\)`)
	citationRe    = regexp.MustCompile(`\[\d+\]`)
	italicRe      = regexp.MustCompile(`\*([^\*]+)\*`)
	headingRe     = regexp.MustCompile(`(?m)^#+\s+`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// Clean strips markdown from a raw reply and extracts the first fenced
// code block. The passes run in a fixed order; later passes assume the
// earlier ones already ran (e.g. whitespace collapsing must come after
// the fence removal, or fence remnants would be glued into the prose).
// Empty input is returned unchanged.
func Clean(text string) (prose string, code string) {
	if text == "" {
		return text, ""
	}

	if m := fencedBlockRe.FindStringSubmatch(text); m != nil {
		code = strings.TrimSpace(m[1])
		text = fencedBlockRe.ReplaceAllString(text, "")
	}

	text = linkRe.ReplaceAllString(text, "$1")
	text = citationRe.ReplaceAllString(text, "")
	text = strings.NewReplacer("**", "", "__", "", "`", "").Replace(text)
	text = italicRe.ReplaceAllString(text, "$1")
	text = headingRe.ReplaceAllString(text, "")
	text = whitespaceRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text), code
}
