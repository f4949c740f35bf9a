package mdfmt

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reFenceOpen = regexp.MustCompile("(?m)^([ \t]{0,3})```([^\n]*)\n")
	reBlankRun  = regexp.MustCompile(`\n{3,}`)
)

// Format rewrites unlabeled code fences with a detected language tag,
// collapses runs of three or more newlines to a single blank line, and
// normalizes the document to end with exactly one newline.
//
// The blank-line collapse is applied to the whole document, fence bodies
// included. Nested or unclosed fences are left alone: a fence opener with
// no closing line of identical indentation never matches.
func Format(text string) string {
	s := rewriteFences(text)
	s = reBlankRun.ReplaceAllString(s, "\n\n")

	return strings.TrimRightFunc(s, unicode.IsSpace) + "\n"
}

// rewriteFences scans for fenced code blocks whose opening line carries no
// info string and fills in the detected language. A fence opens with 0-3
// spaces or tabs of indentation and three backticks; it closes at the first
// following line holding the same indentation, three backticks and nothing
// else but whitespace. Fences that already carry an info string are copied
// through byte-identical, body and all.
func rewriteFences(text string) string {
	var out strings.Builder

	pos := 0

	for pos < len(text) {
		m := reFenceOpen.FindStringSubmatchIndex(text[pos:])
		if m == nil {
			out.WriteString(text[pos:])

			return out.String()
		}

		openStart := pos + m[0]
		openEnd := pos + m[1]
		indent := text[pos+m[2] : pos+m[3]]
		info := text[pos+m[4] : pos+m[5]]

		bodyEnd, closeEnd, found := findClose(text, openEnd, indent)
		if !found {
			out.WriteString(text[pos:openEnd])
			pos = openEnd

			continue
		}

		matchEnd := consumeTail(text, closeEnd)

		out.WriteString(text[pos:openStart])

		if strings.TrimSpace(info) == "" {
			body := text[openEnd:bodyEnd]

			out.WriteString(indent)
			out.WriteString("```")
			out.WriteString(DetectLanguage(body))
			out.WriteString("\n")
			out.WriteString(body)
			out.WriteString("\n")
			out.WriteString(indent)
			out.WriteString("```\n")
		} else {
			out.WriteString(text[openStart:matchEnd])
		}

		pos = matchEnd
	}

	return out.String()
}

// findClose returns the offset of the newline ending the fence body and the
// offset just past the closing backticks. Candidate lines with trailing
// non-whitespace are skipped, extending the body to the next candidate.
func findClose(text string, from int, indent string) (int, int, bool) {
	token := "\n" + indent + "```"

	for search := from; ; {
		i := strings.Index(text[search:], token)
		if i < 0 {
			return 0, 0, false
		}

		bodyEnd := search + i
		closeEnd := bodyEnd + len(token)

		if restOfLineBlank(text, closeEnd) {
			return bodyEnd, closeEnd, true
		}

		search = bodyEnd + 1
	}
}

func restOfLineBlank(text string, from int) bool {
	for i := from; i < len(text) && text[i] != '\n'; i++ {
		switch text[i] {
		case ' ', '\t', '\r', '\f', '\v':
		default:
			return false
		}
	}

	return true
}

// consumeTail extends a fence match across the whitespace following the
// closing backticks, stopping before the last newline that precedes any
// further content. A rewritten fence thus collapses trailing whitespace to
// the single newline it appends; an untouched fence is copied back
// including the consumed span, leaving its bytes identical.
func consumeTail(text string, from int) int {
	end := from
	for end < len(text) && isSpaceByte(text[end]) {
		end++
	}

	if end == len(text) {
		return end
	}

	// findClose guarantees a newline before any non-whitespace: the rest
	// of the close line is blank, so the run always contains one.
	last := strings.LastIndexByte(text[from:end], '\n')

	return from + last
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	}

	return false
}
