package lsp

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/dhamidi/jsig/classfile"
	"github.com/dhamidi/jsig/format"
	"github.com/dhamidi/jsig/signature"
)

// token is a run of non-space characters on one line. Start and End are
// byte offsets into the line.
type token struct {
	Text       string
	Start, End int
}

// tokenAt returns the token covering byte offset col of line. Surrounding
// quotes and trailing commas are not part of the token.
func tokenAt(line string, col int) (token, bool) {
	if col < 0 || col > len(line) {
		return token{}, false
	}

	start := col
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(line[:start])
		if unicode.IsSpace(r) {
			break
		}
		start -= size
	}
	end := col
	for end < len(line) {
		r, size := utf8.DecodeRuneInString(line[end:])
		if unicode.IsSpace(r) {
			break
		}
		end += size
	}

	for start < end && strings.ContainsRune(`"'`, rune(line[start])) {
		start++
	}
	for end > start && strings.ContainsRune(`"',`, rune(line[end-1])) {
		end--
	}
	if start == end {
		return token{}, false
	}
	return token{Text: line[start:end], Start: start, End: end}, true
}

// candidateKinds returns the forms text may be parsed as, most likely
// first. A leading formal parameter block is followed by '(' in a method
// signature and by the superclass in a class signature.
func candidateKinds(text string) []signature.Kind {
	switch {
	case strings.HasPrefix(text, "("):
		return []signature.Kind{signature.KindMethod}
	case strings.HasPrefix(text, "<"):
		end := formalsEnd(text)
		if end < len(text) && text[end] == '(' {
			return []signature.Kind{signature.KindMethod}
		}
		return []signature.Kind{signature.KindClass}
	}
	return []signature.Kind{signature.KindField, signature.KindClass}
}

// formalsEnd returns the offset just past the '>' closing the block that
// starts text, or len(text) if it is unbalanced.
func formalsEnd(text string) int {
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return len(text)
}

// decode parses text as the first candidate form that accepts it.
func decode(text string) (signature.Signature, bool) {
	for _, kind := range candidateKinds(text) {
		if sig, err := signature.Parse(kind, text); err == nil {
			return sig, true
		}
	}
	return nil, false
}

func hoverText(sig signature.Signature) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "```java\n%s\n```\n\n%s signature", format.JavaSignature(sig), sig.Kind())
	if refs := signature.ReferencedClasses(sig); len(refs) > 0 {
		sb.WriteString("\n\nReferences:\n")
		for _, ref := range refs {
			fmt.Fprintf(&sb, "- `%s`\n", classfile.InternalToSourceName(ref))
		}
	}
	return sb.String()
}

// byteOffset converts a UTF-16 column, as sent by LSP clients, to a byte
// offset into line.
func byteOffset(line string, character int) int {
	units := 0
	for i, r := range line {
		if units >= character {
			return i
		}
		units += utf16.RuneLen(r)
	}
	return len(line)
}

// utf16Column is the inverse of byteOffset.
func utf16Column(line string, offset int) int {
	units := 0
	for _, r := range line[:offset] {
		units += utf16.RuneLen(r)
	}
	return units
}

func lineAt(text string, n int) (string, bool) {
	lines := strings.Split(text, "\n")
	if n < 0 || n >= len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[n], "\r"), true
}
