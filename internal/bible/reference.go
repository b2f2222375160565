package bible

import (
	"regexp"
	"strings"
)

var annotationRe = regexp.MustCompile(`\(.*\)`)

// Span is an inclusive range of chapter or verse numbers. A span whose To
// is below its From is empty.
type Span struct {
	From int
	To   int
}

func (s Span) Contains(n int) bool { return n >= s.From && n <= s.To }

func (s Span) Empty() bool { return s.To < s.From }

var emptySpan = Span{From: 1, To: 0}

// Segment is one semicolon-separated part of a reference.
type Segment struct {
	Text     string // segment as written, trimmed
	Book     string // corpus book name; empty when no book matched
	Chapters Span
	// Verses bounds the verses of a single chapter. Only set for
	// chapter:verse segments.
	Verses  Span
	Bounded bool
}

// CleanReference strips the first parenthesised annotation, converts
// non-breaking spaces and trims the result.
func CleanReference(ref string) string {
	if loc := annotationRe.FindStringIndex(ref); loc != nil {
		ref = ref[:loc[0]] + ref[loc[1]:]
	}
	ref = strings.ReplaceAll(ref, "\u00a0", " ")
	return strings.TrimSpace(ref)
}

// ParseReference splits ref into segments and resolves each against books,
// which must be ordered longest first (see Corpus.Books). Empty segments are
// skipped.
func ParseReference(ref string, books []string) []Segment {
	var segments []Segment
	for _, raw := range strings.Split(CleanReference(ref), ";") {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		segments = append(segments, parseSegment(text, books))
	}
	return segments
}

func parseSegment(text string, books []string) Segment {
	seg := Segment{Text: text, Chapters: emptySpan}

	var rest string
	for _, b := range books {
		if b != "" && len(text) >= len(b) && strings.EqualFold(text[:len(b)], b) {
			seg.Book = b
			rest = strings.TrimSpace(text[len(b):])
			break
		}
	}
	if seg.Book == "" {
		return seg
	}

	if chapterPart, versePart, ok := strings.Cut(rest, ":"); ok {
		if ch, ok := leadingInt(chapterPart); ok {
			seg.Chapters = Span{From: ch, To: ch}
		}
		// Anything after a second colon is ignored.
		versePart, _, _ = strings.Cut(versePart, ":")
		if vs, ok := parseSpan(versePart); ok && !vs.Empty() {
			seg.Verses = vs
			seg.Bounded = true
		}
		return seg
	}

	// Without a colon the remainder is a chapter range; verse bounds do not
	// apply.
	if cs, ok := parseSpan(rest); ok {
		seg.Chapters = cs
	}
	return seg
}

// parseSpan reads "N", "N-M" or "N–M". Parts without a leading integer are
// ignored; ok is false when no part holds a number.
func parseSpan(s string) (Span, bool) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '–' })
	var nums []int
	for _, p := range parts {
		if n, ok := leadingInt(p); ok {
			nums = append(nums, n)
		}
	}
	switch len(nums) {
	case 0:
		return Span{}, false
	case 1:
		return Span{From: nums[0], To: nums[0]}, true
	default:
		return Span{From: nums[0], To: nums[1]}, true
	}
}

// leadingInt parses the integer prefix of s after leading whitespace, with
// an optional sign. Trailing text is ignored.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\u00a0")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n, digits := 0, 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		if n < 1<<31 {
			n = n*10 + int(s[digits]-'0')
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
