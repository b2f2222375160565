package bible

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBooks = []string{"Matthieu", "Psaumes", "Psaume", "Jean"}

func TestCleanReference(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jean 3:16", "Jean 3:16"},
		{"  Jean 3:16 (verset clé) ", "Jean 3:16"},
		{"Jean\u00a03:16", "Jean 3:16"},
		{"(intro) Jean 1", "Jean 1"},
		{"Jean 1 (a); Luc 2 (b)", "Jean 1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanReference(tt.in), tt.in)
	}
}

func TestParseReference_VerseSegment(t *testing.T) {
	segs := ParseReference("Jean 3:16-18", testBooks)
	require.Len(t, segs, 1)

	seg := segs[0]
	assert.Equal(t, "Jean 3:16-18", seg.Text)
	assert.Equal(t, "Jean", seg.Book)
	assert.Equal(t, Span{From: 3, To: 3}, seg.Chapters)
	assert.True(t, seg.Bounded)
	assert.Equal(t, Span{From: 16, To: 18}, seg.Verses)
}

func TestParseReference_ChapterRange(t *testing.T) {
	segs := ParseReference("Matthieu 5–7", testBooks)
	require.Len(t, segs, 1)
	assert.Equal(t, Span{From: 5, To: 7}, segs[0].Chapters)
	assert.False(t, segs[0].Bounded)
}

func TestParseReference_UnknownBook(t *testing.T) {
	segs := ParseReference("Tobie 1:1", testBooks)
	require.Len(t, segs, 1)
	assert.Empty(t, segs[0].Book)
}

func TestParseReference_MissingChapterNumber(t *testing.T) {
	segs := ParseReference("Jean x:1", testBooks)
	require.Len(t, segs, 1)
	assert.Equal(t, "Jean", segs[0].Book)
	assert.True(t, segs[0].Chapters.Empty())

	segs = ParseReference("Jean", testBooks)
	require.Len(t, segs, 1)
	assert.True(t, segs[0].Chapters.Empty())
}

func TestParseReference_SkipsEmptySegments(t *testing.T) {
	segs := ParseReference("Jean 3:16; ; Psaumes 23;", testBooks)
	require.Len(t, segs, 2)
	assert.Equal(t, "Jean 3:16", segs[0].Text)
	assert.Equal(t, "Psaumes 23", segs[1].Text)
	assert.Equal(t, "Psaumes", segs[1].Book)
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"16", 16, true},
		{" 3", 3, true},
		{"3a", 3, true},
		{"+4", 4, true},
		{"-2", -2, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
	}
	for _, tt := range tests {
		got, ok := leadingInt(tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseSpan(t *testing.T) {
	s, ok := parseSpan("1-3")
	assert.True(t, ok)
	assert.Equal(t, Span{From: 1, To: 3}, s)

	s, ok = parseSpan("x-5")
	assert.True(t, ok)
	assert.Equal(t, Span{From: 5, To: 5}, s)

	s, ok = parseSpan("9-2")
	assert.True(t, ok)
	assert.True(t, s.Empty())

	_, ok = parseSpan(" ")
	assert.False(t, ok)
}
