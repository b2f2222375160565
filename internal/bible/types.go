package bible

import (
	"cmp"
	"slices"
)

// Verse is one entry of the verse corpus.
type Verse struct {
	BookName string `json:"book_name"`
	Book     int    `json:"book"`
	Chapter  int    `json:"chapter"`
	Verse    int    `json:"verse"`
	Text     string `json:"text"`
}

// Corpus is the complete decoded verse document.
type Corpus struct {
	Metadata map[string]any `json:"metadata"`
	Verses   []Verse        `json:"verses"`

	books []string
}

// Books returns the distinct book names of the corpus, longest first. Names
// of equal length keep their corpus order.
func (c *Corpus) Books() []string {
	if c.books != nil {
		return c.books
	}
	seen := make(map[string]bool)
	books := []string{}
	for _, v := range c.Verses {
		if !seen[v.BookName] {
			seen[v.BookName] = true
			books = append(books, v.BookName)
		}
	}
	slices.SortStableFunc(books, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	c.books = books
	return books
}

// ItemType distinguishes the entries of rendered passage content.
type ItemType string

const (
	ItemHeading ItemType = "heading"
	ItemVerse   ItemType = "verse"
)

// ContentItem is a heading or a numbered verse.
type ContentItem struct {
	Type ItemType `json:"type"`
	Text string   `json:"text"`
	Num  string   `json:"num,omitempty"`
}

// Source records where a passage's text came from.
type Source string

const (
	SourceLocal Source = "local"
	SourceAPI   Source = "api"
)

// Passage is the rendered text for one reference string.
type Passage struct {
	Title   string        `json:"title"`
	Content []ContentItem `json:"content"`
	Source  Source        `json:"source,omitempty"`
}

// VerseCount returns the number of verse entries in the passage.
func (p Passage) VerseCount() int {
	n := 0
	for _, item := range p.Content {
		if item.Type == ItemVerse {
			n++
		}
	}
	return n
}

func heading(text string) ContentItem {
	return ContentItem{Type: ItemHeading, Text: text}
}

func verse(num, text string) ContentItem {
	return ContentItem{Type: ItemVerse, Num: num, Text: text}
}
