package bible

import (
	"fmt"
	"strconv"
)

// Render resolves ref against the corpus. Segments that cannot be resolved
// produce a marker heading and do not stop the remaining segments.
func Render(corpus *Corpus, ref string) Passage {
	p := Passage{Title: ref, Content: []ContentItem{}, Source: SourceLocal}

	for _, seg := range ParseReference(ref, corpus.Books()) {
		if seg.Book == "" {
			p.Content = append(p.Content, heading("Livre non trouvé : "+seg.Text))
			continue
		}

		matched := matchVerses(corpus, seg)
		if len(matched) == 0 {
			p.Content = append(p.Content, heading("Texte non trouvé pour "+seg.Text))
			continue
		}

		p.Content = append(p.Content, heading(seg.Text))
		chapter := -1
		for _, v := range matched {
			if v.Chapter != chapter {
				p.Content = append(p.Content, heading(fmt.Sprintf("%s %d", v.BookName, v.Chapter)))
				chapter = v.Chapter
			}
			p.Content = append(p.Content, verse(strconv.Itoa(v.Verse), v.Text))
		}
	}
	return p
}

// matchVerses returns the verses of seg in corpus order.
func matchVerses(corpus *Corpus, seg Segment) []Verse {
	var out []Verse
	for _, v := range corpus.Verses {
		if v.BookName != seg.Book || !seg.Chapters.Contains(v.Chapter) {
			continue
		}
		if seg.Bounded && !seg.Verses.Contains(v.Verse) {
			continue
		}
		out = append(out, v)
	}
	return out
}
