package highlight

import (
	"fmt"
	"sort"
	"strings"
)

// mark delimiters for text renditions
const (
	markOpen  = "[["
	markClose = "]]"
)

// TextProvider opens plain text documents. Pages are form feed
// separated, matching the plaintext extractor's layout, and marks
// render as [[...]] delimiters around the located region.
type TextProvider struct{}

var _ Provider = (*TextProvider)(nil)

// Open splits the text into its form feed separated pages.
func (p *TextProvider) Open(data []byte) (Document, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	return &textDocument{
		pages: strings.Split(string(data), "\f"),
		marks: make(map[int][]Region),
	}, nil
}

type textDocument struct {
	pages []string
	marks map[int][]Region
}

var _ Document = (*textDocument)(nil)

func (d *textDocument) PageCount() int {
	return len(d.pages)
}

func (d *textDocument) PageText(page int) (string, error) {
	if page < 1 || page > len(d.pages) {
		return "", fmt.Errorf("page %d out of range", page)
	}
	return d.pages[page-1], nil
}

func (d *textDocument) Mark(region Region) error {
	if region.Page < 1 || region.Page > len(d.pages) {
		return fmt.Errorf("page %d out of range", region.Page)
	}
	text := d.pages[region.Page-1]
	if region.Start < 0 || region.End > len(text) || region.Start >= region.End {
		return fmt.Errorf("region [%d,%d) out of range on page %d", region.Start, region.End, region.Page)
	}
	d.marks[region.Page] = append(d.marks[region.Page], region)
	return nil
}

func (d *textDocument) Bytes() ([]byte, error) {
	rendered := make([]string, len(d.pages))
	for i, text := range d.pages {
		rendered[i] = insertMarks(text, d.marks[i+1])
	}
	return []byte(strings.Join(rendered, "\f")), nil
}

// markEvent is one delimiter insertion point.
type markEvent struct {
	pos   int
	token string
}

// insertMarks weaves mark delimiters into the page text. Stacked marks
// produce nested delimiters; closers sort before openers at the same
// position so adjacent regions do not interleave.
func insertMarks(text string, regions []Region) string {
	if len(regions) == 0 {
		return text
	}

	events := make([]markEvent, 0, 2*len(regions))
	for _, r := range regions {
		events = append(events,
			markEvent{pos: r.Start, token: markOpen},
			markEvent{pos: r.End, token: markClose},
		)
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].pos != events[j].pos {
			return events[i].pos < events[j].pos
		}
		return events[i].token == markClose && events[j].token == markOpen
	})

	var b strings.Builder
	b.Grow(len(text) + 2*len(markOpen)*len(regions))
	last := 0
	for _, ev := range events {
		b.WriteString(text[last:ev.pos])
		b.WriteString(ev.token)
		last = ev.pos
	}
	b.WriteString(text[last:])
	return b.String()
}
