package brief

import "strings"

// HeadingLevel identifies one of the four heading levels analysed in a page.
type HeadingLevel int

// Heading levels, most prominent first.
const (
	H1 HeadingLevel = iota
	H2
	H3
	H4
)

// NumHeadingLevels is the number of heading levels tracked per page.
const NumHeadingLevels = 4

// HeadingLevels lists every heading level in order.
var HeadingLevels = [NumHeadingLevels]HeadingLevel{H1, H2, H3, H4}

// String returns the lowercase HTML tag name of the level (e.g., "h2").
func (l HeadingLevel) String() string {
	switch l {
	case H1:
		return "h1"
	case H2:
		return "h2"
	case H3:
		return "h3"
	case H4:
		return "h4"
	}
	return ""
}

// Label returns the uppercase label used in prompts and outlines (e.g., "H2").
func (l HeadingLevel) Label() string {
	return strings.ToUpper(l.String())
}

// ParseHeadingLevel parses a tag name such as "h3" or "H3".
func ParseHeadingLevel(s string) (HeadingLevel, error) {
	for _, l := range HeadingLevels {
		if strings.EqualFold(s, l.String()) {
			return l, nil
		}
	}
	return 0, Errorf(EINVALID, "unknown heading level %q", s)
}

// HeadingSet holds the headings of one page, indexed by level.
// Each level keeps document order. Levels absent from the page are empty.
type HeadingSet [NumHeadingLevels][]string

// Add appends a heading to the given level.
func (s *HeadingSet) Add(level HeadingLevel, text string) {
	s[level] = append(s[level], text)
}

// Total returns the number of headings across all levels.
func (s HeadingSet) Total() int {
	var n int
	for _, headings := range s {
		n += len(headings)
	}
	return n
}

// Flatten returns all headings level by level, keeping document order
// within each level.
func (s HeadingSet) Flatten() []string {
	out := make([]string, 0, s.Total())
	for _, headings := range s {
		out = append(out, headings...)
	}
	return out
}
