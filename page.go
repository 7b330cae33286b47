package brief

// Document is one raw competitor page supplied by the caller.
type Document struct {
	// Name identifies the document in logs and prompts (e.g., a file name).
	Name string

	// HTML is the decoded page source.
	HTML string
}

// PageExtract holds the structural signals extracted from one Document.
// It is immutable once produced.
type PageExtract struct {
	Source      string     `yaml:"source,omitempty"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Headings    HeadingSet `yaml:"-"`

	// Paragraphs is only populated when ExtractOptions.Paragraphs is set.
	Paragraphs []string `yaml:"paragraphs,omitempty"`

	// Warning is non-empty when the page could not be parsed and the
	// extract was degraded to empty values.
	Warning string `yaml:"warning,omitempty"`
}

// ExtractOptions controls optional extraction work.
type ExtractOptions struct {
	// Paragraphs enables collection of paragraph text for relevance ranking.
	Paragraphs bool
}

// Extractor isolates the main content of an HTML page and extracts its
// headings, metadata and, optionally, paragraphs.
type Extractor interface {
	// Extract never fails: unparseable input yields an empty PageExtract
	// with Warning set. The returned value is never nil.
	Extract(html string, opts ExtractOptions) *PageExtract
}
