package serp

// ExtractResult holds the readable content of an article page.
type ExtractResult struct {
	// Title is the article title taken from page metadata.
	Title string

	// ContentHTML is the main content as clean HTML, with navigation,
	// footers, sidebars and ads removed.
	ContentHTML string
}

// Extractor pulls the main content out of an article page.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}
