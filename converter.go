package serp

// Converter converts HTML to Markdown for reading in the terminal.
type Converter interface {
	// Convert transforms clean HTML (e.g., from an Extractor) into Markdown.
	Convert(html string) (string, error)
}
