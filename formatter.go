package serp

import "strings"

// FormatArticle formats an article for display in the terminal.
// Uses title if available, falls back to the URL.
func FormatArticle(a *Article) string {
	if a == nil {
		return ""
	}

	header := a.Title
	if header == "" {
		header = a.URL
	}

	var b strings.Builder
	b.WriteString("# " + header + "\n")
	if a.Title != "" {
		b.WriteString("<" + a.URL + ">\n")
	}
	if content := strings.TrimSpace(a.Content); content != "" {
		b.WriteString("\n" + content + "\n")
	}
	return b.String()
}
