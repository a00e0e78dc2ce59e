// Package fs saves articles read from search results as Markdown files.
package fs

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/serp"
	"gopkg.in/yaml.v3"
)

var pageExtensions = map[string]bool{
	".html": true,
	".htm":  true,
	".php":  true,
	".asp":  true,
	".aspx": true,
}

// URLToPath converts an article URL to a relative file path rooted at the
// host name.
// Example: https://www.example.com/blog/post → example.com/blog/post.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", serp.Errorf(serp.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if host == "" {
		return "", serp.Errorf(serp.EINVALID, "URL has no host: %q", rawURL)
	}

	p := strings.TrimPrefix(u.Path, "/")
	switch {
	case p == "":
		p = "index.md"
	case strings.HasSuffix(p, "/"):
		p += "index.md"
	default:
		ext := path.Ext(p)
		if pageExtensions[strings.ToLower(ext)] {
			p = strings.TrimSuffix(p, ext)
		}
		p += ".md"
	}

	rel := filepath.Join(host, filepath.FromSlash(p))
	if !filepath.IsLocal(rel) {
		return "", serp.Errorf(serp.EINVALID, "path traversal in URL %q", rawURL)
	}
	return rel, nil
}

type frontmatter struct {
	Source  string `yaml:"source"`
	Title   string `yaml:"title,omitempty"`
	Fetched string `yaml:"fetched"`
}

// FormatArticle formats an article with YAML frontmatter.
func FormatArticle(a *serp.Article) (string, error) {
	fm, err := yaml.Marshal(frontmatter{
		Source:  a.URL,
		Title:   a.Title,
		Fetched: a.FetchedAt.Format("2006-01-02"),
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(fm)
	b.WriteString("---\n\n")
	b.WriteString(strings.TrimSpace(a.Content))
	b.WriteString("\n")
	return b.String(), nil
}

// Ensure Writer implements serp.ArticleWriter at compile time.
var _ serp.ArticleWriter = (*Writer)(nil)

// Writer writes articles as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Path returns where the article for the URL is written.
func (w *Writer) Path(rawURL string) (string, error) {
	rel, err := URLToPath(rawURL)
	if err != nil {
		return "", err
	}
	return filepath.Join(w.baseDir, rel), nil
}

// WriteArticle writes an article to disk. The file is written to a
// temporary name first and renamed into place, so readers never see a
// partial article.
func (w *Writer) WriteArticle(ctx context.Context, a *serp.Article) error {
	if err := a.Validate(); err != nil {
		return err
	}

	fullPath, err := w.Path(a.URL)
	if err != nil {
		return err
	}

	content, err := FormatArticle(a)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(fullPath), ".article-*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fullPath)
}
