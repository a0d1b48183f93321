// Package html_parser extracts page metadata (title, preview image) from
// fetched HTML. It scans for the first structurally plausible match instead
// of interpreting the whole document, trading correctness on malformed
// markup for bounded cost and deterministic output.
package html_parser

import (
	stdhtml "html"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// metaImageKeys lists the preview-image meta keys in priority order. The
// first key with a match wins, regardless of document order across keys.
var metaImageKeys = []string{
	"og:image",
	"og:image:secure_url",
	"twitter:image",
	"twitter:image:src",
}

var titlePolicy = bluemonday.StrictPolicy()

// PageMeta holds the raw extraction result. Empty string means "not found".
type PageMeta struct {
	Title    string
	ImageURL string
}

// ExtractPageMeta pulls the title and representative image URL out of raw
// HTML. base is the fetched page's URL; image candidates are resolved against
// it, supporting relative and protocol-relative values. Extraction is
// best-effort and never returns an error; anything unusable degrades to an
// empty field.
func ExtractPageMeta(raw string, base *url.URL) PageMeta {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return PageMeta{}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed))
	if err != nil {
		// goquery almost never fails on string input, but when it does the
		// tokenizer can still salvage a <title>.
		return PageMeta{Title: tokenizeTitle(strings.NewReader(trimmed))}
	}

	return PageMeta{
		Title:    extractTitle(doc),
		ImageURL: extractImageURL(doc, base),
	}
}

// extractTitle returns the first <title> text; failing that, the first
// <meta name="title">, then the first <meta property="og:title">.
func extractTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return cleanTitle(title)
	}

	if content := firstMetaContent(doc, "title"); content != "" {
		return cleanTitle(content)
	}
	if content := firstMetaContent(doc, "og:title"); content != "" {
		return cleanTitle(content)
	}

	return ""
}

// extractImageURL returns the resolved preview image URL, trying the meta
// keys in priority order and falling back to <link rel="image_src">.
func extractImageURL(doc *goquery.Document, base *url.URL) string {
	firstByKey := make(map[string]string, len(metaImageKeys))
	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		key := metaKey(s)
		if key == "" {
			return true
		}
		for _, wanted := range metaImageKeys {
			if strings.EqualFold(key, wanted) {
				if _, seen := firstByKey[wanted]; !seen {
					if content := strings.TrimSpace(s.AttrOr("content", "")); content != "" {
						firstByKey[wanted] = content
					}
				}
				break
			}
		}
		return len(firstByKey) < len(metaImageKeys)
	})

	for _, key := range metaImageKeys {
		if candidate, ok := firstByKey[key]; ok {
			return resolveAgainst(base, candidate)
		}
	}

	var linkHref string
	doc.Find("link").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.EqualFold(strings.TrimSpace(s.AttrOr("rel", "")), "image_src") {
			linkHref = strings.TrimSpace(s.AttrOr("href", ""))
			return linkHref == ""
		}
		return true
	})
	if linkHref != "" {
		return resolveAgainst(base, linkHref)
	}

	return ""
}

// metaKey returns the tag's property attribute, or its name attribute when
// no property is present. Social-card metadata appears under both.
func metaKey(s *goquery.Selection) string {
	if property := strings.TrimSpace(s.AttrOr("property", "")); property != "" {
		return property
	}
	return strings.TrimSpace(s.AttrOr("name", ""))
}

// firstMetaContent returns the content of the first meta tag whose name or
// property equals key, case-insensitively.
func firstMetaContent(doc *goquery.Document, key string) string {
	var content string
	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.EqualFold(metaKey(s), key) {
			content = strings.TrimSpace(s.AttrOr("content", ""))
			return content == ""
		}
		return true
	})
	return content
}

// resolveAgainst resolves candidate against the page URL using standard URL
// resolution, covering absolute, protocol-relative and path-relative values.
// Unresolvable candidates become "".
func resolveAgainst(base *url.URL, candidate string) string {
	if base == nil {
		parsed, err := url.Parse(candidate)
		if err != nil || !parsed.IsAbs() {
			return ""
		}
		return parsed.String()
	}

	resolved, err := base.Parse(candidate)
	if err != nil {
		return ""
	}
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}

// cleanTitle strips any markup that leaked into a title value and unescapes
// entities, so what we store is plain text.
func cleanTitle(raw string) string {
	return strings.TrimSpace(stdhtml.UnescapeString(titlePolicy.Sanitize(raw)))
}

// tokenizeTitle is the last-resort title scan used when document parsing
// fails outright.
func tokenizeTitle(r io.Reader) string {
	z := html.NewTokenizer(r)
	inTitle := false
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := z.TagName()
			inTitle = string(name) == "title"
		case html.EndTagToken:
			inTitle = false
		case html.TextToken:
			if inTitle {
				if title := cleanTitle(string(z.Text())); title != "" {
					return title
				}
			}
		}
	}
}
