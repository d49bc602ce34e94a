// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package links finds PDF links in fetched page text and maps each link to
// the local filename it is saved under.
package links

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

// pdfURLPattern matches absolute http(s) URLs ending in the literal ".pdf".
// The match is case-sensitive: ".PDF" links are not candidates. A URL ends
// at a double quote or any Unicode whitespace, including no-break spaces.
var pdfURLPattern = regexp.MustCompile(`https?://[^\s\v\p{Z}\x{0085}\x{001C}-\x{001F}"]+\.pdf`)

// ExtractPDFURLs returns every PDF URL in text in order of appearance.
// Duplicates are kept; see Dedupe.
func ExtractPDFURLs(text string) []string {
	return pdfURLPattern.FindAllString(text, -1)
}

// URLToFilename derives the local filename for rawURL: the last element of
// the URL path, percent-decoded, with spaces replaced by hyphens, lowercased.
// Slashes produced by decoding (%2F, %5C) become hyphens, so the result is
// always a single path element.
//
// Distinct URLs can map to the same name (e.g. different directories with
// the same basename). Callers skip names that already exist on disk.
func URLToFilename(rawURL string) string {
	escaped := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		escaped = u.EscapedPath()
	} else if i := strings.IndexAny(rawURL, "?#"); i >= 0 {
		escaped = rawURL[:i]
	}

	name := unquote(path.Base(escaped))
	name = separatorReplacer.Replace(name)
	return strings.ToLower(name)
}

var separatorReplacer = strings.NewReplacer(" ", "-", "/", "-", `\`, "-")

// unquote decodes every valid %XX escape in s and keeps malformed ones
// literally. Byte sequences that are not valid UTF-8 become U+FFFD.
func unquote(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return strings.ToValidUTF8(b.String(), "\uFFFD")
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
