// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package links

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPDFURLs(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "anchors in order with duplicate",
			html: `<a href="https://a.com/one.pdf">1</a><p>text</p>` +
				`<a href="http://b.com/dir/two.pdf">2</a><a href="https://a.com/one.pdf">again</a>`,
			want: []string{"https://a.com/one.pdf", "http://b.com/dir/two.pdf", "https://a.com/one.pdf"},
		},
		{
			name: "bare text separated by whitespace",
			html: "see https://x.org/a.pdf and\nhttps://x.org/b.pdf\tdone",
			want: []string{"https://x.org/a.pdf", "https://x.org/b.pdf"},
		},
		{
			name: "percent-encoded path",
			html: `<a href="https://site/Doc%20One.pdf">`,
			want: []string{"https://site/Doc%20One.pdf"},
		},
		{
			name: "uppercase extension is not matched",
			html: `<a href="https://site/Doc One.PDF">`,
			want: nil,
		},
		{
			name: "space inside URL is not matched",
			html: `<a href="https://site/Doc One.pdf">`,
			want: nil,
		},
		{
			name: "non-http schemes ignored",
			html: `<a href="ftp://x/a.pdf">x</a><a href="/relative/b.pdf">y</a>`,
			want: nil,
		},
		{
			name: "query after extension stops the match at .pdf",
			html: `<a href="https://x/a.pdf?download=1">`,
			want: []string{"https://x/a.pdf"},
		},
		{
			name: "no-break space and vertical tab end a URL",
			html: "https://x/a.pdf\u00a0https://x/b.pdf\vhttps://x/c.pdf\u3000more",
			want: []string{"https://x/a.pdf", "https://x/b.pdf", "https://x/c.pdf"},
		},
		{
			name: "no-break space inside URL is not matched",
			html: "https://x/Doc\u00a0One.pdf",
			want: nil,
		},
		{
			name: "no links",
			html: "<html><body>nothing</body></html>",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPDFURLs(tt.html))
		})
	}
}

func TestURLToFilename(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://x.com/A%20B.pdf", "a-b.pdf"},
		{"https://site/Doc%20One.pdf", "doc-one.pdf"},
		{"https://x.com/dir/sub/Report.pdf", "report.pdf"},
		{"https://x.com/a.pdf?v=2#page=3", "a.pdf"},
		{"http://x.com/caf%C3%A9%20menu.pdf", "café-menu.pdf"},
		{"https://x.com/100%25.pdf", "100%.pdf"},
		{"https://x.com/bad%zzname.pdf", "bad%zzname.pdf"},
		{"https://x.com/a%zz%20b.pdf", "a%zz-b.pdf"},
		{"https://x.com/trailing%2.pdf", "trailing%2.pdf"},
		{"https://x.com/files/..%2Fescaped.pdf", "..-escaped.pdf"},
		{"https://x.com/files/..%2F..%2Fetc%2Fx.pdf", "..-..-etc-x.pdf"},
		{"https://x.com/files/..%5Cwin.pdf", "..-win.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, URLToFilename(tt.url))
		})
	}
}

func TestURLToFilenameIdempotent(t *testing.T) {
	for _, u := range []string{
		"https://x.com/A%20B.pdf",
		"https://x.com/dir/Mixed_Case-File.pdf",
		"https://x.com/100%25.pdf",
		"https://x.com/files/..%2Fescaped.pdf",
	} {
		once := URLToFilename(u)
		assert.Equal(t, once, URLToFilename(once), "re-applying to %q", once)
	}
}

func TestURLToFilenameSingleElement(t *testing.T) {
	for _, u := range []string{
		"https://x.com/files/..%2Fescaped.pdf",
		"https://x.com/files/%2E%2E%2F%2E%2E%2Fescaped.pdf",
		"https://x.com/files/sub%2Fdir%5Cname.pdf",
		"https://x.com/a%zz%2F..%2Fb.pdf",
	} {
		name := URLToFilename(u)
		assert.NotContains(t, name, "/", u)
		assert.NotContains(t, name, `\`, u)
		assert.Equal(t, name, filepath.Base(name), u)
	}
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  []string
	}{
		{"empty", nil, []string{}},
		{"no duplicates", []string{"a", "b"}, []string{"a", "b"}},
		{"first occurrence wins", []string{"b", "a", "b", "c", "a"}, []string{"b", "a", "c"}},
		{"all same", []string{"x", "x", "x"}, []string{"x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dedupe(tt.items)
			assert.Equal(t, tt.want, got)

			seen := map[string]bool{}
			for _, g := range got {
				assert.False(t, seen[g], "repeated element %q", g)
				seen[g] = true
				assert.Contains(t, tt.items, g)
			}
			assert.LessOrEqual(t, len(got), len(tt.items))
		})
	}
}
