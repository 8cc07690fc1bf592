package usecase

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// mustDoc parses an HTML fragment into a goquery document for tests.
func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse test HTML: %v", err)
	}
	return doc
}

func TestExtractField(t *testing.T) {
	testCases := []struct {
		name       string
		html       string
		candidates []string
		want       string
	}{
		{
			name:       "first candidate wins",
			html:       `<div class="customer-name">Jane Doe</div><h3 class="other">Bob</h3>`,
			candidates: []string{".customer-name", ".other"},
			want:       "Jane Doe",
		},
		{
			name:       "first candidate wins regardless of later content",
			html:       `<div class="a">First</div><div class="b">Second</div>`,
			candidates: []string{".b", ".a"},
			want:       "Second",
		},
		{
			name:       "falls through empty matches",
			html:       `<div class="a">   </div><div class="b">Real Value</div>`,
			candidates: []string{".a", ".b"},
			want:       "Real Value",
		},
		{
			name:       "trims whitespace",
			html:       `<div class="a">  padded  </div>`,
			candidates: []string{".a"},
			want:       "padded",
		},
		{
			name:       "no match yields empty string",
			html:       `<div class="a">value</div>`,
			candidates: []string{".missing", ".also-missing"},
			want:       "",
		},
		{
			name:       "empty candidate list yields empty string",
			html:       `<div class="a">value</div>`,
			candidates: nil,
			want:       "",
		},
		{
			name:       "attribute selector",
			html:       `<span data-customer-name>ACME Corp</span>`,
			candidates: []string{"[data-customer-name]"},
			want:       "ACME Corp",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := mustDoc(t, tc.html)
			got := ExtractField(doc, tc.candidates)
			if got != tc.want {
				t.Errorf("ExtractField() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExtractFieldOr(t *testing.T) {
	doc := mustDoc(t, `<div class="present">here</div>`)

	if got := ExtractFieldOr(doc, []string{".present"}, "default"); got != "here" {
		t.Errorf("ExtractFieldOr() = %q, want %q", got, "here")
	}
	if got := ExtractFieldOr(doc, []string{".missing"}, "US"); got != "US" {
		t.Errorf("ExtractFieldOr() = %q, want %q", got, "US")
	}
}
