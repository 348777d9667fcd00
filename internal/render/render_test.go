package render

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/google/go-cmp/cmp"

	"github.com/starford/quiver-to-markdown/internal/apperr"
	"github.com/starford/quiver-to-markdown/internal/models"
)

const layout = "2017/sheet"

func note(title, folder string, meta *models.NoteMetadata, cells ...models.Cell) models.EnrichedNote {
	return models.EnrichedNote{
		NoteContent: &models.NoteContent{
			Source: models.Source{Path: "/L.qvlibrary/A.qvnotebook/N.qvnote/content.json"},
			Title:  title,
			Cells:  cells,
		},
		Folder: folder,
		Meta:   meta,
	}
}

func TestBody_MarkdownAndCode(t *testing.T) {
	got, err := NewRenderer().Body([]models.Cell{
		models.MarkdownCell{Data: "# Hi"},
		models.CodeCell{Language: "js", Data: "1+1"},
	})
	if err != nil {
		t.Fatalf("Body: %v", err)
	}
	want := "# Hi\n\n```js\n1+1\n```"
	if got != want {
		t.Errorf("body = %q, want %q", got, want)
	}
}

func TestBody_UnknownAndEmptyCellsLeaveNoGaps(t *testing.T) {
	got, err := NewRenderer().Body([]models.Cell{
		models.MarkdownCell{Data: "first"},
		models.UnknownCell{Type: "diagram"},
		models.MarkdownCell{Data: ""},
		models.MarkdownCell{Data: "second"},
	})
	if err != nil {
		t.Fatalf("Body: %v", err)
	}
	if got != "first\n\nsecond" {
		t.Errorf("body = %q", got)
	}
}

func TestBody_PreservesOrder(t *testing.T) {
	cells := []models.Cell{
		models.MarkdownCell{Data: "one"},
		models.CodeCell{Language: "go", Data: "two"},
		models.TextCell{Data: "<p>three</p>"},
		models.MarkdownCell{Data: "four"},
	}
	got, err := NewRenderer().Body(cells)
	if err != nil {
		t.Fatalf("Body: %v", err)
	}
	last := -1
	for _, w := range []string{"one", "two", "three", "four"} {
		i := strings.Index(got, w)
		if i <= last {
			t.Fatalf("%q out of order in %q", w, got)
		}
		last = i
	}
}

func TestBody_Empty(t *testing.T) {
	got, err := NewRenderer().Body(nil)
	if err != nil || got != "" {
		t.Errorf("Body(nil) = %q, %v", got, err)
	}
}

func TestHTML(t *testing.T) {
	cases := []struct {
		in       string
		contains []string
	}{
		{"<div>Hello <b>world</b></div>", []string{"Hello **world**"}},
		{"<h2>Title</h2><p>text</p>", []string{"## Title", "text"}},
		{"<ul><li>one</li><li>two</li></ul>", []string{"- one", "- two"}},
		{`<a href="https://example.com">site</a>`, []string{"[site](https://example.com)"}},
		{"<p>use <code>go test</code></p>", []string{"`go test`"}},
		{"<del>gone</del>", []string{"~gone~"}},
	}
	r := NewRenderer()
	for _, tc := range cases {
		got, err := r.HTML(tc.in)
		if err != nil {
			t.Fatalf("HTML(%q): %v", tc.in, err)
		}
		for _, want := range tc.contains {
			if !strings.Contains(got, want) {
				t.Errorf("HTML(%q) = %q, want it to contain %q", tc.in, got, want)
			}
		}
	}
}

func TestFrontmatter(t *testing.T) {
	n := note("Hello", "Dev-Notes", &models.NoteMetadata{UpdatedAt: 1700000000, Tags: []string{"a", "b"}})
	got, err := Frontmatter(n, layout, time.UTC)
	if err != nil {
		t.Fatalf("Frontmatter: %v", err)
	}
	want := "---\n" +
		"title: Hello\n" +
		"category: Dev-Notes\n" +
		"layout: 2017/sheet\n" +
		"tags: [a,b]\n" +
		"updated: 2023-11-14\n" +
		"---\n"
	if got != want {
		t.Errorf("frontmatter mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestFrontmatter_Timezone(t *testing.T) {
	// 1700000000 is 2023-11-14 22:13 UTC, already the 15th in UTC+9.
	tokyo := time.FixedZone("JST", 9*60*60)
	n := note("T", "F", &models.NoteMetadata{UpdatedAt: 1700000000})
	got, err := Frontmatter(n, layout, tokyo)
	if err != nil {
		t.Fatalf("Frontmatter: %v", err)
	}
	if !strings.Contains(got, "updated: 2023-11-15\n") {
		t.Errorf("frontmatter = %q", got)
	}
	if !strings.Contains(got, "tags: []\n") {
		t.Errorf("empty tags not rendered as []: %q", got)
	}
}

func TestFrontmatter_MissingMetadata(t *testing.T) {
	_, err := Frontmatter(note("T", "F", nil), layout, time.UTC)
	if !errors.Is(err, apperr.ErrMissingMetadata) {
		t.Fatalf("err = %v, want ErrMissingMetadata", err)
	}
}

func TestFrontmatter_QuotesUnsafeScalars(t *testing.T) {
	meta := &models.NoteMetadata{UpdatedAt: 1700000000, Tags: []string{"c,d", "plain", "#hash"}}
	n := note("Deploy: step 1\nand 2", "", meta)
	fm, err := Frontmatter(n, layout, time.UTC)
	if err != nil {
		t.Fatalf("Frontmatter: %v", err)
	}

	var parsed struct {
		Title    string   `yaml:"title"`
		Category string   `yaml:"category"`
		Layout   string   `yaml:"layout"`
		Tags     []string `yaml:"tags"`
	}
	body, err := frontmatter.Parse(bytes.NewReader([]byte(fm+"\nbody")), &parsed)
	if err != nil {
		t.Fatalf("parse frontmatter %q: %v", fm, err)
	}
	if parsed.Title != "Deploy: step 1\nand 2" {
		t.Errorf("title = %q", parsed.Title)
	}
	if parsed.Category != "" {
		t.Errorf("category = %q", parsed.Category)
	}
	if diff := cmp.Diff(meta.Tags, parsed.Tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
	if parsed.Layout != layout {
		t.Errorf("layout = %q", parsed.Layout)
	}
	if strings.TrimSpace(string(body)) != "body" {
		t.Errorf("body = %q", body)
	}
}

func TestDocument(t *testing.T) {
	n := note("Hello", "Dev-Notes", &models.NoteMetadata{UpdatedAt: 1700000000, Tags: []string{"a", "b"}},
		models.MarkdownCell{Data: "# Hi"},
		models.CodeCell{Language: "js", Data: "1+1"},
	)
	got, err := NewRenderer().Document(n, layout, time.UTC)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	want := "---\ntitle: Hello\ncategory: Dev-Notes\nlayout: 2017/sheet\ntags: [a,b]\nupdated: 2023-11-14\n---\n" +
		"\n# Hi\n\n```js\n1+1\n```"
	if got != want {
		t.Errorf("document mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
}

func TestRenderer_ConcurrentText(t *testing.T) {
	r := NewRenderer()
	cells := []models.Cell{models.TextCell{Data: "<p>a <em>b</em></p>"}}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := r.Body(cells)
			if err == nil && got != "a _b_" {
				err = fmt.Errorf("body = %q", got)
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Error(err)
		}
	}
}
