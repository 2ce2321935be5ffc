package source

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dgallion1/markwidget/markup"
	"github.com/dgallion1/markwidget/widget"
)

// plain renders doc and returns its visible text.
func plain(doc *Document) string {
	return widget.PlainText[string](markup.Render(doc.State(), markup.Options[string]{}))
}

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"a.txt", "*source.TextLoader"},
		{"a.MD", "*source.MarkdownLoader"},
		{"a.markdown", "*source.MarkdownLoader"},
		{"a.csv", "*source.CSVLoader"},
		{"a.htm", "*source.HTMLLoader"},
		{"a.pdf", "*source.PDFLoader"},
		{"a.docx", "*source.DOCXLoader"},
	}
	for _, tt := range tests {
		l, err := ForFile(tt.filename)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", tt.filename, err)
		}
		if got := fmt.Sprintf("%T", l); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.filename, tt.want, got)
		}
		if !IsSupportedExtension(tt.filename) {
			t.Errorf("%s: expected supported extension", tt.filename)
		}
	}

	if _, err := ForFile("image.png"); err == nil {
		t.Error("expected error for unsupported extension")
	}
	if IsSupportedExtension("image.png") {
		t.Error("expected .png to be unsupported")
	}
}

func TestHTMLLoader_Title(t *testing.T) {
	l := &HTMLLoader{}
	doc, err := l.Load(strings.NewReader("<html><head><title> My\n Page </title></head><body><p>hi</p></body></html>"), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "My Page" {
		t.Errorf("expected title %q, got %q", "My Page", doc.Title)
	}
	if got := plain(doc); got != "hi" {
		t.Errorf("expected %q, got %q", "hi", got)
	}

	doc, err = l.Load(strings.NewReader("<p>untitled</p>"), "raw.htm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "raw" {
		t.Errorf("expected filename title %q, got %q", "raw", doc.Title)
	}
}

func TestCSVLoader_Batches(t *testing.T) {
	var b strings.Builder
	b.WriteString("name,qty\n")
	for i := 0; i < 25; i++ {
		b.WriteString("apple,3\n")
	}
	b.WriteString("pear,1,extra\n")

	l := &CSVLoader{}
	doc, err := l.Load(strings.NewReader(b.String()), "stock.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != "stock" {
		t.Errorf("expected title %q, got %q", "stock", doc.Title)
	}
	for _, want := range []string{"<h3>Rows 2-21</h3>", "<h3>Rows 22-27</h3>", "<li><b>name</b>: pear, <b>qty</b>: 1, extra</li>"} {
		if !strings.Contains(doc.Markup, want) {
			t.Errorf("expected markup to contain %q", want)
		}
	}
}

func TestCSVLoader_Empty(t *testing.T) {
	l := &CSVLoader{}
	doc, err := l.Load(strings.NewReader(""), "none.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Markup != "" {
		t.Errorf("expected no markup, got %q", doc.Markup)
	}
}

func TestPagesMarkup(t *testing.T) {
	got := pagesMarkup("first  page\f\f<third>")
	want := "<h2>Page 1</h2>\n<pre>first  page</pre>\n<h2>Page 3</h2>\n<pre>&lt;third&gt;</pre>\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestJoinPages_KeepsNumbersAfterUnreadablePage(t *testing.T) {
	pages := map[int]string{1: "one", 3: "three"}
	text := joinPages(3, func(i int) (string, bool) {
		p, ok := pages[i]
		return p, ok
	})
	if text != "one\f\fthree" {
		t.Fatalf("expected empty second page kept, got %q", text)
	}
	if got := pagesMarkup(text); !strings.Contains(got, "<h2>Page 3</h2>\n<pre>three</pre>") {
		t.Errorf("expected third page numbered 3, got %q", got)
	}
}
