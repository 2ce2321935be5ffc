// Package markup turns a parsed HTML document into a widget tree.
//
// A State is built once from markup text and outlives many frames. Render
// walks it once per frame and returns a freshly owned tree. Interactions in
// that tree produce host messages carrying Change values, which the host
// hands back through Submit and applies with Update before the next frame.
package markup

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dgallion1/markwidget/widget"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const defaultQueueSize = 256

// State owns a parsed document and the interactive state layered on it.
type State struct {
	root     *html.Node
	code     map[string]*widget.Content
	codeKeys map[*html.Node]string
	expanded map[int]bool
	changes  chan Change
	edits    int
	log      *slog.Logger
}

// Option configures a State.
type Option func(*State)

// WithLogger sets the logger used for dropped changes and parse failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.log = l
		}
	}
}

// WithQueueSize sets how many changes may be pending between updates.
func WithQueueSize(n int) Option {
	return func(s *State) {
		if n > 0 {
			s.changes = make(chan Change, n)
		}
	}
}

// FromHTML parses input into a new State. Malformed markup is recovered by
// the parser; the call never fails.
func FromHTML(input string, opts ...Option) *State {
	s := &State{
		code:     make(map[string]*widget.Content),
		codeKeys: make(map[*html.Node]string),
		expanded: make(map[int]bool),
		log:      slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(s)
	}
	if s.changes == nil {
		s.changes = make(chan Change, defaultQueueSize)
	}

	root, err := html.Parse(strings.NewReader(input))
	if err != nil {
		s.log.Error("html parse failed", "error", err)
		root = &html.Node{Type: html.DocumentNode}
	}
	s.root = root
	s.index()
	return s
}

// index registers a content for every text node under a code element and a
// collapsed entry for every details element. Keys and ids are pre-order
// positions, so they only depend on document structure.
func (s *State) index() {
	var texts, dropdowns int
	var walk func(n *html.Node, inCode bool)
	walk = func(n *html.Node, inCode bool) {
		switch {
		case n.Type == html.TextNode:
			if inCode {
				key := "code-" + strconv.Itoa(texts)
				s.code[key] = widget.NewContent(n.Data)
				s.codeKeys[n] = key
			}
			texts++
		case n.Type == html.ElementNode && n.DataAtom == atom.Code:
			inCode = true
		case n.Type == html.ElementNode && n.DataAtom == atom.Details:
			s.expanded[dropdowns] = false
			dropdowns++
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, inCode)
		}
	}
	walk(s.root, false)
}

// Root returns the parsed document.
func (s *State) Root() *html.Node {
	return s.root
}

// Content returns the editable content behind a code block key.
func (s *State) Content(key string) (*widget.Content, bool) {
	c, ok := s.code[key]
	return c, ok
}

// CodeKey returns the content key of a text node inside a code element.
func (s *State) CodeKey(n *html.Node) (string, bool) {
	key, ok := s.codeKeys[n]
	return key, ok
}

// Expanded reports the open state of a collapsible section. known is false
// for ids the document does not have.
func (s *State) Expanded(id int) (open, known bool) {
	open, known = s.expanded[id]
	return open, known
}

// Dropdowns returns the number of collapsible sections in the document.
func (s *State) Dropdowns() int {
	return len(s.expanded)
}

// Submit queues a change for the next Update. It never blocks and is safe to
// call from any goroutine.
func (s *State) Submit(c Change) error {
	select {
	case s.changes <- c:
		return nil
	default:
		return fmt.Errorf("submit %s: %w", c.Kind, ErrQueueFull)
	}
}

// Edits returns how many applied changes altered code block text. Cursor
// and selection moves are not counted.
func (s *State) Edits() int {
	return s.edits
}

// Room reports how many more changes Submit accepts before the next Update.
func (s *State) Room() int {
	return cap(s.changes) - len(s.changes)
}

// Update applies every pending change in submission order. Changes that
// refer to unknown code blocks or sections are dropped.
func (s *State) Update() {
	for {
		select {
		case c := <-s.changes:
			s.apply(c)
		default:
			return
		}
	}
}

func (s *State) apply(c Change) {
	switch c.Kind {
	case ChangeToggle:
		if _, ok := s.expanded[c.ID]; !ok {
			s.log.Debug("dropping toggle for unknown section", "id", c.ID)
			return
		}
		s.expanded[c.ID] = c.Open
	case ChangeEdit:
		content, ok := s.code[c.Key]
		if !ok {
			s.log.Debug("dropping edit for unknown code block", "key", c.Key)
			return
		}
		content.Perform(c.Action)
		if c.Action.IsEdit() {
			s.edits++
		}
	default:
		s.log.Debug("dropping unknown change", "kind", c.Kind)
	}
}

// FindImageLinks returns the set of non-empty img sources in the document.
func (s *State) FindImageLinks() map[string]struct{} {
	links := make(map[string]struct{})
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Img {
			if src, ok := attr(n, "src"); ok && src != "" {
				links[src] = struct{}{}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(s.root)
	return links
}
