package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dgallion1/markwidget/internal/termhost"
	"github.com/dgallion1/markwidget/markup"
	"github.com/dgallion1/markwidget/widget"
	"github.com/go-chi/chi/v5"
)

const defaultTextWidth = 80

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(chi.URLParam(r, "docID"))
	if sess == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}

	var tree widget.Element[Event]
	sess.Do(func(st *markup.State) {
		tree = markup.Render(st, renderOptions(s.cfg))
	})

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"doc_id": sess.ID,
			"title":  sess.Title,
			"tree":   Encode(tree),
		})
	case "text":
		width := defaultTextWidth
		if v := r.URL.Query().Get("width"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				width = n
			}
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(termhost.Render[Event](tree, width)))
	default:
		jsonError(w, "unknown format: "+format, http.StatusBadRequest)
	}
}

func (s *Server) handleChanges(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(chi.URLParam(r, "docID"))
	if sess == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}

	var changes []markup.Change
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		jsonError(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	// A batch is applied whole or not at all.
	var (
		accepted int
		err      error
	)
	sess.Do(func(st *markup.State) {
		if room := st.Room(); len(changes) > room {
			err = fmt.Errorf("batch of %d changes exceeds queue room %d: %w", len(changes), room, markup.ErrQueueFull)
			return
		}
		for _, c := range changes {
			if err = st.Submit(c); err != nil {
				break
			}
			accepted++
		}
		st.Update()
	})
	if errors.Is(err, markup.ErrQueueFull) {
		s.log.Warn("change queue full", "doc_id", sess.ID, "accepted", accepted, "submitted", len(changes))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error":    err.Error(),
			"accepted": accepted,
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"doc_id":   sess.ID,
		"accepted": accepted,
	})
}
