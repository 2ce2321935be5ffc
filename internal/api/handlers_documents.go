package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"mime"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dgallion1/markwidget/internal/session"
	"github.com/dgallion1/markwidget/internal/source"
	"github.com/dgallion1/markwidget/markup"
	"github.com/go-chi/chi/v5"
)

type createRequest struct {
	Title    string `json:"title"`
	Markup   string `json:"markup"`
	Markdown bool   `json:"markdown"`
}

type createResponse struct {
	DocID      string   `json:"doc_id"`
	Title      string   `json:"title"`
	Dropdowns  int      `json:"dropdowns"`
	ImageLinks []string `json:"image_links"`
}

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	var (
		doc  *source.Document
		data []byte
	)
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		var code int
		var err error
		doc, data, code, err = s.loadUpload(r)
		if err != nil {
			jsonError(w, err.Error(), code)
			return
		}
	} else {
		var req createRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			if tooLarge(err) {
				jsonError(w, fmt.Sprintf("request exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
				return
			}
			jsonError(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
		if int64(len(req.Markup)) > s.cfg.MaxUploadBytes {
			jsonError(w, fmt.Sprintf("markup exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
			return
		}
		if req.Title == "" {
			req.Title = "untitled"
		}
		doc = &source.Document{Title: req.Title, Markup: req.Markup, Markdown: req.Markdown}
		data = []byte(req.Markup)
	}

	state := doc.State(
		markup.WithLogger(s.log),
		markup.WithQueueSize(s.cfg.MaxPendingChanges),
	)
	sess := session.New(doc.Title, data, state)
	s.sessions.Put(sess)

	resp := createResponse{DocID: sess.ID, Title: sess.Title}
	sess.Do(func(st *markup.State) {
		resp.Dropdowns = st.Dropdowns()
		resp.ImageLinks = sortedLinks(st)
	})

	s.log.Info("document created",
		"doc_id", sess.ID,
		"title", sess.Title,
		"bytes", len(data),
		"dropdowns", resp.Dropdowns,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// loadUpload reads a multipart file and converts it with the loader for its
// extension. The returned code is the HTTP status to use on error.
func (s *Server) loadUpload(r *http.Request) (*source.Document, []byte, int, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		if tooLarge(err) {
			return nil, nil, http.StatusRequestEntityTooLarge, fmt.Errorf("request exceeds max size (%d bytes)", s.cfg.MaxUploadBytes)
		}
		return nil, nil, http.StatusBadRequest, fmt.Errorf("invalid multipart form: %w", err)
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, nil, http.StatusBadRequest, fmt.Errorf("file is required: %w", err)
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	loader, err := source.ForFile(filename)
	if err != nil {
		return nil, nil, http.StatusBadRequest, fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
	if pdf, ok := loader.(*source.PDFLoader); ok {
		pdf.FallbackPdftotext = s.cfg.PDFFallbackPdftotext
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return nil, nil, http.StatusInternalServerError, fmt.Errorf("failed to read file")
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return nil, nil, http.StatusRequestEntityTooLarge, fmt.Errorf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes)
	}

	doc, err := loader.Load(bytes.NewReader(data), filename)
	if err != nil {
		s.log.Warn("load failed", "filename", filename, "error", err)
		return nil, nil, http.StatusUnprocessableEntity, fmt.Errorf("load %s: %w", filename, err)
	}
	if title := r.FormValue("title"); title != "" {
		doc.Title = title
	}
	return doc, data, 0, nil
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(chi.URLParam(r, "docID"))
	if sess == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sess.Snapshot())
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	docID := chi.URLParam(r, "docID")
	if !s.sessions.Delete(docID) {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	s.log.Info("document deleted", "doc_id", docID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleImages(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(chi.URLParam(r, "docID"))
	if sess == nil {
		jsonError(w, "document not found", http.StatusNotFound)
		return
	}
	var links []string
	sess.Do(func(st *markup.State) {
		links = sortedLinks(st)
	})
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"doc_id":      sess.ID,
		"image_links": links,
	})
}

// tooLarge reports whether err comes from the request body limit.
func tooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

func sortedLinks(st *markup.State) []string {
	links := slices.Sorted(maps.Keys(st.FindImageLinks()))
	if links == nil {
		links = []string{}
	}
	return links
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
