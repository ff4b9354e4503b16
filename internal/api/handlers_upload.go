package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dgallion1/specdoc/internal/parser"
	"github.com/dgallion1/specdoc/internal/render"
)

// readUpload parses the multipart form and reads the "file" field.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return "", nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return "", nil, false
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return "", nil, false
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return "", nil, false
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return "", nil, false
	}
	return filename, data, true
}

func parseUpload(filename string, data []byte) (*parser.Document, error) {
	p, err := parser.ForFile(filename)
	if err != nil {
		return nil, err
	}
	return p.Parse(bytes.NewReader(data), filename)
}

// handleUploadOutline returns the outline of an uploaded document.
func (s *Server) handleUploadOutline(w http.ResponseWriter, r *http.Request) {
	filename, data, ok := s.readUpload(w, r)
	if !ok {
		return
	}
	defer r.MultipartForm.RemoveAll()

	opts, err := s.outlineOptions(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	doc, err := parseUpload(filename, data)
	if err != nil {
		jsonError(w, "failed to parse file: "+err.Error(), http.StatusBadRequest)
		return
	}
	if title := r.FormValue("title"); title != "" {
		doc.Title = title
	}
	s.writeOutline(w, doc, opts)
}

// handleUploadRender returns an uploaded Markdown or HTML document as numbered HTML.
func (s *Server) handleUploadRender(w http.ResponseWriter, r *http.Request) {
	filename, data, ok := s.readUpload(w, r)
	if !ok {
		return
	}
	defer r.MultipartForm.RemoveAll()

	doc, err := parseUpload(filename, data)
	if err != nil {
		jsonError(w, "failed to parse file: "+err.Error(), http.StatusBadRequest)
		return
	}

	out, err := s.renderer().Render(doc, r.MultipartForm.Value["section"])
	if errors.Is(err, render.ErrNoHTML) {
		jsonError(w, fmt.Sprintf("cannot render %s files", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}
	if err != nil {
		jsonError(w, "failed to render: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(out)
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
