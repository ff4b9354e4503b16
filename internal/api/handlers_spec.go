package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/dgallion1/specdoc/internal/doctree"
	"github.com/dgallion1/specdoc/internal/parser"
	"github.com/dgallion1/specdoc/internal/render"
	"github.com/go-chi/chi/v5/middleware"
)

// handleSpec serves the configured document as numbered HTML. Repeated
// ?section= parameters keep only those sections and their subsections.
func (s *Server) handleSpec(w http.ResponseWriter, r *http.Request) {
	log := s.log.With("request_id", middleware.GetReqID(r.Context()))

	src, err := os.ReadFile(s.cfg.SpecPath)
	if err != nil {
		log.Error("read spec", "path", s.cfg.SpecPath, "error", err)
		jsonError(w, "spec unavailable", http.StatusInternalServerError)
		return
	}

	sections := r.URL.Query()["section"]
	key := render.Key(src, sections)
	etag := `"` + key[:32] + `"`
	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	out, ok := s.cache.Get(key)
	if !ok {
		doc, err := (&parser.MarkdownParser{}).Parse(bytes.NewReader(src), s.cfg.SpecPath)
		if err != nil {
			log.Error("parse spec", "error", err)
			jsonError(w, "failed to parse spec: "+err.Error(), http.StatusInternalServerError)
			return
		}
		out, err = s.renderer().Render(doc, sections)
		if err != nil {
			log.Error("render spec", "error", err)
			jsonError(w, "failed to render spec: "+err.Error(), http.StatusInternalServerError)
			return
		}
		s.cache.Put(key, out)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", etag)
	w.Write(out)
}

func (s *Server) handleSpecText(w http.ResponseWriter, r *http.Request) {
	src, err := os.ReadFile(s.cfg.SpecPath)
	if err != nil {
		s.log.Error("read spec", "path", s.cfg.SpecPath, "error", err)
		http.Error(w, "spec unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(src)
}

// handleSpecOutline returns the section outline of the configured document.
func (s *Server) handleSpecOutline(w http.ResponseWriter, r *http.Request) {
	opts, err := s.outlineOptions(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	f, err := os.Open(s.cfg.SpecPath)
	if err != nil {
		s.log.Error("open spec", "path", s.cfg.SpecPath, "error", err)
		jsonError(w, "spec unavailable", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	doc, err := (&parser.MarkdownParser{}).Parse(f, s.cfg.SpecPath)
	if err != nil {
		jsonError(w, "failed to parse spec: "+err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeOutline(w, doc, opts)
}

// outlineOptions reads ?numbered=, ?rank= and ?strict= into build options.
func (s *Server) outlineOptions(r *http.Request) (doctree.BuildOptions, error) {
	opts := doctree.BuildOptions{
		Exclude: s.rules,
		Strict:  s.cfg.StrictNesting,
	}
	value := func(key string) string {
		if v := r.FormValue(key); v != "" {
			return v
		}
		return r.URL.Query().Get(key)
	}

	if v := value("numbered"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New("numbered must be a boolean")
		}
		opts.Number = b
	}
	if v := value("strict"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New("strict must be a boolean")
		}
		opts.Strict = b
	}
	if v := value("rank"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 6 {
			return opts, errors.New("rank must be between 1 and 6")
		}
		opts.MaxRank = n
	}
	return opts, nil
}

func (s *Server) writeOutline(w http.ResponseWriter, doc *parser.Document, opts doctree.BuildOptions) {
	tree, err := doctree.Build(doc.Title, doc.Nodes, opts)
	if err != nil {
		if doctree.IsNestingError(err) {
			jsonError(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		jsonError(w, "failed to build outline: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(tree.Warnings) > 0 {
		s.log.Warn("skipped malformed headings", "title", doc.Title, "warnings", strings.Join(tree.Warnings, "; "))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tree)
}
