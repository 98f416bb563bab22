package server

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/asherpoirier/website/internal/page"
)

func (s *Server) renderError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmplFunc(w, "error.html", nil); err != nil {
		slog.Error("Failed to render error template", "error", err)
	}
}

func (s *Server) newRenderer(w http.ResponseWriter, r *http.Request) *page.Renderer {
	return page.NewRenderer(s.catalog, redirectNavigator{w: w, r: r})
}

func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {
	renderer := s.newRenderer(w, r)
	renderer.ApplyQuery(r.URL.Query())
	key := renderer.StateKey()

	body, ok := s.pages.Get(key)
	if !ok {
		var buf bytes.Buffer
		if err := s.tmplFunc(&buf, "index.html", renderer.Render()); err != nil {
			slog.Error("Failed to render index template", "error", err, "state", key)
			s.renderError(w, http.StatusInternalServerError)
			return
		}
		body = buf.Bytes()
		s.pages.Set(key, body)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(body); err != nil {
		slog.Error("Failed to write index page", "error", err)
	}
}

func (s *Server) HandleFreeTrial(w http.ResponseWriter, r *http.Request) {
	s.newRenderer(w, r).OnSelectFreeTrial()
}

func (s *Server) HandleSupport(w http.ResponseWriter, r *http.Request) {
	s.newRenderer(w, r).OnContactSupport()
}

func (s *Server) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		s.renderError(w, http.StatusNotFound)
		return
	}

	plan, ok := s.catalog.Plan(id)
	if !ok {
		slog.Warn("Subscribe requested for unknown plan", "plan_id", id)
		s.renderError(w, http.StatusNotFound)
		return
	}

	s.newRenderer(w, r).OnSubscribe(plan)
}

// HandleSection sends the browser to an in-page anchor. Unknown anchors get
// 204 so the current page stays where it is.
func (s *Server) HandleSection(w http.ResponseWriter, r *http.Request) {
	section, ok := s.newRenderer(w, r).ScrollToSection(chi.URLParam(r, "anchor"))
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/#"+section.Anchor, http.StatusSeeOther)
}

func (s *Server) serveFile(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := s.assets.Open(path)
		if err != nil {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		defer func() { _ = file.Close() }()
		_, _ = io.Copy(w, file)
	}
}

func (s *Server) cacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/static/") {
			w.Header().Set("Cache-Control", "public, max-age=86400")
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		next.ServeHTTP(w, r)
	})
}
