// Package http provides the JSON API server for browsing and syncing topics.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/devdocs"
	"github.com/fwojciec/devdocs/fs"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// ShutdownTimeout bounds graceful shutdown on Close.
const ShutdownTimeout = 5 * time.Second

// Server serves the topic and document API over HTTP.
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router

	// Addr is the bind address, for example ":8080".
	Addr string

	// DocsDir is the root directory under which topic folders live.
	DocsDir string

	TopicService    devdocs.TopicService
	DocumentService devdocs.DocumentService
	Syncer          devdocs.TopicSyncer
	Renderer        devdocs.Renderer
}

// NewServer creates a new Server with its routes registered.
func NewServer() *Server {
	s := &Server{
		server: &http.Server{},
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/topics", s.handleTopicList)
		r.Post("/topics", s.handleTopicCreate)
		r.Delete("/topics/{topicID}", s.handleTopicDelete)
		r.Get("/topics/{topicID}/tree", s.handleTopicTree)
		r.Post("/topics/{topicID}/sync", s.handleTopicSync)
		r.Get("/documents/{documentID}", s.handleDocumentShow)
		r.Post("/documents/{documentID}/read", s.handleDocumentRead)
	})

	s.router = r
	s.server.Handler = cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Accept"},
	}).Handler(r)

	return s
}

// ServeHTTP dispatches to the router. Exposed so tests can drive the server
// without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Open begins listening on Addr and serves until Close.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server: %v", err)
		}
	}()

	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the listening server. Only valid after Open.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

type topicResponse struct {
	*devdocs.Topic
	UnreadCount int `json:"unreadCount"`
}

func (s *Server) handleTopicList(w http.ResponseWriter, r *http.Request) {
	topics, err := s.TopicService.FindTopics(r.Context(), devdocs.TopicFilter{})
	if err != nil {
		s.error(w, r, err)
		return
	}

	out := make([]topicResponse, 0, len(topics))
	for _, topic := range topics {
		unread, err := s.DocumentService.CountUnread(r.Context(), topic.ID)
		if err != nil {
			s.error(w, r, err)
			return
		}
		out = append(out, topicResponse{Topic: topic, UnreadCount: unread})
	}

	s.respond(w, http.StatusOK, map[string]any{"topics": out})
}

func (s *Server) handleTopicCreate(w http.ResponseWriter, r *http.Request) {
	var topic devdocs.Topic
	if err := json.NewDecoder(r.Body).Decode(&topic); err != nil {
		s.error(w, r, devdocs.Errorf(devdocs.EINVALID, "invalid JSON body"))
		return
	}

	dir, err := fs.TopicDir(s.DocsDir, topic.Name)
	if err != nil {
		s.error(w, r, err)
		return
	}
	topic.LocalPath = dir

	if err := s.TopicService.CreateTopic(r.Context(), &topic); err != nil {
		s.error(w, r, err)
		return
	}

	s.respond(w, http.StatusCreated, &topic)
}

func (s *Server) handleTopicDelete(w http.ResponseWriter, r *http.Request) {
	topic, err := s.findTopic(r)
	if err != nil {
		s.error(w, r, err)
		return
	}

	if err := s.TopicService.DeleteTopic(r.Context(), topic.ID); err != nil {
		s.error(w, r, err)
		return
	}
	if err := fs.RemoveDir(topic.LocalPath); err != nil {
		s.error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTopicTree(w http.ResponseWriter, r *http.Request) {
	topic, err := s.findTopic(r)
	if err != nil {
		s.error(w, r, err)
		return
	}

	docs, err := s.DocumentService.FindDocuments(r.Context(), devdocs.DocumentFilter{TopicID: &topic.ID})
	if err != nil {
		s.error(w, r, err)
		return
	}

	tree := devdocs.BuildTree(docs, r.URL.Query().Get("search"))
	s.respond(w, http.StatusOK, map[string]any{
		"topic": topic,
		"tree":  tree,
		"count": tree.Count(),
	})
}

func (s *Server) handleTopicSync(w http.ResponseWriter, r *http.Request) {
	topic, err := s.findTopic(r)
	if err != nil {
		s.error(w, r, err)
		return
	}

	result, err := s.Syncer.SyncTopic(r.Context(), topic, nil)
	if err != nil {
		s.error(w, r, err)
		return
	}

	s.respond(w, http.StatusOK, map[string]any{"created": result.Created})
}

func (s *Server) handleDocumentShow(w http.ResponseWriter, r *http.Request) {
	doc, err := s.findDocument(r)
	if err != nil {
		s.error(w, r, err)
		return
	}

	content, err := fs.ReadDocument(doc.FilePath)
	if err != nil {
		s.error(w, r, err)
		return
	}

	contentType := "markdown"
	if r.URL.Query().Get("render") == "html" {
		content, err = s.Renderer.Render(content)
		if err != nil {
			s.error(w, r, err)
			return
		}
		contentType = "html"
	}

	s.respond(w, http.StatusOK, map[string]any{
		"document":    doc,
		"content":     content,
		"contentType": contentType,
	})
}

func (s *Server) handleDocumentRead(w http.ResponseWriter, r *http.Request) {
	doc, err := s.findDocument(r)
	if err != nil {
		s.error(w, r, err)
		return
	}

	// The body is optional; an empty body marks the document read.
	read := true
	var req struct {
		Read *bool `json:"read"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.error(w, r, devdocs.Errorf(devdocs.EINVALID, "invalid JSON body"))
		return
	}
	if req.Read != nil {
		read = *req.Read
	}

	if err := s.DocumentService.SetReadState(r.Context(), doc.ID, read); err != nil {
		s.error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) findTopic(r *http.Request) (*devdocs.Topic, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "topicID"), 10, 64)
	if err != nil {
		return nil, devdocs.Errorf(devdocs.EINVALID, "invalid topic id")
	}
	return s.TopicService.FindTopicByID(r.Context(), id)
}

func (s *Server) findDocument(r *http.Request) (*devdocs.Document, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "documentID"), 10, 64)
	if err != nil {
		return nil, devdocs.Errorf(devdocs.EINVALID, "invalid document id")
	}
	return s.DocumentService.FindDocumentByID(r.Context(), id)
}

func (s *Server) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func (s *Server) error(w http.ResponseWriter, r *http.Request, err error) {
	code := devdocs.ErrorCode(err)
	if code == devdocs.EINTERNAL {
		log.Printf("[http] %s %s: %v", r.Method, r.URL.Path, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(errorStatusCode(code))
	_ = json.NewEncoder(w).Encode(map[string]string{"error": devdocs.ErrorMessage(err)})
}

// errorStatusCode maps domain error codes to HTTP status codes.
func errorStatusCode(code string) int {
	switch code {
	case devdocs.ECONFLICT:
		return http.StatusConflict
	case devdocs.EINVALID:
		return http.StatusBadRequest
	case devdocs.ENOTFOUND:
		return http.StatusNotFound
	case devdocs.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
