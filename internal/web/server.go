// Package web exposes the solver over HTTP: start a solve, poll its
// progress, cancel it, and check service health. The JSON contract mirrors
// the CLI's watch command and the TUI dashboard - start, poll, cancel -
// over HTTP instead of a ticker or a goroutine-local channel.
package web

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/delford/twophase-cube/internal/storage"
)

// Server serves the JSON solve API and a minimal HTML front end.
type Server struct {
	router *mux.Router
	db     *storage.DB

	mu       sync.Mutex
	sessions map[string]*solveSession
}

// NewServer builds a Server. db may be nil, in which case solves are not
// recorded to history but the API still functions.
func NewServer(db *storage.DB) *Server {
	s := &Server{
		router:   mux.NewRouter(),
		db:       db,
		sessions: make(map[string]*solveSession),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleStartSolve).Methods("POST")
	api.HandleFunc("/solve/{id}", s.handleGetSolve).Methods("GET")
	api.HandleFunc("/solve/{id}/cancel", s.handleCancelSolve).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
}

// Start blocks serving on addr.
func (s *Server) Start(addr string) error {
	log.Printf("server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
