package transport

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RPCHandler handles method dispatch for a resolved access.
type RPCHandler interface {
	Handle(ctx context.Context, access Access, method string, params json.RawMessage) (any, error)
}

// Server wires HTTP handlers.
type Server struct {
	handler RPCHandler
}

// NewServer creates an HTTP router with bearer auth on the RPC endpoint.
func NewServer(handler RPCHandler, authMiddleware func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()

	srv := &Server{handler: handler}

	r.Group(func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}
		r.Post("/rpc", srv.handleRPC)
	})
	r.Get("/health", srv.handleHealth)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	req, err := ParseRequest(r.Body)
	if err != nil {
		WriteError(w, nil, ErrInvalidReq, "invalid request", nil)
		return
	}

	access, ok := AccessFromContext(r.Context())
	if !ok || access.Key == "" {
		http.Error(w, "missing access", http.StatusUnauthorized)
		return
	}

	result, err := s.handler.Handle(r.Context(), access, req.Method, req.Params)
	if err != nil {
		WriteError(w, req.ID, errorCode(err), err.Error(), nil)
		return
	}

	WriteResult(w, req.ID, result)
}
