// Package httpapi exposes the admin service over JSON/HTTP. It only
// decodes requests, resolves the caller against the user directory, and
// encodes responses; all policy lives below in the server.
//
// Authentication is delegated to the fronting layer, which is expected to
// set the authenticated principal in the X-Graphd-User header.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc/status"

	"github.com/graphd-io/graphd/pkg/identity"
	"github.com/graphd-io/graphd/pkg/logger"
	"github.com/graphd-io/graphd/pkg/server"
	"github.com/graphd-io/graphd/pkg/storage"
)

const userHeader = "X-Graphd-User"

type handler struct {
	server *server.Server
	users  storage.UserStore
	logger logger.Logger
}

// New builds the admin HTTP handler over the given server and directory.
func New(srv *server.Server, users storage.UserStore, log logger.Logger) http.Handler {
	h := &handler{server: srv, users: users, logger: log}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/transactions", h.listTransactions)
	mux.HandleFunc("POST /admin/transactions/terminate", h.terminateTransactions)
	mux.HandleFunc("GET /admin/connections", h.listConnections)
	mux.HandleFunc("POST /admin/connections/terminate", h.terminateConnections)
	mux.HandleFunc("GET /admin/queries", h.listQueries)
	mux.HandleFunc("POST /admin/queries/{id}/kill", h.killQuery)
	mux.HandleFunc("POST /admin/queries/kill", h.killQueries)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// withCaller resolves the authenticated principal into a caller identity
// and injects it into the request context. Unknown or missing principals
// get a 401 before any admin logic runs.
func (h *handler) withCaller(w http.ResponseWriter, r *http.Request) (*http.Request, bool) {
	username := r.Header.Get(userHeader)
	if username == "" {
		h.writeJSONError(w, http.StatusUnauthorized, "missing "+userHeader+" header")
		return nil, false
	}

	user, err := h.users.GetUser(r.Context(), username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			h.writeJSONError(w, http.StatusUnauthorized, "unknown user")
			return nil, false
		}
		h.logger.Error("resolving caller failed", zap.Error(err))
		h.writeJSONError(w, http.StatusInternalServerError, "internal server error")
		return nil, false
	}

	ctx := identity.ContextWithIdentity(r.Context(), &identity.Identity{
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	})
	return r.WithContext(ctx), true
}

func (h *handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	r, ok := h.withCaller(w, r)
	if !ok {
		return
	}
	results, err := h.server.ListTransactions(r.Context())
	if err != nil {
		h.writeStatusError(w, err)
		return
	}
	h.writeJSON(w, results)
}

type terminateRequest struct {
	Username string `json:"username"`
}

func (h *handler) terminateTransactions(w http.ResponseWriter, r *http.Request) {
	r, ok := h.withCaller(w, r)
	if !ok {
		return
	}
	var req terminateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result, err := h.server.TerminateTransactionsForUser(r.Context(), req.Username)
	if err != nil {
		h.writeStatusError(w, err)
		return
	}
	h.writeJSON(w, result)
}

func (h *handler) listConnections(w http.ResponseWriter, r *http.Request) {
	r, ok := h.withCaller(w, r)
	if !ok {
		return
	}
	results, err := h.server.ListConnections(r.Context())
	if err != nil {
		h.writeStatusError(w, err)
		return
	}
	h.writeJSON(w, results)
}

func (h *handler) terminateConnections(w http.ResponseWriter, r *http.Request) {
	r, ok := h.withCaller(w, r)
	if !ok {
		return
	}
	var req terminateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result, err := h.server.TerminateConnectionsForUser(r.Context(), req.Username)
	if err != nil {
		h.writeStatusError(w, err)
		return
	}
	h.writeJSON(w, result)
}

func (h *handler) listQueries(w http.ResponseWriter, r *http.Request) {
	r, ok := h.withCaller(w, r)
	if !ok {
		return
	}
	results, err := h.server.ListQueries(r.Context())
	if err != nil {
		h.writeStatusError(w, err)
		return
	}
	h.writeJSON(w, results)
}

func (h *handler) killQuery(w http.ResponseWriter, r *http.Request) {
	r, ok := h.withCaller(w, r)
	if !ok {
		return
	}
	results, err := h.server.KillQuery(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeStatusError(w, err)
		return
	}
	h.writeJSON(w, results)
}

type killQueriesRequest struct {
	IDs []string `json:"ids"`
}

func (h *handler) killQueries(w http.ResponseWriter, r *http.Request) {
	r, ok := h.withCaller(w, r)
	if !ok {
		return
	}
	var req killQueriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	results, err := h.server.KillQueries(r.Context(), req.IDs)
	if err != nil {
		h.writeStatusError(w, err)
		return
	}
	h.writeJSON(w, results)
}

func (h *handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encoding response failed", zap.Error(err))
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeStatusError maps the service's gRPC status errors onto HTTP the
// same way grpc-gateway would.
func (h *handler) writeStatusError(w http.ResponseWriter, err error) {
	st := status.Convert(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(runtime.HTTPStatusFromCode(st.Code()))
	_ = json.NewEncoder(w).Encode(errorResponse{
		Code:    st.Code().String(),
		Message: st.Message(),
	})
}

func (h *handler) writeJSONError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Code:    http.StatusText(code),
		Message: message,
	})
}
