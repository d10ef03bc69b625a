package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/copperline/budgeteer/internal/service"
)

// ownerHeader carries the authenticated user's id, injected by the auth
// proxy sitting in front of this service.
const ownerHeader = "X-User-ID"

type errorBody struct {
	Error struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Server) ownerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	owner := strings.TrimSpace(r.Header.Get(ownerHeader))
	if owner == "" {
		s.writeErrorStatus(w, http.StatusUnauthorized, "UNAUTHENTICATED", "missing "+ownerHeader+" header")
		return "", false
	}
	return owner, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// A nil body encodes as JSON null, the "no budget for this month" shape.
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

// writeError maps the service error taxonomy onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	kind := service.KindOf(err)
	status := http.StatusInternalServerError
	switch kind {
	case service.KindInvalidFormat:
		status = http.StatusBadRequest
	case service.KindNotFound:
		status = http.StatusNotFound
	case service.KindConflict:
		status = http.StatusConflict
	case service.KindStoreUnavailable:
		status = http.StatusServiceUnavailable
	}

	message := "internal error"
	var se *service.Error
	if errors.As(err, &se) {
		message = se.Message
	}
	if status == http.StatusServiceUnavailable {
		s.logger.Error("store failure", "error", err)
		message = "storage temporarily unavailable"
	}
	s.writeErrorStatus(w, status, string(kind), message)
}

func (s *Server) writeErrorStatus(w http.ResponseWriter, status int, kind, message string) {
	var body errorBody
	body.Error.Kind = kind
	body.Error.Message = message
	s.writeJSON(w, status, body)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, into any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(into); err != nil {
		s.writeErrorStatus(w, http.StatusBadRequest, string(service.KindInvalidFormat), "malformed request body")
		return false
	}
	return true
}
