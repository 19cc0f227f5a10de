package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

type acceptedResponse struct {
	Result string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("Failed to write response")
	}
}

// writeAccepted acknowledges a mutation. Mutations skipped because the
// caller is not the owner get the same response as applied ones.
func writeAccepted(w http.ResponseWriter) {
	writeJSON(w, http.StatusAccepted, acceptedResponse{Result: "accepted"})
}

func writeBadRequest(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
}

func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	log.Ctx(r.Context()).Error().Err(err).Msg("Request failed")
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

// decode unmarshals the request body into T, answering 400 on malformed
// JSON. Values inside the body are not validated.
func decode[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var payload T
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeBadRequest(w)
		return nil, false
	}

	return &payload, true
}
