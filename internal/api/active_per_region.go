package api

import (
	"net/http"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db/model"
)

func (s *Server) handleSetActivePerRegion(w http.ResponseWriter, r *http.Request) {
	counters, ok := decode[model.ActivePerRegion](w, r)
	if !ok {
		return
	}

	if err := s.service.SetActivePerRegion(r.Context(), counters); err != nil {
		writeInternalError(w, r, err)
		return
	}

	writeAccepted(w)
}

func (s *Server) handleGetActivePerRegion(w http.ResponseWriter, r *http.Request) {
	counters, err := s.service.GetActivePerRegion(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, counters)
}
