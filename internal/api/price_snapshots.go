package api

import (
	"net/http"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db/model"
)

func (s *Server) handleUpsertPriceSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := decode[model.PriceSnapshot](w, r)
	if !ok {
		return
	}

	if err := s.service.UpsertPriceSnapshot(r.Context(), snapshot); err != nil {
		writeInternalError(w, r, err)
		return
	}

	writeAccepted(w)
}

type deletePriceSnapshotsRequest struct {
	Timestamps []uint64 `json:"timestamps"`
}

func (s *Server) handleDeletePriceSnapshots(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[deletePriceSnapshotsRequest](w, r)
	if !ok {
		return
	}

	if err := s.service.DeletePriceSnapshots(r.Context(), req.Timestamps); err != nil {
		writeInternalError(w, r, err)
		return
	}

	writeAccepted(w)
}

func (s *Server) handleGetPriceSnapshots(w http.ResponseWriter, r *http.Request) {
	snapshots, err := s.service.GetPriceSnapshots(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	if snapshots == nil {
		snapshots = []*model.PriceSnapshot{}
	}

	writeJSON(w, http.StatusOK, snapshots)
}

func (s *Server) handleGetLatestPriceSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.service.GetLatestPriceSnapshot(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}
