package api

import (
	"net/http"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db/model"
)

func (s *Server) handleUpsertStorageProviders(w http.ResponseWriter, r *http.Request) {
	providers, ok := decode[[]*model.StorageProvider](w, r)
	if !ok {
		return
	}

	if err := s.service.UpsertStorageProviders(r.Context(), *providers); err != nil {
		writeInternalError(w, r, err)
		return
	}

	writeAccepted(w)
}

type deleteStorageProvidersRequest struct {
	Ids []string `json:"ids"`
}

func (s *Server) handleDeleteStorageProviders(w http.ResponseWriter, r *http.Request) {
	req, ok := decode[deleteStorageProvidersRequest](w, r)
	if !ok {
		return
	}

	if err := s.service.DeleteStorageProviders(r.Context(), req.Ids); err != nil {
		writeInternalError(w, r, err)
		return
	}

	writeAccepted(w)
}

func (s *Server) handleGetStorageProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := s.service.GetStorageProviders(r.Context())
	if err != nil {
		writeInternalError(w, r, err)
		return
	}
	if providers == nil {
		providers = []*model.StorageProvider{}
	}

	writeJSON(w, http.StatusOK, providers)
}
