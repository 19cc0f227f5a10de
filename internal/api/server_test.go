package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/auth"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/config"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/db/model"
)

// stubRegistry records the calls the handlers make and serves canned
// data for the read operations.
type stubRegistry struct {
	providers []*model.StorageProvider
	snapshots []*model.PriceSnapshot
	latest    *model.PriceSnapshot
	counters  *model.ActivePerRegion
	err       error

	lastAccount       string
	upsertedProviders []*model.StorageProvider
	deletedIds        []string
	upsertedSnapshot  *model.PriceSnapshot
	deletedTimestamps []uint64
	setCounters       *model.ActivePerRegion
}

func (s *stubRegistry) Ping(_ context.Context) error {
	return s.err
}

func (s *stubRegistry) InitRegistry(ctx context.Context) error {
	s.lastAccount = auth.Account(ctx)
	return s.err
}

func (s *stubRegistry) UpsertStorageProviders(ctx context.Context, providers []*model.StorageProvider) error {
	s.lastAccount = auth.Account(ctx)
	s.upsertedProviders = providers
	return s.err
}

func (s *stubRegistry) DeleteStorageProviders(ctx context.Context, ids []string) error {
	s.lastAccount = auth.Account(ctx)
	s.deletedIds = ids
	return s.err
}

func (s *stubRegistry) GetStorageProviders(_ context.Context) ([]*model.StorageProvider, error) {
	return s.providers, s.err
}

func (s *stubRegistry) UpsertPriceSnapshot(ctx context.Context, snapshot *model.PriceSnapshot) error {
	s.lastAccount = auth.Account(ctx)
	s.upsertedSnapshot = snapshot
	return s.err
}

func (s *stubRegistry) DeletePriceSnapshots(ctx context.Context, timestamps []uint64) error {
	s.lastAccount = auth.Account(ctx)
	s.deletedTimestamps = timestamps
	return s.err
}

func (s *stubRegistry) GetPriceSnapshots(_ context.Context) ([]*model.PriceSnapshot, error) {
	return s.snapshots, s.err
}

func (s *stubRegistry) GetLatestPriceSnapshot(_ context.Context) (*model.PriceSnapshot, error) {
	return s.latest, s.err
}

func (s *stubRegistry) SetActivePerRegion(ctx context.Context, counters *model.ActivePerRegion) error {
	s.lastAccount = auth.Account(ctx)
	s.setCounters = counters
	return s.err
}

func (s *stubRegistry) GetActivePerRegion(_ context.Context) (*model.ActivePerRegion, error) {
	return s.counters, s.err
}

func setupTestServer(t *testing.T, registry *stubRegistry) *httptest.Server {
	cfg := &config.Config{
		Api: config.ApiConfig{Host: "127.0.0.1", Port: 8080},
	}
	ts := httptest.NewServer(New(cfg, registry).router())
	t.Cleanup(ts.Close)

	return ts
}

func sendRequest(t *testing.T, ts *httptest.Server, method, path, account string, body any) *http.Response {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if account != "" {
		req.Header.Set(accountHeader, account)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() {
		resp.Body.Close()
	})

	return resp
}

func TestUpsertStorageProviders(t *testing.T) {
	registry := &stubRegistry{}
	ts := setupTestServer(t, registry)

	providers := []*model.StorageProvider{
		{ID: "f01001", Region: "europe", Power: "1000", Price: "20", PriceFIL: "4"},
	}
	resp := sendRequest(t, ts, http.MethodPut, "/v1/storage-providers", "filmarket.near", providers)

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "filmarket.near", registry.lastAccount)
	assert.Equal(t, providers, registry.upsertedProviders)

	var accepted acceptedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&accepted))
	assert.Equal(t, "accepted", accepted.Result)
}

func TestUpsertStorageProviders_MalformedBody(t *testing.T) {
	registry := &stubRegistry{}
	ts := setupTestServer(t, registry)

	req, err := http.NewRequest(http.MethodPut, ts.URL+"/v1/storage-providers", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, registry.upsertedProviders)
}

func TestDeleteStorageProviders(t *testing.T) {
	registry := &stubRegistry{}
	ts := setupTestServer(t, registry)

	body := map[string]any{"ids": []string{"f01001", "f01002"}}
	resp := sendRequest(t, ts, http.MethodPost, "/v1/storage-providers/delete", "filmarket.near", body)

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, []string{"f01001", "f01002"}, registry.deletedIds)
}

func TestGetStorageProviders(t *testing.T) {
	registry := &stubRegistry{
		providers: []*model.StorageProvider{
			{ID: "f01001", Region: "europe", Power: "1000", Price: "20", PriceFIL: "4"},
			{ID: "f01002", Region: "asia", Power: "3000", Price: "18", PriceFIL: "3"},
		},
	}
	ts := setupTestServer(t, registry)

	resp := sendRequest(t, ts, http.MethodGet, "/v1/storage-providers", "", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var providers []*model.StorageProvider
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&providers))
	assert.Equal(t, registry.providers, providers)
}

func TestGetStorageProviders_Empty(t *testing.T) {
	registry := &stubRegistry{}
	ts := setupTestServer(t, registry)

	resp := sendRequest(t, ts, http.MethodGet, "/v1/storage-providers", "", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(body))
}

func TestUpsertPriceSnapshot(t *testing.T) {
	registry := &stubRegistry{}
	ts := setupTestServer(t, registry)

	snapshot := &model.PriceSnapshot{
		Timestamp:    1700000000,
		Europe:       "20",
		Asia:         "18",
		NorthAmerica: "22",
		Other:        "25",
		GlobalPrice:  "21",
		FilUSD:       "4.12",
		TotalPower:   "6500",
	}
	resp := sendRequest(t, ts, http.MethodPut, "/v1/price-snapshots", "filmarket.near", snapshot)

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, snapshot, registry.upsertedSnapshot)
}

func TestDeletePriceSnapshots(t *testing.T) {
	registry := &stubRegistry{}
	ts := setupTestServer(t, registry)

	body := map[string]any{"timestamps": []uint64{100, 200}}
	resp := sendRequest(t, ts, http.MethodPost, "/v1/price-snapshots/delete", "filmarket.near", body)

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, []uint64{100, 200}, registry.deletedTimestamps)
}

func TestGetLatestPriceSnapshot(t *testing.T) {
	registry := &stubRegistry{
		latest: &model.PriceSnapshot{Timestamp: 1700000000, GlobalPrice: "21", FilUSD: "4.12"},
	}
	ts := setupTestServer(t, registry)

	resp := sendRequest(t, ts, http.MethodGet, "/v1/price-snapshots/latest", "", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var snapshot model.PriceSnapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snapshot))
	assert.Equal(t, *registry.latest, snapshot)
}

func TestSetActivePerRegion(t *testing.T) {
	registry := &stubRegistry{}
	ts := setupTestServer(t, registry)

	counters := &model.ActivePerRegion{Europe: 10, Asia: 7, NorthAmerica: 3, Other: 1}
	resp := sendRequest(t, ts, http.MethodPut, "/v1/active-per-region", "filmarket.near", counters)

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, counters, registry.setCounters)
}

func TestGetActivePerRegion(t *testing.T) {
	registry := &stubRegistry{
		counters: &model.ActivePerRegion{Europe: 10},
	}
	ts := setupTestServer(t, registry)

	resp := sendRequest(t, ts, http.MethodGet, "/v1/active-per-region", "", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var counters model.ActivePerRegion
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&counters))
	assert.Equal(t, *registry.counters, counters)
}

func TestAnonymousCaller(t *testing.T) {
	registry := &stubRegistry{}
	ts := setupTestServer(t, registry)

	// no X-Account-Id header, the service sees the empty account
	resp := sendRequest(t, ts, http.MethodPut, "/v1/active-per-region", "", &model.ActivePerRegion{})

	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Empty(t, registry.lastAccount)
}

func TestInternalError(t *testing.T) {
	registry := &stubRegistry{err: fmt.Errorf("mongo is down")}
	ts := setupTestServer(t, registry)

	resp := sendRequest(t, ts, http.MethodGet, "/v1/storage-providers", "", nil)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestHealthcheck(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ts := setupTestServer(t, &stubRegistry{})

		resp := sendRequest(t, ts, http.MethodGet, "/healthz", "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("db not ready", func(t *testing.T) {
		ts := setupTestServer(t, &stubRegistry{err: fmt.Errorf("no reachable servers")})

		resp := sendRequest(t, ts, http.MethodGet, "/healthz", "", nil)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})
}
