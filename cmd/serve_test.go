package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jocross/leadboard/internal/model"
)

// fakeStore serves a fixed lead list for handler tests. fetchFn, when
// set, replaces the canned FetchAll response.
type fakeStore struct {
	leads    []model.Lead
	fetchErr error
	fetchFn  func(context.Context) ([]model.Lead, error)
}

func (f *fakeStore) FetchAll(ctx context.Context) ([]model.Lead, error) {
	if f.fetchFn != nil {
		return f.fetchFn(ctx)
	}
	return f.leads, f.fetchErr
}

func (f *fakeStore) CountLeads(context.Context) (int, error)         { return len(f.leads), nil }
func (f *fakeStore) DeleteAll(context.Context) error                 { return nil }
func (f *fakeStore) InsertLeads(context.Context, []model.Lead) error { return nil }
func (f *fakeStore) Migrate(context.Context) error                   { return nil }
func (f *fakeStore) Ping(context.Context) error                      { return nil }
func (f *fakeStore) Close() error                                    { return nil }

func serveRequest(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestRouter_Health(t *testing.T) {
	router := newRouter(&fakeStore{})

	rr := serveRequest(t, router, "/health")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRouter_Leads(t *testing.T) {
	router := newRouter(&fakeStore{leads: []model.Lead{
		{Name: "João Silva", Campaign: "Facebook Saúde"},
		{Name: "Ana Costa"},
	}})

	rr := serveRequest(t, router, "/api/leads")

	assert.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Total int          `json:"total"`
		Leads []model.Lead `json:"leads"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
	require.Len(t, body.Leads, 2)
	assert.Equal(t, "João Silva", body.Leads[0].Name)
}

func TestRouter_Dashboard(t *testing.T) {
	now := time.Date(2025, 7, 30, 12, 0, 0, 0, time.UTC)
	st := &fakeStore{leads: []model.Lead{
		{
			Name:      "João Silva",
			Campaign:  "Facebook Saúde",
			HasPlan:   model.PlanYes,
			CreatedAt: time.Date(2025, 7, 29, 14, 0, 0, 0, time.UTC),
		},
		{
			Name:      "Ana Costa",
			Campaign:  "Google Ads",
			HasPlan:   model.PlanNo,
			CreatedAt: time.Date(2025, 7, 28, 9, 0, 0, 0, time.UTC),
		},
	}}

	a := &api{store: st, now: func() time.Time { return now }}

	rr := serveRequest(t, a.routes(), "/api/dashboard")

	assert.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Summary struct {
			TotalLeads     int    `json:"total_leads"`
			ConversionRate string `json:"conversion_rate"`
		} `json:"summary"`
		Hourly  []map[string]any `json:"hourly"`
		Weekday []map[string]any `json:"weekday"`
		Trend   []map[string]any `json:"trend"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Summary.TotalLeads)
	assert.Equal(t, "50.0", body.Summary.ConversionRate)
	assert.Len(t, body.Hourly, 24)
	assert.Len(t, body.Weekday, 7)
	assert.Len(t, body.Trend, 30)
}

func TestRouter_Dashboard_SurvivesClientDisconnect(t *testing.T) {
	// The dashboard fetch is shared across collapsed requests, so the
	// disconnect of the request that started it must not cancel it.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st := &fakeStore{fetchFn: func(ctx context.Context) ([]model.Lead, error) {
		cancel() // client goes away mid-fetch
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []model.Lead{{Name: "Ana Costa"}}, nil
	}}
	a := &api{store: st, now: time.Now}

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil).WithContext(ctx)
	rr := httptest.NewRecorder()
	a.routes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Summary struct {
			TotalLeads int `json:"total_leads"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Summary.TotalLeads)
}

func TestRouter_Filters(t *testing.T) {
	router := newRouter(&fakeStore{leads: []model.Lead{
		{Campaign: "Facebook Saúde", Specialist: "Dr. João Cardiologista"},
		{Campaign: "Google Ads", Specialist: "Dra. Maria Pediatra"},
		{Campaign: "Facebook Saúde"},
	}})

	rr := serveRequest(t, router, "/api/filters")

	assert.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Campaigns   []string `json:"campaigns"`
		Specialists []string `json:"specialists"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, []string{"Facebook Saúde", "Google Ads"}, body.Campaigns)
	assert.Equal(t, []string{"Dr. João Cardiologista", "Dra. Maria Pediatra"}, body.Specialists)
}

func TestRouter_StoreError(t *testing.T) {
	router := newRouter(&fakeStore{fetchErr: errors.New("connection refused")})

	for _, path := range []string{"/api/leads", "/api/dashboard", "/api/filters"} {
		rr := serveRequest(t, router, path)

		assert.Equal(t, http.StatusBadGateway, rr.Code, "path %s", path)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Não foi possível carregar os dados", body["error"], "path %s", path)
	}
}
