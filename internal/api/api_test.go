package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/teamalloc/internal/api"
	"github.com/mcoot/teamalloc/internal/api/apierr"
	"github.com/mcoot/teamalloc/internal/api/request"
	"github.com/mcoot/teamalloc/internal/api/response"
	"github.com/mcoot/teamalloc/internal/config"
	"github.com/mcoot/teamalloc/internal/factory"
	"github.com/mcoot/teamalloc/internal/model"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.App
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{Logger: logger, EnableMetrics: true})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		RunController: app.RunController,
		Defaults: config.Config{
			Teams: model.Layout{PrimaryTeams: 2, PrimarySize: 3, SecondaryTeams: 1, SecondarySize: 2},
			Seed:  42,
		},
		Gatherer: app.Registry,
	})

	return &testServer{handler: router, app: app}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	switch b := body.(type) {
	case nil:
		reqBody = bytes.NewBuffer(nil)
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		data, _ := json.Marshal(b)
		reqBody = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// people builds a roster of n people where the first pairCount*2 form pairs
func people(n, pairCount int) []request.Person {
	out := make([]request.Person, 0, n)
	for i := 0; i < pairCount; i++ {
		out = append(out,
			request.Person{ID: fmt.Sprintf("inv%d", i), GuestID: fmt.Sprintf("gst%d", i), Division: "Ops"},
			request.Person{ID: fmt.Sprintf("gst%d", i), Division: "Ops"},
		)
	}
	for i := 0; len(out) < n; i++ {
		out = append(out, request.Person{ID: fmt.Sprintf("p%d", i), Division: []string{"RH", "IT", ""}[i%3], Compagnon: i%2 == 0})
	}
	return out
}

func withUnknownGuest(people []request.Person) []request.Person {
	people[0].GuestID = "nobody"
	return people
}

func (ts *testServer) createRun(t *testing.T, body request.CreateAllocationRequest) response.Run {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/allocations", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var run response.Run
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &run))
	assert.Equal(t, "/api/v1/allocations/"+run.ID, rr.Header().Get("Location"))
	return run
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestCreateAllocationWithDefaults(t *testing.T) {
	ts := newTestServer(t)

	run := ts.createRun(t, request.CreateAllocationRequest{People: people(8, 2)})

	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "complete", run.Status)
	assert.Equal(t, uint64(42), run.Seed)
	assert.True(t, run.Valid)
	assert.Empty(t, run.Violations)
	require.Len(t, run.Teams, 3)
	assert.Equal(t, "Team_01", run.Teams[0].Label)
	assert.Equal(t, 3, run.Teams[0].Capacity)
	assert.Equal(t, 2, run.Teams[2].Capacity)
	assert.Len(t, run.Teams[2].Members, 2)
	require.Len(t, run.Stats, 3)
	assert.Equal(t, "Team_03", run.Stats[2].Team)

	// pairs stay together
	teamOf := map[string]string{}
	for _, team := range run.Teams {
		for _, id := range team.Members {
			teamOf[id] = team.Label
		}
	}
	assert.Equal(t, teamOf["inv0"], teamOf["gst0"])
	assert.Equal(t, teamOf["inv1"], teamOf["gst1"])
}

func TestCreateAllocationWithLayoutAndSeed(t *testing.T) {
	ts := newTestServer(t)
	seed := uint64(7)

	run := ts.createRun(t, request.CreateAllocationRequest{
		People: people(6, 1),
		Layout: &model.Layout{PrimaryTeams: 2, PrimarySize: 3},
		Seed:   &seed,
	})

	assert.Equal(t, uint64(7), run.Seed)
	assert.Len(t, run.Teams, 2)
	assert.Equal(t, 2, run.Layout.PrimaryTeams)
}

func TestCreateAllocationSameSeedSameTeams(t *testing.T) {
	ts := newTestServer(t)
	body := request.CreateAllocationRequest{People: people(8, 1)}

	first := ts.createRun(t, body)
	second := ts.createRun(t, body)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, first.Teams, second.Teams)
}

func TestCreateAllocationErrors(t *testing.T) {
	ts := newTestServer(t)

	cases := []struct {
		name   string
		body   any
		status int
		code   string
	}{
		{"malformed body", "{not json", http.StatusBadRequest, apierr.CodeInvalidRequest},
		{"no people", request.CreateAllocationRequest{}, http.StatusBadRequest, apierr.CodeInvalidRequest},
		{"duplicate person", request.CreateAllocationRequest{People: []request.Person{{ID: "a"}, {ID: "a"}}}, http.StatusBadRequest, apierr.CodeInvalidRoster},
		{"unknown guest", request.CreateAllocationRequest{People: withUnknownGuest(people(8, 0))}, http.StatusBadRequest, apierr.CodeInvalidRoster},
		{"capacity mismatch", request.CreateAllocationRequest{People: people(5, 0)}, http.StatusUnprocessableEntity, apierr.CodeCapacityMismatch},
		{"invalid layout", request.CreateAllocationRequest{People: people(8, 0), Layout: &model.Layout{}}, http.StatusBadRequest, apierr.CodeInvalidRequest},
		{"oversized layout", request.CreateAllocationRequest{People: people(1, 0), Layout: &model.Layout{PrimaryTeams: 1 << 62, PrimarySize: 4, SecondaryTeams: 1, SecondarySize: 1}}, http.StatusBadRequest, apierr.CodeInvalidRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := ts.request(http.MethodPost, "/api/v1/allocations", tc.body)
			assert.Equal(t, tc.status, rr.Code)
			assert.Equal(t, tc.code, errorCode(t, rr))
		})
	}
}

func TestGetListDeleteAllocation(t *testing.T) {
	ts := newTestServer(t)
	created := ts.createRun(t, request.CreateAllocationRequest{People: people(8, 2)})

	// Get
	rr := ts.request(http.MethodGet, "/api/v1/allocations/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var got response.Run
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, created.Teams, got.Teams)

	// List
	rr = ts.request(http.MethodGet, "/api/v1/allocations", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list response.RunList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list.Runs, 1)
	assert.Equal(t, created.ID, list.Runs[0].ID)
	assert.Equal(t, 8, list.Runs[0].People)
	assert.Equal(t, 3, list.Runs[0].Teams)

	// Delete
	rr = ts.request(http.MethodDelete, "/api/v1/allocations/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/allocations/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeRunNotFound, errorCode(t, rr))

	rr = ts.request(http.MethodDelete, "/api/v1/allocations/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListAllocationsLimit(t *testing.T) {
	ts := newTestServer(t)
	for i := 0; i < 3; i++ {
		ts.createRun(t, request.CreateAllocationRequest{People: people(8, 1)})
	}

	rr := ts.request(http.MethodGet, "/api/v1/allocations?limit=2", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var list response.RunList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Len(t, list.Runs, 2)

	rr = ts.request(http.MethodGet, "/api/v1/allocations?limit=zero", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.createRun(t, request.CreateAllocationRequest{People: people(8, 2)})
	ts.request(http.MethodPost, "/api/v1/allocations", request.CreateAllocationRequest{People: people(5, 0)})

	rr := ts.request(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `teamalloc_runs_total{status="complete"} 1`)
	assert.Contains(t, rr.Body.String(), `teamalloc_run_failures_total{reason="capacity_mismatch"} 1`)
}
