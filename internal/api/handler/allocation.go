package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/teamalloc/internal/api/request"
	"github.com/mcoot/teamalloc/internal/api/response"
	"github.com/mcoot/teamalloc/internal/config"
	"github.com/mcoot/teamalloc/internal/model"
	"github.com/mcoot/teamalloc/internal/services/runs"
)

// List limits
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// AllocationHandler handles allocation run endpoints
type AllocationHandler struct {
	runController *runs.Controller
	defaults      config.Config
}

// NewAllocationHandler creates a new allocation handler. defaults supplies
// the layout and seed when a request leaves them out.
func NewAllocationHandler(runController *runs.Controller, defaults config.Config) *AllocationHandler {
	return &AllocationHandler{
		runController: runController,
		defaults:      defaults,
	}
}

// Create handles POST /api/v1/allocations
func (h *AllocationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateAllocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}
	if len(req.People) == 0 {
		WriteError(w, NewInvalidRequestError("people is required"))
		return
	}

	cfg := h.defaults
	if req.Layout != nil {
		cfg.Teams = *req.Layout
	}
	if req.Seed != nil {
		cfg.Seed = *req.Seed
	}

	roster, err := model.NewRoster(req.ToPeople())
	if err != nil {
		WriteError(w, err)
		return
	}

	run, err := h.runController.Run(r.Context(), roster, cfg)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Created(w, "/api/v1/allocations/"+string(run.ID), response.RunFromModel(run))
}

// List handles GET /api/v1/allocations
func (h *AllocationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := DefaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			WriteError(w, NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = min(n, MaxListLimit)
	}

	list, err := h.runController.ListRuns(r.Context(), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	summaries := make([]response.RunSummary, len(list))
	for i, run := range list {
		summaries[i] = response.RunSummaryFromModel(run)
	}
	response.JSON(w, http.StatusOK, response.RunList{Runs: summaries})
}

// Get handles GET /api/v1/allocations/{id}
func (h *AllocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.RunID(mux.Vars(r)["id"])

	run, err := h.runController.GetRun(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RunFromModel(run))
}

// Delete handles DELETE /api/v1/allocations/{id}
func (h *AllocationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.RunID(mux.Vars(r)["id"])

	if err := h.runController.DeleteRun(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
