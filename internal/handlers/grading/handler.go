package grading

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/AlejoTorres2001/checker/internal/core/ports/primary"
	"github.com/AlejoTorres2001/checker/internal/core/services/batch"
	"github.com/AlejoTorres2001/checker/internal/domain"
	"github.com/AlejoTorres2001/checker/internal/handlers/response"
)

// GradingHandler handles grading API requests. Runs execute strictly one at
// a time: the symbol binding and interpreter work per submission is
// sequential by contract, so concurrent run requests queue on the mutex.
type GradingHandler struct {
	batchService batch.IBatchService
	logger       primary.Logger

	mu   sync.Mutex
	runs map[uuid.UUID]*domain.BatchReport
}

// NewGradingHandler creates a new grading handler
func NewGradingHandler(batchService batch.IBatchService, logger primary.Logger) *GradingHandler {
	return &GradingHandler{
		batchService: batchService,
		logger:       logger,
		runs:         make(map[uuid.UUID]*domain.BatchReport),
	}
}

// RegisterRoutes registers the API routes for GradingHandler
func (h *GradingHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/runs", h.CreateRun).Methods("POST")
	router.HandleFunc("/api/runs", h.ListRuns).Methods("GET")
	router.HandleFunc("/api/runs/{runId}", h.GetRun).Methods("GET")
}

type createRunResponse struct {
	RunID    uuid.UUID `json:"runId"`
	Students []string  `json:"students"`
}

type runSummary struct {
	RunID       uuid.UUID `json:"runId"`
	GeneratedAt string    `json:"generatedAt"`
	Students    int       `json:"students"`
}

// CreateRun executes a full batch run and stores the report in memory.
func (h *GradingHandler) CreateRun(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	report, err := h.batchService.RunBatch(r.Context())
	if err != nil {
		h.logger.Error("Failed to run batch", "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    err.Error(),
			StatusCode: http.StatusUnprocessableEntity,
		})
		return
	}

	h.runs[report.RunID] = report
	response.WriteCreated(w, createRunResponse{
		RunID:    report.RunID,
		Students: report.Students,
	})
}

// ListRuns returns a summary of every stored run.
func (h *GradingHandler) ListRuns(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	summaries := make([]runSummary, 0, len(h.runs))
	for _, report := range h.runs {
		summaries = append(summaries, runSummary{
			RunID:       report.RunID,
			GeneratedAt: report.GeneratedAt.Format(time.RFC3339),
			Students:    len(report.Students),
		})
	}
	response.WriteSuccess(w, summaries)
}

// GetRun returns the full batch report of one run.
func (h *GradingHandler) GetRun(w http.ResponseWriter, r *http.Request) {
	runID, err := uuid.Parse(mux.Vars(r)["runId"])
	if err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    "invalid run id",
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	h.mu.Lock()
	report, ok := h.runs[runID]
	h.mu.Unlock()
	if !ok {
		response.WriteError(w, response.ErrorMessage{
			Message:    "run not found",
			StatusCode: http.StatusNotFound,
		})
		return
	}

	response.WriteSuccess(w, report)
}
