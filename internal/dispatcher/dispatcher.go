package dispatcher

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"goyo/internal/bootstrap/logging"
	domain "goyo/internal/domain/wellbeing"
	"goyo/internal/errs"
	"goyo/internal/ports"
	"goyo/internal/usecase/wellbeing"
)

// Dispatcher serves the flat operation namespace: POST /api/{operation}
// with a JSON args object, JSON result or {"error": ...} back.
type Dispatcher struct {
	svc      *wellbeing.Service
	handlers map[string]handlerFunc
}

type handlerFunc func(r *http.Request, args json.RawMessage) (any, error)

func New(svc *wellbeing.Service) *Dispatcher {
	d := &Dispatcher{svc: svc}
	d.handlers = map[string]handlerFunc{
		"getWorkers":          d.getWorkers,
		"getWorkerDetail":     d.getWorkerDetail,
		"addWorker":           d.addWorker,
		"updateWorker":        d.updateWorker,
		"deleteWorker":        d.deleteWorker,
		"searchWorkers":       d.searchWorkers,
		"filterWorkers":       d.filterWorkers,
		"getWorkerRiskStatus": d.getWorkerRiskStatus,

		"appendEmotionLog":     d.appendEmotionLog,
		"getEmotionLogs":       d.getEmotionLogs,
		"getRecentEmotionLogs": d.getRecentEmotionLogs,

		"listAlerts":       d.listAlerts,
		"getAlertDetail":   d.getAlertDetail,
		"acknowledgeAlert": d.acknowledgeAlert,
		"resolveAlert":     d.resolveAlert,
		"getAlertStats":    d.getAlertStats,

		"getInterventions":         d.getInterventions,
		"createIntervention":       d.createIntervention,
		"updateInterventionStatus": d.updateInterventionStatus,

		"getCounselors":           d.getCounselors,
		"addCounselor":            d.addCounselor,
		"updateCounselor":         d.updateCounselor,
		"autoLinkCounseling":      d.autoLinkCounseling,
		"createCounselingSession": d.createCounselingSession,
		"getCounselingSessions":   d.getCounselingSessions,
		"updateSessionStatus":     d.updateSessionStatus,
		"getCounselingStats":      d.getCounselingStats,
		"getCounselingHistory":    d.getCounselingHistory,
		"addCounselingHistory":    d.addCounselingHistory,

		"getDashboardStats": d.getDashboardStats,
		"getAnalyticsData":  d.getAnalyticsData,
		"generateReport":    d.generateReport,
		"getReports":        d.getReports,
	}
	return d
}

func (d *Dispatcher) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Post("/api/{operation}", d.dispatch)
	return router
}

func (d *Dispatcher) dispatch(w http.ResponseWriter, r *http.Request) {
	operation := chi.URLParam(r, "operation")

	handler, ok := d.handlers[operation]
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown operation: "+operation)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "read request body failed")
		return
	}
	args := json.RawMessage(body)
	if len(body) == 0 {
		args = json.RawMessage("{}")
	}

	result, err := handler(r, args)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			logging.Error(
				logging.WithAttrs(r.Context(), slog.String("component", "dispatcher"), slog.String("operation", operation)),
				"operation failed",
				slog.Any("err", errs.Loggable(err)),
			)
		}
		writeError(w, r, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// statusForError maps the error taxonomy onto HTTP statuses: missing
// records 404, validation failures 400, state conflicts and lost capacity
// races 409, everything else 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNoCounselorAvailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, _ *http.Request, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func decodeArgs(args json.RawMessage, target any) error {
	if err := json.Unmarshal(args, target); err != nil {
		return errs.Wrap(domain.ErrValidation, "invalid arguments: "+err.Error())
	}
	return nil
}
