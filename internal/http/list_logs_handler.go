package http

import (
	"net/http"
	"strconv"

	"log-admin-probe/internal/models"
	"log-admin-probe/internal/shared/loggers"
	"log-admin-probe/internal/shared/svcerrors"
	"log-admin-probe/internal/stores"
)

const (
	defaultListLimit  = 50
	defaultListOffset = 0
)

type listLogsResponse struct {
	Success    bool                 `json:"success"`
	Logs       []*models.RequestLog `json:"logs"`
	TotalCount int64                `json:"total_count"`
}

type listLogsHandler struct {
	store  stores.RequestLogStore
	faults Faults
}

func NewListLogsHandler(store stores.RequestLogStore, faults Faults) AppHttpHandler {
	return &listLogsHandler{store: store, faults: faults}
}

// Handle processes GET /admin/logs. Invalid limit or offset values fall back to the defaults.
func (h *listLogsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if handled, err := h.faults.apply(w, RouteListLogs); handled {
		return err
	}

	limit := queryInt(r, "limit", defaultListLimit, 1)
	offset := queryInt(r, "offset", defaultListOffset, 0)

	logs, total, err := h.store.List(r.Context(), limit, offset)
	if err != nil {
		return svcerrors.NewInternalError(errorCodeStoreFailure, err)
	}

	loggers.Ctx(r.Context()).Debug().
		Int(loggers.FieldLogCount, len(logs)).
		Int64("total_count", total).
		Msg("logs listed")

	writeJSON(w, http.StatusOK, listLogsResponse{Success: true, Logs: logs, TotalCount: total})
	return nil
}

// queryInt parses an integer query parameter, returning def when it is missing, invalid or below lowest.
func queryInt(r *http.Request, name string, def, lowest int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < lowest {
		return def
	}
	return n
}
