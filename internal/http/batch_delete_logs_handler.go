package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"log-admin-probe/internal/models"
	"log-admin-probe/internal/shared/loggers"
	"log-admin-probe/internal/shared/svcerrors"
	"log-admin-probe/internal/stores"
)

type batchDeleteResponse struct {
	Success      bool   `json:"success"`
	DeletedCount int64  `json:"deleted_count"`
	Message      string `json:"message"`
}

type batchDeleteLogsHandler struct {
	store  stores.RequestLogStore
	faults Faults
}

func NewBatchDeleteLogsHandler(store stores.RequestLogStore, faults Faults) AppHttpHandler {
	return &batchDeleteLogsHandler{store: store, faults: faults}
}

// Handle processes DELETE /admin/logs/batch with a {"ids":[...]} body of integer ids.
func (h *batchDeleteLogsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	if handled, err := h.faults.apply(w, RouteBatchDelete); handled {
		return err
	}

	ids, err := decodeDeleteIDs(r)
	if err != nil {
		return err
	}

	deleted, err := h.store.DeleteByIDs(r.Context(), ids)
	if err != nil {
		return svcerrors.NewInternalError(errorCodeStoreFailure, err)
	}

	loggers.Ctx(r.Context()).Info().
		Ints64("ids", ids).
		Int64("deleted_count", deleted).
		Msg("logs deleted")

	writeJSON(w, http.StatusOK, batchDeleteResponse{
		Success:      true,
		DeletedCount: deleted,
		Message:      fmt.Sprintf("deleted %d logs", deleted),
	})
	return nil
}

func decodeDeleteIDs(r *http.Request) ([]int64, error) {
	var req models.DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, svcerrors.NewInvalidArgumentError(errorCodeInvalidDeleteBody, "Invalid request: "+err.Error(), err)
	}
	if len(req.IDs) == 0 {
		return nil, svcerrors.NewInvalidArgumentError(errorCodeEmptyIDs, "ids cannot be empty", nil)
	}

	ids := make([]int64, 0, len(req.IDs))
	for _, id := range req.IDs {
		n, err := id.Int64()
		if err != nil {
			return nil, svcerrors.NewInvalidArgumentError(errorCodeInvalidDeleteBody,
				fmt.Sprintf("Invalid request: id %s is not an integer", id), err)
		}
		ids = append(ids, n)
	}
	return ids, nil
}
