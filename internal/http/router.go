package http

import (
	"net/http"

	"log-admin-probe/internal/shared/loggers"
	"log-admin-probe/internal/shared/metrics"
	"log-admin-probe/internal/stores"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates the router of the in-memory admin API.
func NewRouter(store stores.RequestLogStore, faults Faults, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	listLogsHandler := NewListLogsHandler(store, faults)
	batchDeleteLogsHandler := NewBatchDeleteLogsHandler(store, faults)
	exportLogsHandler := NewExportLogsHandler(store, faults)

	router.Route("/admin/logs", func(r chi.Router) {
		r.Get("/", errorHandlingAdapter(listLogsHandler))
		r.Delete("/batch", errorHandlingAdapter(batchDeleteLogsHandler))
		r.Get("/export", errorHandlingAdapter(exportLogsHandler))
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
