package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-basketball/internal/platform/logging"
)

type RouterConfig struct {
	CORSAllowedOrigins []string
	ServiceKey         string
	// MetricsHandler serves GET /metrics when set.
	MetricsHandler http.Handler
	Metrics        *HTTPMetrics
}

type routes struct {
	mux     *http.ServeMux
	metrics *HTTPMetrics
}

func (rt routes) handle(pattern string, handler http.Handler) {
	rt.mux.Handle(pattern, rt.metrics.Instrument(pattern, handler))
}

func (rt routes) handleFunc(pattern string, handler http.HandlerFunc) {
	rt.handle(pattern, handler)
}

func NewRouter(
	handler *Handler,
	edge *EdgeHandler,
	verifier TokenVerifier,
	logger *logging.Logger,
	cfg RouterConfig,
) http.Handler {
	logger = logging.OrDefault(logger)

	rt := routes{mux: http.NewServeMux(), metrics: cfg.Metrics}
	registerSystemRoutes(rt, handler, cfg.MetricsHandler)
	registerPublicRoutes(rt, handler)
	registerAuthorizedRoutes(rt, handler, verifier)
	if edge != nil {
		registerEdgeRoutes(rt, edge, verifier, cfg.ServiceKey)
	}

	return RequestTracing(RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, rt.mux))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				if isEdgePath(r.URL.Path) {
					writeEdgeJSON(ctx, w, http.StatusInternalServerError, edgeErrorBody{Error: "internal server error"})
					return
				}
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
