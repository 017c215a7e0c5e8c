package http

import (
	"net/http"

	"github.com/MKhiriev/dashcam-catalog/internal/utils"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader = "X-Trace-ID"

	maxTraceIDLength = 128
)

// withTraceID attaches a request-scoped logger carrying trace_id and echoes
// the id in the response. A caller supplied id is kept when it is short
// printable ASCII, otherwise a fresh one is generated.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !validTraceID(traceID) {
			traceID = utils.NewTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}
	return true
}
