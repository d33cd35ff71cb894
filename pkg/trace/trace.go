package trace

import (
	"net/http"

	"go.uber.org/zap"
)

const (
	HeaderRequestID = "x-request-id"
	HeaderTraceID   = "x-b3-traceid"
	HeaderSpanID    = "x-b3-spanid"
)

// PropagatedHeaders lists the request headers forwarded to upstream services
// so that the mesh can stitch spans together.
var PropagatedHeaders = []string{
	HeaderRequestID,
	HeaderTraceID,
	HeaderSpanID,
	"x-b3-sampled",
	"x-b3-flags",
	"x-ot-span-context",
	"x-datadog-trace-id",
	"x-datadog-parent-id",
	"x-datadog-sampled",
	"end-user",
	"user-agent",
}

// Propagate copies the named headers present in src onto dst, values untouched.
func Propagate(dst, src http.Header, names []string) {
	for _, name := range names {
		values := src.Values(name)
		if len(values) == 0 {
			continue
		}
		dst[http.CanonicalHeaderKey(name)] = append([]string(nil), values...)
	}
}

func Fields(h http.Header) []zap.Field {
	return []zap.Field{
		zap.String("trace_id", h.Get(HeaderTraceID)),
		zap.String("span_id", h.Get(HeaderSpanID)),
	}
}

// Logger returns log correlated with the trace carried by h.
func Logger(log *zap.Logger, h http.Header) *zap.Logger {
	return log.With(Fields(h)...)
}
