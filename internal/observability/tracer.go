package observability

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope used by every module.
const TracerName = "github.com/Black-And-White-Club/pinned-scores"

// Tracer returns the tracer from the global provider. Without an SDK
// registered the global provider is a no-op.
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}
