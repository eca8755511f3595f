package interceptors

import (
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

// TraceHook tags log entries with the ids of the recompilation span they were logged under. The runner logs
// through WithContext(ctx) with the context of its "recompile" span, so its lines carry the same trace_id and
// span_id as the span printed by the stdout exporter. Entries without a span are left untouched.
type TraceHook struct{}

func (h *TraceHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *TraceHook) Fire(entry *logrus.Entry) error {
	if entry.Context == nil {
		return nil
	}

	sc := trace.SpanContextFromContext(entry.Context)
	if !sc.IsValid() {
		return nil
	}

	entry.Data["trace_id"] = sc.TraceID().String()
	entry.Data["span_id"] = sc.SpanID().String()
	return nil
}
