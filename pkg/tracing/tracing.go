package tracing

import (
	"context"
	"fmt"
	"net/http"

	"go.opencensus.io/plugin/ochttp"
	"go.opencensus.io/trace"

	"github.com/Notifuse/emailbuilder/config"
	"github.com/Notifuse/emailbuilder/pkg/logger"
)

// InitTracing configures sampling and registers the span exporter.
// It returns a function that unregisters the exporter.
func InitTracing(tracingConfig config.TracingConfig, log logger.Logger) (func(), error) {
	if !tracingConfig.Enabled {
		return func() {}, nil
	}

	trace.ApplyConfig(trace.Config{
		DefaultSampler: trace.ProbabilitySampler(tracingConfig.SamplingProbability),
	})

	switch tracingConfig.TraceExporter {
	case "log":
		exporter := NewLogExporter(log.WithField("service", tracingConfig.ServiceName))
		trace.RegisterExporter(exporter)
		log.WithField("sampling", tracingConfig.SamplingProbability).Debug("Tracing enabled with log exporter")
		return func() { trace.UnregisterExporter(exporter) }, nil
	case "none", "":
		return func() {}, nil
	default:
		return nil, fmt.Errorf("unsupported trace exporter: %s", tracingConfig.TraceExporter)
	}
}

// LogExporter writes finished spans to the logger at debug level
type LogExporter struct {
	logger logger.Logger
}

func NewLogExporter(log logger.Logger) *LogExporter {
	return &LogExporter{logger: log}
}

// ExportSpan implements trace.Exporter
func (e *LogExporter) ExportSpan(s *trace.SpanData) {
	fields := map[string]interface{}{
		"span":        s.Name,
		"trace_id":    s.TraceID.String(),
		"duration_ms": s.EndTime.Sub(s.StartTime).Milliseconds(),
	}
	for k, v := range s.Attributes {
		fields[k] = v
	}
	if s.Status.Code != trace.StatusCodeOK {
		fields["status"] = s.Status.Message
	}
	e.logger.WithFields(fields).Debug("span")
}

// GetHTTPOptions returns the ochttp transport used for outbound calls, naming client
// spans after the method and path
func GetHTTPOptions() ochttp.Transport {
	return ochttp.Transport{
		Base: nil,
		FormatSpanName: func(req *http.Request) string {
			return fmt.Sprintf("%s %s", req.Method, req.URL.Path)
		},
	}
}

// StartSpan starts a new span with the given name and returns a context with the span
func StartSpan(ctx context.Context, name string) (context.Context, *trace.Span) {
	return trace.StartSpan(ctx, name)
}
