package tracing

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opencensus.io/trace"
)

// DefaultClientTimeout applies when WrapHTTPClient is given no client
const DefaultClientTimeout = 15 * time.Second

// StartServiceSpan starts a span named "<service>.<method>"
func StartServiceSpan(ctx context.Context, serviceName, methodName string) (context.Context, *trace.Span) {
	return trace.StartSpan(ctx, fmt.Sprintf("%s.%s", serviceName, methodName))
}

// EndSpan ends a span, recording err as its status
func EndSpan(span *trace.Span, err error) {
	if err != nil {
		span.SetStatus(trace.Status{
			Code:    trace.StatusCodeUnknown,
			Message: err.Error(),
		})
	}
	span.End()
}

// TraceMethod runs f inside a service span
func TraceMethod(ctx context.Context, serviceName, methodName string, f func(context.Context) error) error {
	_, err := TraceMethodWithResult(ctx, serviceName, methodName, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, f(ctx)
	})
	return err
}

// TraceMethodWithResult runs f inside a service span and returns its result
func TraceMethodWithResult[T any](
	ctx context.Context,
	serviceName,
	methodName string,
	f func(context.Context) (T, error),
) (T, error) {
	ctx, span := StartServiceSpan(ctx, serviceName, methodName)
	result, err := f(ctx)
	EndSpan(span, err)
	return result, err
}

// AddAttribute adds an attribute to the span in ctx, if any
func AddAttribute(ctx context.Context, key string, value interface{}) {
	span := trace.FromContext(ctx)
	if span == nil {
		return
	}

	switch v := value.(type) {
	case string:
		span.AddAttributes(trace.StringAttribute(key, v))
	case int64:
		span.AddAttributes(trace.Int64Attribute(key, v))
	case int:
		span.AddAttributes(trace.Int64Attribute(key, int64(v)))
	case bool:
		span.AddAttributes(trace.BoolAttribute(key, v))
	default:
		span.AddAttributes(trace.StringAttribute(key, fmt.Sprintf("%v", v)))
	}
}

// MarkSpanError marks the span in ctx as failed
func MarkSpanError(ctx context.Context, err error) {
	if err == nil {
		return
	}
	if span := trace.FromContext(ctx); span != nil {
		span.SetStatus(trace.Status{
			Code:    trace.StatusCodeUnknown,
			Message: err.Error(),
		})
	}
}

// WrapHTTPClient returns a copy of client whose requests are traced
func WrapHTTPClient(client *http.Client) *http.Client {
	if client == nil {
		client = &http.Client{
			Timeout: DefaultClientTimeout,
		}
	}

	transport := GetHTTPOptions()
	transport.Base = client.Transport

	return &http.Client{
		Transport:     &transport,
		Timeout:       client.Timeout,
		Jar:           client.Jar,
		CheckRedirect: client.CheckRedirect,
	}
}
