package mjml

import (
	"context"
	"fmt"
	"time"

	"github.com/osteele/liquid"
)

// Limits applied to Liquid personalisation
const (
	DefaultRenderTimeout   = 5 * time.Second
	DefaultMaxTemplateSize = 100 * 1024 // 100KB
)

// LiquidEngine renders Liquid templates with a size limit and a deadline,
// so a hostile template cannot hang the preview
type LiquidEngine struct {
	timeout time.Duration
	maxSize int
	engine  *liquid.Engine
}

// NewLiquidEngine creates an engine with the default limits
func NewLiquidEngine() *LiquidEngine {
	return NewLiquidEngineWithOptions(DefaultRenderTimeout, DefaultMaxTemplateSize)
}

// NewLiquidEngineWithOptions creates an engine with custom limits.
// Non-positive values fall back to the defaults.
func NewLiquidEngineWithOptions(timeout time.Duration, maxSize int) *LiquidEngine {
	if timeout <= 0 {
		timeout = DefaultRenderTimeout
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxTemplateSize
	}
	return &LiquidEngine{
		timeout: timeout,
		maxSize: maxSize,
		engine:  liquid.NewEngine(),
	}
}

// Render renders content with data. It stops at the engine timeout or when
// ctx is done, whichever comes first.
func (e *LiquidEngine) Render(ctx context.Context, content string, data map[string]any) (string, error) {
	if len(content) > e.maxSize {
		return "", fmt.Errorf("template size (%d bytes) exceeds maximum allowed size (%d bytes)", len(content), e.maxSize)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	type result struct {
		out string
		err error
	}
	done := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("panic during liquid rendering: %v", r)}
			}
		}()

		rendered, err := e.engine.ParseAndRenderString(content, data)
		if err != nil {
			done <- result{err: fmt.Errorf("liquid rendering failed: %w", err)}
			return
		}
		done <- result{out: rendered}
	}()

	select {
	case r := <-done:
		return r.out, r.err
	case <-ctx.Done():
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("liquid rendering timeout after %v", e.timeout)
		}
		return "", ctx.Err()
	}
}
