package mjml

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiquidEngine_Render(t *testing.T) {
	engine := NewLiquidEngine()

	out, err := engine.Render(context.Background(), `<div>Hello {{ contact.first_name }}</div>`, map[string]any{
		"contact": map[string]any{"first_name": "Ada"},
	})
	require.NoError(t, err)
	assert.Equal(t, "<div>Hello Ada</div>", out)
}

func TestLiquidEngine_SizeLimit(t *testing.T) {
	engine := NewLiquidEngineWithOptions(time.Second, 64)

	_, err := engine.Render(context.Background(), strings.Repeat("<p>{{ x }}</p>", 10), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum allowed size")
}

func TestLiquidEngine_Timeout(t *testing.T) {
	engine := NewLiquidEngineWithOptions(50*time.Millisecond, DefaultMaxTemplateSize)

	template := `{% for i in (1..1000000) %}{% for j in (1..1000000) %}{{ i }}{% endfor %}{% endfor %}`

	start := time.Now()
	_, err := engine.Render(context.Background(), template, map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestLiquidEngine_ContextCancelled(t *testing.T) {
	engine := NewLiquidEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Render(ctx, `{% for i in (1..1000000) %}{% for j in (1..1000000) %}{{ i }}{% endfor %}{% endfor %}`, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLiquidEngine_SyntaxError(t *testing.T) {
	engine := NewLiquidEngine()

	_, err := engine.Render(context.Background(), `{% if contact %}unterminated`, map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "liquid rendering failed")
}

func TestNewLiquidEngineWithOptions_Defaults(t *testing.T) {
	engine := NewLiquidEngineWithOptions(0, -1)
	assert.Equal(t, DefaultRenderTimeout, engine.timeout)
	assert.Equal(t, DefaultMaxTemplateSize, engine.maxSize)
}
