package mjml

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const welcomeMJML = `<mjml>
  <mj-body>
    <mj-section>
      <mj-column>
        <mj-text>Hello {{ contact.first_name }}</mj-text>
      </mj-column>
    </mj-section>
  </mj-body>
</mjml>`

func TestPreviewRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mjml    string
		wantErr bool
	}{
		{"valid", welcomeMJML, false},
		{"empty", "   ", true},
		{"no mjml root", "<html></html>", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := PreviewRequest{MJML: tt.mjml}
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCompiler_Compile(t *testing.T) {
	compiler := NewCompiler(nil)

	result, err := compiler.Compile(context.Background(), PreviewRequest{
		MJML: welcomeMJML,
		Data: map[string]any{"contact": map[string]any{"first_name": "Ada"}},
	})
	require.NoError(t, err)
	require.True(t, result.Success, result.ErrorMessage())
	require.NotNil(t, result.HTML)
	require.NotNil(t, result.MJML)

	assert.Contains(t, *result.HTML, "Hello Ada")
	assert.Contains(t, *result.MJML, "Hello Ada")
	assert.Empty(t, result.ErrorMessage())
}

func TestCompiler_CompileWithoutData(t *testing.T) {
	compiler := NewCompiler(NewLiquidEngine())

	result, err := compiler.Compile(context.Background(), PreviewRequest{MJML: welcomeMJML})
	require.NoError(t, err)
	require.True(t, result.Success)

	// liquid tags are left alone without personalisation data
	assert.Contains(t, *result.MJML, "{{ contact.first_name }}")
}

func TestCompiler_CompileReportsLiquidErrors(t *testing.T) {
	compiler := NewCompiler(nil)

	result, err := compiler.Compile(context.Background(), PreviewRequest{
		MJML: `<mjml><mj-body>{% if contact %}</mj-body></mjml>`,
		Data: map[string]any{"contact": map[string]any{}},
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Nil(t, result.HTML)
	require.NotNil(t, result.Error)
	assert.Contains(t, result.ErrorMessage(), "MJML Errors: liquid rendering failed")
}

func TestCompiler_CompileRejectsInvalidRequest(t *testing.T) {
	compiler := NewCompiler(nil)

	result, err := compiler.Compile(context.Background(), PreviewRequest{})
	assert.Error(t, err)
	assert.Nil(t, result)
}
