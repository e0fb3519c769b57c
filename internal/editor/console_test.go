package editor

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Notifuse/emailbuilder/internal/domain"
)

func newTestConsole(t *testing.T, opts ...ConsoleOption) (*Console, *Session, *bytes.Buffer) {
	s, _ := newTestSession(t)
	var out bytes.Buffer
	return NewConsole(s, &out, opts...), s, &out
}

func TestConsole_Run(t *testing.T) {
	c, s, out := newTestConsole(t)

	script := strings.Join([]string{
		"# build a two column layout",
		"add heading",
		"add grid",
		"select grid_1700000000000",
		"add text",
		"tree",
		"quit",
		"add spacer",
	}, "\n")

	require.NoError(t, c.Run(context.Background(), strings.NewReader(script)))

	// commands after quit are not executed
	assert.Equal(t, 3, s.Document().Count())
	assert.Contains(t, out.String(), "added heading_1700000000000")
	assert.Contains(t, out.String(), "* grid_1700000000000 (grid) [1/2]")
	assert.Contains(t, out.String(), "    text_1700000000000 (text)")
}

func TestConsole_RunPrintsErrorsAndContinues(t *testing.T) {
	c, s, out := newTestConsole(t, WithPrompt("> "))

	require.NoError(t, c.Run(context.Background(), strings.NewReader("bogus\nadd video\nadd divider\n")))

	assert.Contains(t, out.String(), `error: unknown command "bogus"`)
	assert.Contains(t, out.String(), "error: validation error: unknown component type")
	assert.Equal(t, 1, s.Document().Len())
	assert.True(t, strings.HasPrefix(out.String(), "> "))
}

func TestConsole_RunStopsOnCancelledContext(t *testing.T) {
	c, _, _ := newTestConsole(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, c.Run(ctx, strings.NewReader("add heading\n")))
}

func TestConsole_RunReturnsWhenCancelledWhileReading(t *testing.T) {
	c, s, _ := newTestConsole(t)
	r, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, r) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the context was cancelled")
	}
	assert.Equal(t, 0, s.Document().Len())
}

func TestConsole_LineCommandsNeedArguments(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{line: "set", want: "usage: set <field> <value>"},
		{line: "set   ", want: "usage: set <field> <value>"},
		{line: "save", want: "usage: save <name>"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			c, _, _ := newTestConsole(t)
			err := c.Execute(tt.line)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConsole_SetKeepsSpacing(t *testing.T) {
	c, s, _ := newTestConsole(t)
	require.NoError(t, c.Execute("add text"))
	require.NoError(t, c.Execute("select text_1700000000000"))
	require.NoError(t, c.Execute("set text Hello  there,   world"))

	node, _ := s.SelectedNode()
	assert.Equal(t, "Hello  there,   world", node.Content.String("text"))

	require.NoError(t, c.Execute("add list"))
	require.NoError(t, c.Execute("select list_1700000000000"))
	require.NoError(t, c.Execute(`set items first\nsecond`))
	node, _ = s.SelectedNode()
	assert.Equal(t, []string{"first", "second"}, node.Content.Strings("items"))

	assert.Error(t, c.Execute("set"))
	assert.Error(t, c.Execute("set align middle"))
}

func TestConsole_DragAndMove(t *testing.T) {
	c, s, out := newTestConsole(t)
	require.NoError(t, c.Execute("add heading"))
	require.NoError(t, c.Execute("add text"))

	require.NoError(t, c.Execute("drag text_1700000000000"))
	require.NoError(t, c.Execute("over heading_1700000000000 2 60"))
	assert.Contains(t, out.String(), "before")
	require.NoError(t, c.Execute("drop"))

	assert.Equal(t, []domain.ComponentType{domain.ComponentTypeText, domain.ComponentTypeHeading}, rootTypes(s.Document()))

	err := c.Execute("move text_1700000000000 heading_1700000000000 inside")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inside_non_grid")

	require.NoError(t, c.Execute("move text_1700000000000 heading_1700000000000 after"))
	assert.Equal(t, []domain.ComponentType{domain.ComponentTypeHeading, domain.ComponentTypeText}, rootTypes(s.Document()))

	assert.Error(t, c.Execute("move a b sideways"))
	assert.Error(t, c.Execute("over heading_1700000000000 x 60"))
	assert.Error(t, c.Execute("drag missing"))
}

func TestConsole_DeleteAndClear(t *testing.T) {
	c, s, out := newTestConsole(t)
	require.NoError(t, c.Execute("add heading"))
	require.NoError(t, c.Execute("add spacer"))

	assert.Error(t, c.Execute("delete"))
	require.NoError(t, c.Execute("select spacer_1700000000000"))
	require.NoError(t, c.Execute("delete"))
	assert.Equal(t, 1, s.Document().Len())

	assert.Error(t, c.Execute("delete missing"))
	require.NoError(t, c.Execute("clear"))
	require.NoError(t, c.Execute("tree"))
	assert.Contains(t, out.String(), "Drag components here to start building your email")
}

func TestConsole_Fields(t *testing.T) {
	c, _, out := newTestConsole(t)
	require.NoError(t, c.Execute("fields"))
	assert.Contains(t, out.String(), "Select a component to edit its properties")

	require.NoError(t, c.Execute("add grid"))
	out.Reset()
	require.NoError(t, c.Execute("select grid_1700000000000"))
	assert.Contains(t, out.String(), "columnRatio")
	assert.Contains(t, out.String(), "[2|3|4]")
	assert.Contains(t, out.String(), "0/2 columns used")
}

func TestConsole_CopyExportInspect(t *testing.T) {
	var terminal bytes.Buffer
	opened := ""
	c, s, out := newTestConsole(t,
		WithClipboard(OSC52Clipboard{Out: &terminal}),
		WithOpener(func(path string) error { opened = path; return nil }),
	)
	require.NoError(t, c.Execute("add button"))

	require.NoError(t, c.Execute("copy"))
	assert.Contains(t, out.String(), "HTML copied to clipboard!")
	encoded := strings.TrimSuffix(strings.TrimPrefix(terminal.String(), "\x1b]52;c;"), "\a")
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, s.HTML(), string(decoded))

	path := filepath.Join(t.TempDir(), "email.html")
	require.NoError(t, c.Execute("export "+path+" --open"))
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, s.HTML(), string(written))
	assert.Equal(t, path, opened)

	out.Reset()
	require.NoError(t, c.Execute("inspect"))
	assert.Contains(t, out.String(), "blocks: 1")
	assert.Contains(t, out.String(), "warning: link \"Click Here\" has a placeholder url")
}

func TestConsole_CopyWithoutClipboard(t *testing.T) {
	c, _, _ := newTestConsole(t)
	assert.Error(t, c.Execute("copy"))
}

func TestConsole_HelpAndTypes(t *testing.T) {
	c, _, out := newTestConsole(t)
	require.NoError(t, c.Execute("help"))
	for _, name := range []string{"add", "drag", "inspect", "quit"} {
		assert.Contains(t, out.String(), name)
	}

	out.Reset()
	require.NoError(t, c.Execute("types"))
	assert.Contains(t, out.String(), "Grid Layout")
	assert.Equal(t, 8, strings.Count(out.String(), "\n"))
}

func TestFileClipboard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.html")
	require.NoError(t, FileClipboard{Path: path}.WriteText("<p>hi</p>"))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(content))
}

func TestConsole_MJMLAndSave(t *testing.T) {
	var savedName string
	var savedDoc domain.Document
	c, _, out := newTestConsole(t, WithSaver(func(name string, doc domain.Document) (string, error) {
		savedName, savedDoc = name, doc
		return "template 12", nil
	}))
	require.NoError(t, c.Execute("add heading"))

	require.NoError(t, c.Execute("mjml"))
	assert.Contains(t, out.String(), "<mj-text")

	assert.Error(t, c.Execute("save"))
	require.NoError(t, c.Execute("save  Spring  launch "))
	assert.Equal(t, "Spring  launch", savedName)
	assert.Equal(t, 1, savedDoc.Len())
	assert.Contains(t, out.String(), "saved template 12")
}

func TestConsole_SaveWithoutBackend(t *testing.T) {
	c, _, _ := newTestConsole(t)
	err := c.Execute("save draft")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BACKEND_URL")
}
