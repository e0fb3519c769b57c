package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Notifuse/emailbuilder/config"
	"github.com/Notifuse/emailbuilder/internal/app"
	"github.com/Notifuse/emailbuilder/internal/domain"
	"github.com/Notifuse/emailbuilder/pkg/logger"
)

// testCLI builds a cli whose configuration points at backendURL
func testCLI(t *testing.T, backendURL string) (*cli, *logger.TestLogger) {
	log := logger.NewTestLogger(t)
	c := &cli{
		loadConfig: func(envFile string) (*config.Config, error) {
			assert.Equal(t, ".env", envFile)
			return &config.Config{
				Backend: config.BackendConfig{
					URL:      backendURL,
					APIToken: "test-token",
					Timeout:  5 * time.Second,
				},
				Preview: config.PreviewConfig{
					RenderTimeout:   2 * time.Second,
					MaxTemplateSize: 100 * 1024,
				},
				Environment: "test",
				LogLevel:    "info",
				Version:     config.VERSION,
			}, nil
		},
		newApp:     app.NewApp,
		appOptions: []app.AppOption{app.WithLogger(log)},
		isTerminal: func(any) bool { return false },
		open: func(path string) error {
			t.Fatalf("unexpected open of %s", path)
			return nil
		},
	}
	return c, log
}

func execute(t *testing.T, c *cli, stdin string, args ...string) (string, error) {
	cmd := newRootCmd(c)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func newBackend(t *testing.T, handler http.HandlerFunc) string {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return server.URL + "/api"
}

func TestVersion(t *testing.T) {
	c, _ := testCLI(t, "")

	out, err := execute(t, c, "", "version")
	require.NoError(t, err)
	assert.Equal(t, config.VERSION+"\n", out)
}

func TestBackendCommandsNeedBackendURL(t *testing.T) {
	for _, args := range [][]string{
		{"templates", "list"},
		{"contacts", "list"},
		{"groups", "list"},
		{"campaigns", "prepare", "1"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			c, _ := testCLI(t, "")
			_, err := execute(t, c, "", args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "BACKEND_URL is required")
		})
	}
}

func TestEditor_ScriptFromStdin(t *testing.T) {
	c, log := testCLI(t, "")
	export := filepath.Join(t.TempDir(), "email.html")

	out, err := execute(t, c, "add heading\nadd divider\nsave Spring\n", "editor", "--export", export)
	require.NoError(t, err)

	// no prompt when stdin is not a terminal
	assert.NotContains(t, out, "emailbuilder> ")
	assert.Contains(t, out, "error: saving is not available")

	html, err := os.ReadFile(export)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Your Heading Here")
	assert.Contains(t, string(html), "<hr")
	assert.Contains(t, log.Messages("INFO"), "Email exported")
}

func TestEditor_ScriptFileSavesToBackend(t *testing.T) {
	var saved domain.Template
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/templates/user", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&saved))
		saved.ID = 41
		_ = json.NewEncoder(w).Encode(saved)
	})
	c, _ := testCLI(t, backend)

	script := filepath.Join(t.TempDir(), "layout.txt")
	require.NoError(t, os.WriteFile(script, []byte("add button\nsave  Launch day \n"), 0o644))

	out, err := execute(t, c, "", "editor", "--script", script)
	require.NoError(t, err)

	assert.Contains(t, out, "saved template 41 (Launch day)")
	assert.Equal(t, "Launch day", saved.Name)
	assert.Equal(t, domain.TemplateTypeUser, saved.Type)
	assert.Contains(t, saved.MjmlContent, "<mj-button")
}

func TestTemplatesList(t *testing.T) {
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/templates/", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		_, _ = w.Write([]byte(`{"content":[{"id":7,"name":"Welcome","type":"SYSTEM"},{"id":9,"name":"Promo","type":"USER"}],"totalPages":3,"totalElements":22,"number":1}`))
	})
	c, _ := testCLI(t, backend)

	out, err := execute(t, c, "", "templates", "list", "--page", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"ID", "TYPE", "NAME"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"7", "SYSTEM", "Welcome"}, strings.Fields(lines[1]))
	assert.Equal(t, "page 2 of 3 (22 templates)", lines[3])
}

func TestTemplatesPreview_File(t *testing.T) {
	c, _ := testCLI(t, "")
	dir := t.TempDir()
	source := filepath.Join(dir, "welcome.mjml")
	output := filepath.Join(dir, "welcome.html")
	require.NoError(t, os.WriteFile(source, []byte(`<mjml><mj-body><mj-section><mj-column><mj-text>Hello {{ contact.first_name }}</mj-text></mj-column></mj-section></mj-body></mjml>`), 0o644))

	out, err := execute(t, c, "", "templates", "preview", "--file", source, "--first-name", "Ada", "-o", output)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+output)

	html, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Hello Ada")
}

func TestTemplatesPreview_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no source", []string{"templates", "preview"}, "give either a template id or --file"},
		{"both sources", []string{"templates", "preview", "3", "--file", "a.mjml"}, "give either a template id or --file"},
		{"watch without file", []string{"templates", "preview", "3", "--watch"}, "--watch needs --file"},
		{"open without output", []string{"templates", "preview", "--file", "a.mjml", "--open"}, "--open needs --output"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := testCLI(t, "")
			_, err := execute(t, c, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestContactsDelete_InvalidID(t *testing.T) {
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	})
	c, _ := testCLI(t, backend)

	_, err := execute(t, c, "", "contacts", "delete", "4", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid id "abc"`)
}

func TestContactsMove(t *testing.T) {
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/contacts/move", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("existingGroupId"))
		assert.Equal(t, "2", r.URL.Query().Get("toBeMovedGroupId"))
		var ids []int64
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&ids))
		assert.Equal(t, []int64{5, 6}, ids)
		_, _ = w.Write([]byte("2 contacts moved"))
	})
	c, _ := testCLI(t, backend)

	out, err := execute(t, c, "", "contacts", "move", "--from", "1", "--to", "2", "5", "6")
	require.NoError(t, err)
	assert.Equal(t, "2 contacts moved\n", out)
}

func TestGroupsCreate(t *testing.T) {
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var req domain.CreateContactGroupRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "VIP", req.Name)
		if !assert.NotNil(t, req.Description) {
			return
		}
		assert.Equal(t, "best customers", *req.Description)
		_, _ = w.Write([]byte(`{"id":3,"name":"VIP"}`))
	})
	c, _ := testCLI(t, backend)

	out, err := execute(t, c, "", "groups", "create", "VIP", "--description", "best customers")
	require.NoError(t, err)
	assert.Equal(t, "created group 3 (VIP)\n", out)
}

func TestCampaignsSchedule(t *testing.T) {
	var scheduled domain.Campaign
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/templates/12":
			_, _ = w.Write([]byte(`{"id":12,"name":"Welcome","mjmlContent":"<mjml></mjml>","type":"USER"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/api/contact-groups":
			_, _ = w.Write([]byte(`[{"id":3,"name":"Customers"},{"id":4,"name":"VIP"}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/campaigns":
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&scheduled))
			id := int64(30)
			scheduled.ID = &id
			_ = json.NewEncoder(w).Encode(scheduled)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
	c, _ := testCLI(t, backend)

	out, err := execute(t, c, "", "campaigns", "schedule", "12", "--group", "3", "--group", "4", "--date", "2030-06-01", "--time", "09:30")
	require.NoError(t, err)

	at, err := time.ParseInLocation("2006-01-02T15:04", "2030-06-01T09:30", time.Local)
	require.NoError(t, err)
	want := at.UTC().Format("2006-01-02T15:04:05.000Z")

	assert.Equal(t, "Campaign - Welcome", scheduled.Name)
	assert.Equal(t, int64(12), scheduled.TemplateID)
	assert.Equal(t, []int64{3, 4}, scheduled.ContactGroupIDs)
	assert.Equal(t, want, scheduled.ScheduledAt)
	assert.Equal(t, `scheduled "Campaign - Welcome" for `+want+"\n", out)
}

func TestCampaignsPrepare(t *testing.T) {
	backend := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/templates/12" {
			_, _ = w.Write([]byte(`{"id":12,"name":"Welcome","mjmlContent":"<mjml></mjml>","type":"USER"}`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	})
	c, _ := testCLI(t, backend)

	out, err := execute(t, c, "", "campaigns", "prepare", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Campaign - Welcome\n")
	assert.Contains(t, out, "template: 12 (Welcome)\n")
	assert.Contains(t, out, "no contact groups, create one first")
}
