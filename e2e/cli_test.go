package e2e_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/teamroster/internal/api"
	"github.com/mcoot/teamroster/internal/factory"
	"github.com/mcoot/teamroster/internal/testutil"
	"github.com/mcoot/teamroster/internal/web"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "roster-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/roster")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{"--output", "json"}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	cmd.Env = append(os.Environ(), "ROSTER_SERVER="+r.serverURL)
	output, err := cmd.Output()
	return string(output), err
}

func (r *cliRunner) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := r.run(args...)
	require.NoError(t, err, "roster %s failed: %s", strings.Join(args, " "), exitOutput(err))
	return out
}

func exitOutput(err error) string {
	if ee, ok := err.(*exec.ExitError); ok {
		return string(ee.Stderr)
	}
	return ""
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// startTestServer runs the combined API and web routers over SQLite storage
func startTestServer(t *testing.T, dbPath string) (*httptest.Server, *factory.App) {
	t.Helper()

	logger := testutil.NopLogger()
	app, err := factory.New(factory.Config{
		Logger:      logger,
		StorageType: factory.StorageTypeSQLite,
		SQLitePath:  dbPath,
	})
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.Handle("/api/", api.NewRouter(api.RouterConfig{Logger: logger, RosterService: app.RosterService}))
	mux.Handle("/", web.NewRouter(web.RouterConfig{Logger: logger, RosterService: app.RosterService}))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		_ = app.Close()
	})
	return server, app
}

type player struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Position string `json:"position"`
	Status   string `json:"status"`
}

type roster struct {
	Players []player `json:"players"`
	Summary struct {
		Starters    int `json:"starters"`
		Substitutes int `json:"substitutes"`
		Total       int `json:"total"`
	} `json:"summary"`
}

func TestCLIMatchDay(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	dbPath := filepath.Join(t.TempDir(), "roster.db")
	server, _ := startTestServer(t, dbPath)
	cli := newCLIRunner(t, server.URL)

	out := cli.mustRun(t, "health")
	assert.Contains(t, out, `"ok"`)

	cli.mustRun(t, "add", "--name", "Ana", "--age", "23", "--position", "Forward", "--status", "starter")
	cli.mustRun(t, "add", "--name", "Bea", "--age", "31", "--position", "Keeper", "--status", "substitute")
	cli.mustRun(t, "add", "--name", "Cris", "--age", "27", "--position", "Defender", "--status", "starter")

	_, err := cli.run("add", "--name", "bea", "--age", "40", "--position", "Coach", "--status", "substitute")
	require.Error(t, err)
	assert.Contains(t, exitOutput(err), "DUPLICATE_NAME")

	out = cli.mustRun(t, "sub", "--in", "Bea", "--out", "Ana")
	assert.Contains(t, out, `"incoming"`)

	out = cli.mustRun(t, "position", "Ana", "Winger")
	var p player
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, "Winger", p.Position)

	out = cli.mustRun(t, "list")
	var r roster
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	names := make([]string, len(r.Players))
	for i, p := range r.Players {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"Bea", "Cris", "Ana"}, names)
	assert.Equal(t, 2, r.Summary.Starters)

	cli.mustRun(t, "remove", "Cris")

	// The web page reflects changes made through the CLI
	resp, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Find("#players li.player").Length())
	assert.Equal(t, 1, doc.Find("#players li.starter").Length())
}

func TestRosterSurvivesRestart(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	dbPath := filepath.Join(t.TempDir(), "roster.db")

	first, firstApp := startTestServer(t, dbPath)
	cli := newCLIRunner(t, first.URL)
	cli.mustRun(t, "add", "--name", "Dani", "--age", "19", "--position", "Midfielder", "--status", "substitute")
	first.Close()
	require.NoError(t, firstApp.Close())

	second, _ := startTestServer(t, dbPath)
	cli.serverURL = second.URL

	out := cli.mustRun(t, "get", "dani")
	var p player
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, player{Name: "Dani", Age: 19, Position: "Midfielder", Status: "substitute"}, p)
}
