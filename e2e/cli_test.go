package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prathamesh424/pixelwalk-go/internal/api"
	"github.com/prathamesh424/pixelwalk-go/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "pixelwalk-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/pixelwalk")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runWithToken(token string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token", token,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
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

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	router := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		AuthService:      app.AuthService,
		WorldService:     app.WorldService,
		PlayerService:    app.PlayerService,
		MovementService:  app.MovementService,
		ProximityService: app.ProximityService,
		ChatService:      app.ChatService,
		Translator:       app.Translator,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type positionResponse struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type authResponse struct {
	Identity     string `json:"identity"`
	IsGuest      bool   `json:"is_guest"`
	SessionToken string `json:"session_token"`
}

type playerResponse struct {
	ID        string           `json:"id"`
	Identity  string           `json:"identity"`
	Position  positionResponse `json:"position"`
	MapID     *string          `json:"map_id"`
	AvatarURL string           `json:"avatar_url"`
	IsGuest   bool             `json:"is_guest"`
}

type mapResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type moveResponse struct {
	Position positionResponse `json:"position"`
}

type nearbyResponse struct {
	Players []struct {
		Identity  string `json:"identity"`
		AvatarURL string `json:"avatar_url"`
	} `json:"players"`
}

type chatMessageResponse struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Body     string `json:"body"`
}

type threadHistoryResponse struct {
	Messages []chatMessageResponse `json:"messages"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_GuestSession(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("auth", "guest")
	require.NoError(t, err, "output: %s", output)

	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	assert.True(t, authResp.IsGuest)
	assert.NotEmpty(t, authResp.Identity)
	assert.NotEmpty(t, authResp.SessionToken)

	// Token was saved to the token file, so subsequent commands are authenticated
	output, err = cli.run("player", "enter", "--avatar", "https://img.example/alice.png")
	require.NoError(t, err, "output: %s", output)

	var player playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &player))
	assert.Equal(t, authResp.Identity, player.Identity)
	assert.True(t, player.IsGuest)

	output, err = cli.run("player", "me")
	require.NoError(t, err, "output: %s", output)

	var me playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &me))
	assert.Equal(t, player.ID, me.ID)
	assert.Equal(t, "https://img.example/alice.png", me.AvatarURL)
}

func TestCLI_MapCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("auth", "guest")
	require.NoError(t, err, "output: %s", output)

	// Create a map
	output, err = cli.run("map", "create", "--name", "plaza", "--width", "12", "--height", "8")
	require.NoError(t, err, "output: %s", output)

	var created mapResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	assert.Equal(t, "plaza", created.Name)
	assert.Equal(t, 12, created.Width)
	assert.Equal(t, 8, created.Height)

	// Fetch it back by name
	output, err = cli.run("map", "get", "plaza")
	require.NoError(t, err, "output: %s", output)

	var fetched mapResponse
	require.NoError(t, json.Unmarshal([]byte(output), &fetched))
	assert.Equal(t, created.ID, fetched.ID)

	// Resize it
	output, err = cli.run("map", "update", created.ID, "--width", "20")
	require.NoError(t, err, "output: %s", output)

	var updated mapResponse
	require.NoError(t, json.Unmarshal([]byte(output), &updated))
	assert.Equal(t, 20, updated.Width)
	assert.Equal(t, 8, updated.Height)
}

func TestCLI_MovementFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("auth", "guest")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("map", "create", "--name", "plaza", "--width", "10", "--height", "10")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("player", "enter", "--map", "plaza", "--avatar", "https://img.example/a.png", "--x", "2", "--y", "3")
	require.NoError(t, err, "output: %s", output)

	var player playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &player))
	assert.Equal(t, 2, player.Position.X)
	assert.Equal(t, 3, player.Position.Y)

	// Walk right twice and up once
	output, err = cli.run("move", "right")
	require.NoError(t, err, "output: %s", output)

	var moved moveResponse
	require.NoError(t, json.Unmarshal([]byte(output), &moved))
	assert.Equal(t, 3, moved.Position.X)

	output, err = cli.run("move", "right")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("move", "up")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &moved))
	assert.Equal(t, 4, moved.Position.X)
	assert.Equal(t, 2, moved.Position.Y)
}

func TestCLI_ProximityAndChat(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	// Two CLI runners with separate token files
	cli1 := newCLIRunner(t, ts.addr)
	cli2 := &cliRunner{
		binaryPath: cli1.binaryPath,
		serverURL:  cli1.serverURL,
		tokenFile:  filepath.Join(t.TempDir(), "token2"),
	}

	output, err := cli1.run("auth", "guest")
	require.NoError(t, err, "output: %s", output)
	var auth1 authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &auth1))

	output, err = cli2.run("auth", "guest")
	require.NoError(t, err, "output: %s", output)
	var auth2 authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &auth2))

	output, err = cli1.run("map", "create", "--name", "plaza", "--width", "10", "--height", "10")
	require.NoError(t, err, "output: %s", output)

	// Both players spawn side by side
	output, err = cli1.run("player", "enter", "--map", "plaza", "--avatar", "https://img.example/a.png", "--x", "3", "--y", "0")
	require.NoError(t, err, "output: %s", output)

	output, err = cli2.run("player", "enter", "--map", "plaza", "--avatar", "https://img.example/b.png", "--x", "4", "--y", "0")
	require.NoError(t, err, "output: %s", output)

	// Each sees the other nearby
	output, err = cli1.run("nearby", "plaza")
	require.NoError(t, err, "output: %s", output)

	var near1 nearbyResponse
	require.NoError(t, json.Unmarshal([]byte(output), &near1))
	require.Len(t, near1.Players, 1)
	assert.Equal(t, auth2.Identity, near1.Players[0].Identity)
	assert.Equal(t, "https://img.example/b.png", near1.Players[0].AvatarURL)

	output, err = cli2.run("nearby", "plaza")
	require.NoError(t, err, "output: %s", output)

	var near2 nearbyResponse
	require.NoError(t, json.Unmarshal([]byte(output), &near2))
	require.Len(t, near2.Players, 1)
	assert.Equal(t, auth1.Identity, near2.Players[0].Identity)

	// Exchange messages
	output, err = cli1.run("chat", "send", "--to", auth2.Identity, "--body", "hi there")
	require.NoError(t, err, "output: %s", output)

	var sent chatMessageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &sent))
	assert.Equal(t, auth1.Identity, sent.Sender)
	assert.Equal(t, auth2.Identity, sent.Receiver)

	output, err = cli2.run("chat", "send", "--to", auth1.Identity, "--body", "hello back")
	require.NoError(t, err, "output: %s", output)

	// Both sides see the same two-message history
	output, err = cli1.run("chat", "history", auth2.Identity)
	require.NoError(t, err, "output: %s", output)

	var history threadHistoryResponse
	require.NoError(t, json.Unmarshal([]byte(output), &history))
	require.Len(t, history.Messages, 2)
	assert.Equal(t, "hi there", history.Messages[0].Body)
	assert.Equal(t, "hello back", history.Messages[1].Body)

	output, err = cli2.run("chat", "history", auth1.Identity)
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &history))
	require.Len(t, history.Messages, 2)
}

func TestCLI_RegisteredAccount(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("auth", "register", "--user", "alice", "--pass", "hunter22")
	require.NoError(t, err, "output: %s", output)

	var authResp authResponse
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	assert.Equal(t, "alice", authResp.Identity)
	assert.False(t, authResp.IsGuest)

	// Login again with the same credentials
	output, err = cli.run("auth", "login", "--user", "alice", "--pass", "hunter22")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &authResp))
	assert.Equal(t, "alice", authResp.Identity)
	assert.NotEmpty(t, authResp.SessionToken)

	// Logout invalidates the saved token
	output, err = cli.run("auth", "logout")
	require.NoError(t, err, "output: %s", output)

	_, err = cli.run("player", "me")
	assert.Error(t, err)
}
