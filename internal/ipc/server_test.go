package ipc

import (
	"io"
	"log/slog"
	"testing"

	"github.com/tidewl/tidewl/internal/comp"
)

type recordingExecutor struct {
	commands []string
	pids     []int
}

func (r *recordingExecutor) Exec(command string) { r.commands = append(r.commands, command) }

func (r *recordingExecutor) Running() []int { return r.pids }

func startTestServer(t *testing.T) (*StatusStore, *recordingExecutor, *Client) {
	t.Helper()
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	store := NewStatusStore()
	exec := &recordingExecutor{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv, err := NewServer(store, exec, log)
	if err != nil {
		t.Fatalf("creating server: %v", err)
	}
	if err := srv.Start(); err != nil {
		t.Fatalf("starting server: %v", err)
	}
	t.Cleanup(srv.Stop)

	return store, exec, NewClient()
}

func TestListWindowsRoundTrip(t *testing.T) {
	store, _, client := startTestServer(t)
	store.PublishWindows([]comp.WindowInfo{
		{ID: 2, Title: "terminal"},
		{ID: 1, Title: "editor"},
	})

	windows, err := client.Windows()
	if err != nil {
		t.Fatalf("listing windows: %v", err)
	}
	if len(windows) != 2 {
		t.Fatalf("windows = %d, want 2", len(windows))
	}
	if windows[0].ID != 2 || windows[0].Title != "terminal" || !windows[0].Focused {
		t.Fatalf("front = %+v, want focused terminal id 2", windows[0])
	}
	if windows[1].Focused {
		t.Fatalf("second window reported focused")
	}
}

func TestStatusReportsCompositorState(t *testing.T) {
	store, exec, client := startTestServer(t)
	store.PublishWindows([]comp.WindowInfo{{ID: 1, Title: "editor"}})
	store.SetSocketName("wayland-1")
	exec.pids = []int{101, 202}

	status, err := client.Status()
	if err != nil {
		t.Fatalf("fetching status: %v", err)
	}
	if !status.Running {
		t.Fatalf("status.Running = false, want true")
	}
	if status.WindowCount != 1 {
		t.Fatalf("window count = %d, want 1", status.WindowCount)
	}
	if status.SocketName != "wayland-1" {
		t.Fatalf("socket name = %q, want wayland-1", status.SocketName)
	}
	if len(status.Children) != 2 || status.Children[0] != 101 || status.Children[1] != 202 {
		t.Fatalf("children = %v, want [101 202]", status.Children)
	}
}

func TestExecReachesLauncher(t *testing.T) {
	_, exec, client := startTestServer(t)

	if err := client.Exec("kitty"); err != nil {
		t.Fatalf("exec: %v", err)
	}
	if len(exec.commands) != 1 || exec.commands[0] != "kitty" {
		t.Fatalf("commands = %v, want [kitty]", exec.commands)
	}
}

func TestExecRejectsEmptyCommand(t *testing.T) {
	_, exec, client := startTestServer(t)

	if err := client.Exec(""); err == nil {
		t.Fatalf("empty command accepted")
	}
	if len(exec.commands) != 0 {
		t.Fatalf("commands = %v, want none", exec.commands)
	}
}

func TestUnknownCommandIsError(t *testing.T) {
	_, _, client := startTestServer(t)

	if _, err := client.sendRequest(&Request{Command: "REWIND"}); err == nil {
		t.Fatalf("unknown command accepted")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	store := NewStatusStore()
	published := []comp.WindowInfo{{ID: 1, Title: "editor"}}
	store.PublishWindows(published)

	// Mutating the caller's slice after publish must not leak through.
	published[0].Title = "changed"
	got := store.Windows()
	if got[0].Title != "editor" {
		t.Fatalf("snapshot title = %q, want editor", got[0].Title)
	}
}
