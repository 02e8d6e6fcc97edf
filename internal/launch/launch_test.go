package launch

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

func newTestLauncher() *Launcher {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestExecTracksAndReapsChild(t *testing.T) {
	l := newTestLauncher()
	l.Exec("sleep 0.2")

	pids := l.Running()
	if len(pids) != 1 {
		t.Fatalf("running = %v, want one child", pids)
	}

	// The child exits on its own; the reaper must drop it from the table.
	deadline := time.Now().Add(5 * time.Second)
	for len(l.Running()) != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("child %v never reaped", pids)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestExecFailureLeavesNoRecord(t *testing.T) {
	l := newTestLauncher()
	// The shell itself starts fine and exits nonzero; the reaper must
	// still clean up.
	l.Exec("exit 3")

	deadline := time.Now().Add(5 * time.Second)
	for len(l.Running()) != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("failed child never reaped: %v", l.Running())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestKillTerminatesChild(t *testing.T) {
	l := newTestLauncher()
	l.Exec("sleep 60")

	pids := l.Running()
	if len(pids) != 1 {
		t.Fatalf("running = %v, want one child", pids)
	}
	if err := l.Kill(pids[0]); err != nil {
		t.Fatalf("kill: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for len(l.Running()) != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("killed child never reaped")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestKillUnknownPIDErrors(t *testing.T) {
	l := newTestLauncher()
	// The largest pid namespaces allow is well below this.
	if err := l.Kill(1 << 30); err == nil {
		t.Fatalf("signaling a nonexistent pid succeeded")
	}
}
