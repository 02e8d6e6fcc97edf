// Package launch runs external programs on behalf of keybindings and the
// startup command. Children inherit the compositor's environment (so
// WAYLAND_DISPLAY propagates) and stdio; the caller never waits on them,
// but every child is tracked and reaped so none is left as a zombie.
package launch

import (
	"log/slog"
	"os"
	"os/exec"
	"sort"
	"sync"

	"golang.org/x/sys/unix"
)

// Launcher spawns and reaps shell commands. Safe for concurrent use.
type Launcher struct {
	log *slog.Logger

	mu      sync.Mutex
	running map[int]string
}

// New creates a Launcher logging through log.
func New(log *slog.Logger) *Launcher {
	return &Launcher{
		log:     log,
		running: make(map[int]string),
	}
}

// Exec starts command via /bin/sh -c and returns immediately. Launch
// failures are logged, not reported: a keybinding with a bad command must
// not disturb the event loop.
func (l *Launcher) Exec(command string) {
	cmd := exec.Command("/bin/sh", "-c", command)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		l.log.Warn("failed to launch command", "command", command, "error", err)
		return
	}

	pid := cmd.Process.Pid
	l.mu.Lock()
	l.running[pid] = command
	l.mu.Unlock()
	l.log.Debug("launched command", "command", command, "pid", pid)

	// Reap asynchronously. Wait collects the exit status, so the child
	// never lingers as a zombie regardless of how it terminates.
	go func() {
		err := cmd.Wait()
		l.mu.Lock()
		delete(l.running, pid)
		l.mu.Unlock()
		if err != nil {
			l.log.Debug("command exited", "command", command, "pid", pid, "error", err)
		}
	}()
}

// Running returns the pids of children that have not exited yet, sorted.
func (l *Launcher) Running() []int {
	l.mu.Lock()
	defer l.mu.Unlock()

	pids := make([]int, 0, len(l.running))
	for pid := range l.running {
		pids = append(pids, pid)
	}
	sort.Ints(pids)
	return pids
}

// Kill delivers a non-negotiated termination signal to pid. Best-effort:
// whether the target actually exits is not detected or reported.
func (l *Launcher) Kill(pid int) error {
	return unix.Kill(pid, unix.SIGKILL)
}
