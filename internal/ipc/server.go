package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"sync"

	"github.com/tidewl/tidewl/internal/runtimepath"
)

// Launcher is what the server needs from the process launcher: spawning
// on behalf of EXEC, and the live child pids for GET_STATUS.
type Launcher interface {
	Exec(command string)
	Running() []int
}

// Server answers control-socket requests. It runs on its own goroutines
// and reads only the StatusStore snapshot, so it never races the event
// loop.
type Server struct {
	log        *slog.Logger
	socketPath string
	listener   net.Listener
	store      *StatusStore
	launcher   Launcher

	shuttingDown bool
	shutdownMu   sync.Mutex
}

// NewServer creates a control-socket server. The socket is not opened
// until Start.
func NewServer(store *StatusStore, launcher Launcher, log *slog.Logger) (*Server, error) {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve control socket path: %w", err)
	}

	// A stale socket from a previous run would block the listen.
	os.Remove(socketPath)

	return &Server{
		log:        log,
		socketPath: socketPath,
		store:      store,
		launcher:   launcher,
	}, nil
}

// Start opens the socket and begins accepting connections.
func (s *Server) Start() error {
	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create control socket: %w", err)
	}
	s.listener = listener

	if err := os.Chmod(s.socketPath, 0600); err != nil {
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	s.log.Info("control socket listening", "path", s.socketPath)
	go s.acceptLoop()
	return nil
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.shutdownMu.Lock()
			if s.shuttingDown {
				s.shutdownMu.Unlock()
				return
			}
			s.shutdownMu.Unlock()
			s.log.Warn("control socket accept error", "error", err)
			continue
		}

		go s.handleConnection(conn)
	}
}

// handleConnection serves one request per connection, newline-framed JSON
// both ways.
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	data, err := reader.ReadBytes('\n')
	if err != nil && err != io.EOF {
		s.log.Warn("control socket read error", "error", err)
		return
	}

	req, err := ParseRequest(data)
	if err != nil {
		s.sendError(conn, fmt.Sprintf("invalid request: %v", err))
		return
	}

	resp := s.handleCommand(req)
	respData, err := resp.Marshal()
	if err != nil {
		s.log.Warn("failed to marshal response", "error", err)
		return
	}

	respData = append(respData, '\n')
	if _, err := conn.Write(respData); err != nil {
		s.log.Warn("failed to send response", "error", err)
	}
}

func (s *Server) handleCommand(req *Request) *Response {
	switch req.Command {
	case CommandGetStatus:
		return s.handleGetStatus()
	case CommandListWindows:
		return s.handleListWindows()
	case CommandExec:
		return s.handleExec(req.Payload)
	default:
		return NewErrorResponse(fmt.Sprintf("unknown command: %s", req.Command))
	}
}

func (s *Server) handleGetStatus() *Response {
	status := StatusData{
		SocketName:    s.store.SocketName(),
		WindowCount:   len(s.store.Windows()),
		Children:      s.launcher.Running(),
		UptimeSeconds: int64(s.store.Uptime().Seconds()),
		Running:       true,
	}

	resp, _ := NewOKResponse(status)
	return resp
}

func (s *Server) handleListWindows() *Response {
	windows := s.store.Windows()
	entries := make([]WindowEntry, len(windows))
	for i, w := range windows {
		entries[i] = WindowEntry{
			ID:      w.ID,
			Title:   w.Title,
			Focused: i == 0,
		}
	}

	resp, _ := NewOKResponse(WindowsData{Windows: entries})
	return resp
}

func (s *Server) handleExec(payload json.RawMessage) *Response {
	var req ExecPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return NewErrorResponse(fmt.Sprintf("invalid exec payload: %v", err))
	}
	if req.Command == "" {
		return NewErrorResponse("command is required")
	}

	s.launcher.Exec(req.Command)
	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) sendError(conn net.Conn, errMsg string) {
	data, _ := NewErrorResponse(errMsg).Marshal()
	data = append(data, '\n')
	conn.Write(data)
}

// Stop closes the socket and unlinks it.
func (s *Server) Stop() {
	s.shutdownMu.Lock()
	s.shuttingDown = true
	s.shutdownMu.Unlock()

	if s.listener != nil {
		s.listener.Close()
	}
	os.Remove(s.socketPath)
}
