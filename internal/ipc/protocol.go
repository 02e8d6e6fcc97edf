// Package ipc implements the control socket: a line-delimited JSON
// request/response protocol over a unix socket. The server never touches
// compositor state directly; it reads published snapshots and drives the
// process launcher, both of which are safe off the event loop.
package ipc

import (
	"encoding/json"
	"fmt"
)

// CommandType names a control-socket command.
type CommandType string

const (
	CommandGetStatus   CommandType = "GET_STATUS"
	CommandListWindows CommandType = "LIST_WINDOWS"
	CommandExec        CommandType = "EXEC"
)

// Request is a client-to-server message.
type Request struct {
	Command CommandType     `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response is a server-to-client message. Status is "OK" or "ERROR".
type Response struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// StatusData is the GET_STATUS payload. Children are the pids of spawned
// programs that have not exited yet.
type StatusData struct {
	SocketName    string `json:"socket_name"`
	WindowCount   int    `json:"window_count"`
	Children      []int  `json:"children"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Running       bool   `json:"running"`
}

// WindowEntry describes one managed window in focus order.
type WindowEntry struct {
	ID      uint32 `json:"id"`
	Title   string `json:"title"`
	Focused bool   `json:"focused"`
}

// WindowsData is the LIST_WINDOWS payload, most recently focused first.
type WindowsData struct {
	Windows []WindowEntry `json:"windows"`
}

// ExecPayload is the EXEC request payload.
type ExecPayload struct {
	Command string `json:"command"`
}

// NewOKResponse builds a successful response wrapping data.
func NewOKResponse(data interface{}) (*Response, error) {
	var dataBytes json.RawMessage
	if data != nil {
		bytes, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response data: %w", err)
		}
		dataBytes = bytes
	}

	return &Response{
		Status: "OK",
		Data:   dataBytes,
	}, nil
}

// NewErrorResponse builds an error response.
func NewErrorResponse(errMsg string) *Response {
	return &Response{
		Status: "ERROR",
		Error:  errMsg,
	}
}

// ParseRequest decodes a request from JSON bytes.
func ParseRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}
	return &req, nil
}

// Marshal encodes the response to JSON bytes.
func (r *Response) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
