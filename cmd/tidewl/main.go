package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/tidewl/tidewl/internal/comp"
	"github.com/tidewl/tidewl/internal/config"
	"github.com/tidewl/tidewl/internal/ipc"
	"github.com/tidewl/tidewl/internal/launch"
	"github.com/tidewl/tidewl/internal/platform"
)

func main() {
	fs := flag.NewFlagSet("tidewl", flag.ContinueOnError)
	startupCmd := fs.String("s", "", "command to run at startup")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [-s startup-command]\n", os.Args[0])
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}
	if fs.NArg() != 0 {
		fs.Usage()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if os.Getenv("TIDEWL_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	bindings, err := cfg.Freeze()
	if err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	launcher := launch.New(logger)

	backend, err := platform.NewBackend()
	if err != nil {
		logger.Error("failed to create backend", "error", err)
		os.Exit(1)
	}

	server := comp.New(backend, bindings, launcher, logger)
	backend.SetHandler(server)

	store := ipc.NewStatusStore()
	server.SetStatusSink(store)
	control, err := ipc.NewServer(store, launcher, logger)
	if err != nil {
		logger.Error("failed to create control socket", "error", err)
		backend.Destroy()
		os.Exit(1)
	}

	// Start tears the session down itself when it fails.
	socket, err := backend.Start()
	if err != nil {
		logger.Error("failed to start backend", "error", err)
		os.Exit(1)
	}

	store.SetSocketName(socket)

	// Children of the launcher find the compositor through this variable.
	if err := os.Setenv("WAYLAND_DISPLAY", socket); err != nil {
		logger.Error("failed to set WAYLAND_DISPLAY", "error", err)
		backend.Destroy()
		os.Exit(1)
	}

	if err := control.Start(); err != nil {
		logger.Error("failed to start control socket", "error", err)
		backend.Destroy()
		os.Exit(1)
	}
	defer control.Stop()

	if *startupCmd != "" {
		launcher.Exec(*startupCmd)
	}

	logger.Info("compositor running", "socket", socket)
	backend.Run()
}
