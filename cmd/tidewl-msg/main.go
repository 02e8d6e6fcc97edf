package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tidewl/tidewl/internal/ipc"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "status":
		os.Exit(runStatus())
	case "windows":
		os.Exit(runWindows())
	case "exec":
		os.Exit(runExec(os.Args[2:]))
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage(os.Stderr)
		os.Exit(2)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tidewl-msg <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  status              Show compositor status")
	fmt.Fprintln(w, "  windows             List managed windows in focus order")
	fmt.Fprintln(w, "  exec <command...>   Launch a command inside the session")
}

func runStatus() int {
	status, err := ipc.NewClient().Status()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("Running:  %v\n", status.Running)
	fmt.Printf("Socket:   %s\n", status.SocketName)
	fmt.Printf("Windows:  %d\n", status.WindowCount)
	fmt.Printf("Children: %v\n", status.Children)
	fmt.Printf("Uptime:   %ds\n", status.UptimeSeconds)
	return 0
}

func runWindows() int {
	windows, err := ipc.NewClient().Windows()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if len(windows) == 0 {
		fmt.Println("No windows")
		return 0
	}
	for _, w := range windows {
		marker := " "
		if w.Focused {
			marker = "*"
		}
		fmt.Printf("%s %d  %s\n", marker, w.ID, w.Title)
	}
	return 0
}

func runExec(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "exec requires a command")
		return 2
	}

	if err := ipc.NewClient().Exec(strings.Join(args, " ")); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
