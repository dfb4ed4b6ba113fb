package main

import (
	"fmt"
	"os"
	"strings"

	"jarvis/internal/ipc"
)

func main() {
	cmd := "trigger"
	arg := ""
	if args := os.Args[1:]; len(args) > 0 {
		cmd = args[0]
		arg = strings.Join(args[1:], " ")
	}

	sock := os.Getenv("JARVIS_SOCKET")
	if sock == "" {
		sock = ipc.DefaultSocketPath
	}

	if err := ipc.SendCommand(sock, cmd, arg); err != nil {
		fmt.Println("jarvis not running:", err)
	}
}
