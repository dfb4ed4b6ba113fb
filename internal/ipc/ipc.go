package ipc

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
)

const DefaultSocketPath = "/tmp/jarvis.sock"

// ControlMessage is one command sent over the control socket.
// Known commands: "trigger" (engage without the wake word), "say"
// (speak Arg), "stop" (graceful shutdown).
type ControlMessage struct {
	Cmd string `json:"cmd"`
	Arg string `json:"arg,omitempty"`
}

// StartServer listens on the unix socket and invokes handler for every
// decoded message. A stale socket from a previous run is removed first.
func StartServer(path string, handler func(ControlMessage)) error {
	os.Remove(path)

	ln, err := net.Listen("unix", path)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				continue
			}
			go handleConn(conn, handler)
		}
	}()

	return nil
}

func handleConn(conn net.Conn, handler func(ControlMessage)) {
	defer conn.Close()

	var msg ControlMessage
	dec := json.NewDecoder(conn)
	if err := dec.Decode(&msg); err != nil {
		return
	}
	handler(msg)
}

// SendCommand connects to a running daemon and delivers one command.
func SendCommand(path, cmd, arg string) error {
	conn, err := net.Dial("unix", path)
	if err != nil {
		return err
	}
	defer conn.Close()

	enc := json.NewEncoder(conn)
	return enc.Encode(ControlMessage{Cmd: cmd, Arg: arg})
}
