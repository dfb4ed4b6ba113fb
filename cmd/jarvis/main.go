package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	cli "github.com/spf13/pflag"

	"github.com/lmittmann/tint"
	log "log/slog"

	"jarvis/internal/actions"
	"jarvis/internal/assistant"
	"jarvis/internal/intent"
	"jarvis/internal/ipc"
	"jarvis/internal/notes"
	"jarvis/internal/notify"
	"jarvis/internal/platform"
	"jarvis/internal/proxy"
	"jarvis/internal/remind"
	"jarvis/internal/stt"
	"jarvis/internal/tts"
	"jarvis/internal/wiki"
)

var logLevelMap = map[string]log.Level{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

func main() {
	envFile := cli.StringP("env", "e", ".env", "Env file path")
	socket := cli.StringP("socket", "s", "", "Control socket path")
	logLevel := cli.StringP("log", "l", "info", "Log level")
	cli.Parse()

	log.SetDefault(log.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: logLevelMap[*logLevel],
	})))

	log.Info("Booting up")

	godotenv.Load(*envFile)
	cfg := loadConfig(*socket)

	caps := platform.Detect()
	log.Info("Capabilities",
		"tts", caps.TTS, "stt", caps.STT, "open", caps.Open,
		"sms", caps.SMS, "call", caps.Call)

	speaker := tts.New(caps)
	listener := stt.New(caps)
	store := notes.NewStore(cfg.NotesDir)
	act := actions.New(caps)

	scheduler := remind.NewScheduler(speaker.Say)
	defer scheduler.Shutdown()

	httpClient, err := proxy.NewClient(cfg.Proxy, 15*time.Second)
	if err != nil {
		log.Error("Failed to dial socks proxy", "proxy", cfg.Proxy, "err", err)
		os.Exit(1)
	}
	summarizer := wiki.NewClient(httpClient)

	shutdown := func(farewell string) {
		speaker.SayWait(farewell)
		os.Remove(cfg.Socket)
		os.Exit(0)
	}

	dispatcher := intent.NewDispatcher(intent.Deps{
		Speaker:   speaker,
		Listener:  listener,
		Notes:     store,
		Reminders: scheduler,
		Actions:   act,
		Wiki:      summarizer,
		// Farewell is spoken by the stop rule itself.
		Exit: func() {
			os.Remove(cfg.Socket)
			os.Exit(0)
		},
	})

	asst := assistant.New(assistant.Config{
		WakeWords: cfg.WakeWords,
		Names:     cfg.Names,
	}, speaker, listener, dispatcher, notify.Chime)

	if err := ipc.StartServer(cfg.Socket, func(msg ipc.ControlMessage) {
		switch msg.Cmd {
		case "trigger":
			asst.Trigger()
		case "say":
			speaker.Say(msg.Arg)
		case "stop":
			shutdown("Goodbye! Stopping assistant.")
		default:
			log.Warn("Unknown command", "cmd", msg.Cmd)
		}
	}); err != nil {
		log.Error("Failed ipc server", "err", err)
		os.Exit(1)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		shutdown("Assistant stopped by user.")
	}()

	log.Info("Boot up - successful")

	asst.Run(context.Background())
}
