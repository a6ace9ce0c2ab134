package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/qnkhuat/stackerterm/pkg/game/ssh"
	"github.com/qnkhuat/stackerterm/pkg/logger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var (
	listenAddressSSH  string
	stackertermBinary string
	configPath        string
	hostKeyFile       string
	debugAddress      string

	logDebug bool

	done = make(chan bool)
)

func init() {
	log.SetFlags(0)

	flag.StringVar(&listenAddressSSH, "listen-ssh", ":2222", "host SSH server on network address")
	flag.StringVar(&stackertermBinary, "client", "", "path to stackerterm client (default: stackerterm in PATH)")
	flag.StringVar(&configPath, "config", "", "configuration file passed to every client")
	flag.StringVar(&hostKeyFile, "host-key", "", "path to SSH host key (default: generated on startup)")
	flag.StringVar(&debugAddress, "debug-address", "", "address to serve debug info")
	flag.BoolVar(&logDebug, "debug", false, "enable debug logging")
}

func main() {
	flag.Parse()

	opts := logger.DefaultOptions()
	if logDebug {
		opts.Level = "debug"
	}

	zlog, err := logger.NewConsole(opts, os.Stderr)
	if err != nil {
		log.Fatalf("failed to initialize logger: %s", err)
	}
	defer zlog.Sync()

	if stackertermBinary == "" {
		stackertermBinary, err = exec.LookPath("stackerterm")
		if err != nil {
			log.Fatal("stackerterm client not found, specify it with --client")
		}
	}

	if debugAddress != "" {
		go func() {
			log.Fatal(http.ListenAndServe(debugAddress, nil))
		}()
	}

	server := &ssh.SSHServer{
		ListenAddress: listenAddressSSH,
		Binary:        stackertermBinary,
		ConfigPath:    configPath,
		HostKeyFile:   hostKeyFile,
		Logger:        zlog,
	}

	color.New(color.FgYellow, color.Bold).Fprintf(os.Stderr, "stackerterm server on %s\n", listenAddressSSH)
	color.New(color.Faint).Fprintf(os.Stderr, "connect with: ssh -p <port> <name>@<host>\n")

	go func() {
		if err := server.ListenAndServe(); err != nil {
			zlog.Fatal("failed to serve", zap.Error(err))
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		<-sigc

		done <- true
	}()

	<-done

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zlog.Warn("failed to shut down cleanly", zap.Error(err))
	}
	zlog.Info("stopped")
}
