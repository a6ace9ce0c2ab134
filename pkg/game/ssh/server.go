//go:build !windows
// +build !windows

// Package ssh serves the terminal client to remote players. Each session
// runs its own client process on a pseudo-terminal.
package ssh

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"
	"github.com/fatih/color"
	"github.com/gliderlabs/ssh"
	"github.com/qnkhuat/stackerterm/pkg/game"
	"go.uber.org/zap"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
)

type SSHServer struct {
	ListenAddress string
	// Binary is the path of the stackerterm client.
	Binary string
	// ConfigPath is passed to every client when set.
	ConfigPath string
	// HostKeyFile is optional. A key is generated on startup without it.
	HostKeyFile string
	IdleTimeout time.Duration

	Logger *zap.Logger

	server *ssh.Server
	mu     sync.Mutex
}

func setWinsize(f *os.File, w, h int) error {
	return pty.Setsize(f, &pty.Winsize{Rows: uint16(h), Cols: uint16(w)})
}

// ClientArgs returns the command line used to start the client for user.
func (s *SSHServer) ClientArgs(user string) []string {
	args := []string{"--player", game.Nickname(user)}
	if s.ConfigPath != "" {
		args = append(args, "--config", s.ConfigPath)
	}

	return args
}

func (s *SSHServer) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}

	return s.Logger
}

func (s *SSHServer) handleSession(sshSession ssh.Session) {
	log := s.logger().With(zap.String("user", sshSession.User()), zap.Stringer("remote", sshSession.RemoteAddr()))

	ptyReq, winCh, isPty := sshSession.Pty()
	if !isPty {
		errColor := color.New(color.FgRed)
		errColor.EnableColor()
		errColor.Fprintln(sshSession, "failed to start stackerterm: non-interactive terminals are not supported")

		log.Info("rejected session without pty")
		sshSession.Exit(1)
		return
	}

	cmdCtx, cancelCmd := context.WithCancel(sshSession.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.Binary, s.ClientArgs(sshSession.User())...)
	cmd.Env = append(os.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.Start(cmd)
	if err != nil {
		log.Error("failed to start client", zap.Error(err))
		io.WriteString(sshSession, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sshSession.Exit(1)
		return
	}

	setWinsize(f, ptyReq.Window.Width, ptyReq.Window.Height)

	log.Info("session started", zap.String("term", ptyReq.Term))

	// The resize loop must exit before the pty is closed.
	stopResize := make(chan struct{})
	resizeDone := make(chan struct{})
	defer func() {
		close(stopResize)
		<-resizeDone
		f.Close()
	}()

	go func() {
		defer close(resizeDone)

		for {
			select {
			case <-stopResize:
				return
			case win, ok := <-winCh:
				if !ok {
					return
				}
				if err := setWinsize(f, win.Width, win.Height); err != nil {
					log.Debug("failed to resize pty", zap.Error(err))
				}
			}
		}
	}()

	go func() {
		io.Copy(f, sshSession)
	}()
	io.Copy(sshSession, f)

	cancelCmd()
	err = cmd.Wait()

	log.Info("session ended", zap.Error(err))
}

func (s *SSHServer) newServer() (*ssh.Server, error) {
	if s.Binary == "" {
		return nil, errors.New("SSH server Binary must be specified")
	}

	idle := s.IdleTimeout
	if idle == 0 {
		idle = ServerIdleTimeout
	}

	server := &ssh.Server{
		Addr:        s.ListenAddress,
		IdleTimeout: idle,
		Handler:     s.handleSession,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	if s.HostKeyFile != "" {
		if err := server.SetOption(ssh.HostKeyFile(s.HostKeyFile)); err != nil {
			return nil, fmt.Errorf("failed to load host key: %w", err)
		}
	}

	return server, nil
}

func (s *SSHServer) ListenAndServe() error {
	if s.ListenAddress == "" {
		return errors.New("SSH server ListenAddress must be specified")
	}

	l, err := net.Listen("tcp", s.ListenAddress)
	if err != nil {
		return err
	}

	return s.Serve(l)
}

// Serve accepts sessions on l until Shutdown is called.
func (s *SSHServer) Serve(l net.Listener) error {
	server, err := s.newServer()
	if err != nil {
		l.Close()
		return err
	}

	s.mu.Lock()
	s.server = server
	s.mu.Unlock()

	s.logger().Info("listening", zap.Stringer("address", l.Addr()))

	err = server.Serve(l)
	if errors.Is(err, ssh.ErrServerClosed) {
		return nil
	}

	return err
}

func (s *SSHServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	server := s.server
	s.mu.Unlock()

	if server == nil {
		return nil
	}

	return server.Shutdown(ctx)
}
