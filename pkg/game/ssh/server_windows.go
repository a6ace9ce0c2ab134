//go:build windows
// +build windows

package ssh

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/qnkhuat/stackerterm/pkg/game"
	"go.uber.org/zap"
)

// SSH server is unsupported on Windows

var errUnsupported = errors.New("SSH server is not supported on Windows")

type SSHServer struct {
	ListenAddress string
	Binary        string
	ConfigPath    string
	HostKeyFile   string
	IdleTimeout   time.Duration

	Logger *zap.Logger
}

func (s *SSHServer) ClientArgs(user string) []string {
	return []string{"--player", game.Nickname(user)}
}

func (s *SSHServer) ListenAndServe() error {
	return errUnsupported
}

func (s *SSHServer) Serve(l net.Listener) error {
	l.Close()
	return errUnsupported
}

func (s *SSHServer) Shutdown(ctx context.Context) error {
	return nil
}
