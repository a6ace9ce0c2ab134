//go:build !windows
// +build !windows

package ssh

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"
)

func TestClientArgs(t *testing.T) {
	s := &SSHServer{}
	assert.Equal(t, []string{"--player", "tester"}, s.ClientArgs("te ster"))

	s.ConfigPath = "/etc/stackerterm.yaml"
	assert.Equal(t, []string{"--player", "tester", "--config", "/etc/stackerterm.yaml"}, s.ClientArgs("tester"))
}

func TestListenAndServeRequiresFields(t *testing.T) {
	assert.Error(t, (&SSHServer{Binary: "/bin/echo"}).ListenAndServe())
	assert.Error(t, (&SSHServer{ListenAddress: "127.0.0.1:0"}).ListenAndServe())
}

func startTestServer(t *testing.T, s *SSHServer) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	served := make(chan error, 1)
	go func() {
		served <- s.Serve(l)
	}()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		s.Shutdown(ctx)
		<-served
	})

	return l.Addr().String()
}

func dial(t *testing.T, address string) *gossh.Session {
	t.Helper()

	client, err := gossh.Dial("tcp", address, &gossh.ClientConfig{
		User:            "tester",
		Auth:            []gossh.AuthMethod{gossh.Password("anything")},
		HostKeyCallback: gossh.InsecureIgnoreHostKey(),
		Timeout:         5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	session, err := client.NewSession()
	require.NoError(t, err)

	return session
}

func TestSessionRunsClient(t *testing.T) {
	address := startTestServer(t, &SSHServer{Binary: "/bin/echo", ConfigPath: "/tmp/stackerterm.yaml"})

	session := dial(t, address)

	var out bytes.Buffer
	session.Stdout = &out

	require.NoError(t, session.RequestPty("xterm", 24, 80, gossh.TerminalModes{}))
	require.NoError(t, session.Shell())
	require.NoError(t, session.Wait())

	assert.Contains(t, out.String(), "--player tester --config /tmp/stackerterm.yaml")
}

func TestSessionRequiresPty(t *testing.T) {
	address := startTestServer(t, &SSHServer{Binary: "/bin/echo"})

	session := dial(t, address)

	var out bytes.Buffer
	session.Stdout = &out

	require.NoError(t, session.Shell())

	err := session.Wait()
	var exitErr *gossh.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitStatus())
	assert.Contains(t, out.String(), "non-interactive terminals are not supported")
}

func TestSessionWindowChange(t *testing.T) {
	client := filepath.Join(t.TempDir(), "client.sh")
	require.NoError(t, os.WriteFile(client, []byte("#!/bin/sh\nsleep 0.5\nstty size\n"), 0755))

	address := startTestServer(t, &SSHServer{Binary: client})

	session := dial(t, address)

	var out bytes.Buffer
	session.Stdout = &out

	require.NoError(t, session.RequestPty("xterm", 24, 80, gossh.TerminalModes{}))
	require.NoError(t, session.Shell())
	require.NoError(t, session.WindowChange(40, 100))
	require.NoError(t, session.Wait())

	assert.Contains(t, out.String(), "40 100")
}
