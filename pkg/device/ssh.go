package device

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/netweave/netweave/pkg/util"
)

// SSHDialer opens interactive SSH sessions to device CLIs.
type SSHDialer struct {
	// DialTimeout bounds the TCP+SSH handshake. Zero means 15s.
	DialTimeout time.Duration
	// PromptTimeout bounds each wait for a CLI prompt. Zero means 30s.
	PromptTimeout time.Duration
}

func (d *SSHDialer) dialTimeout() time.Duration {
	if d.DialTimeout > 0 {
		return d.DialTimeout
	}
	return 15 * time.Second
}

func (d *SSHDialer) promptTimeout() time.Duration {
	if d.PromptTimeout > 0 {
		return d.PromptTimeout
	}
	return 30 * time.Second
}

// Dial connects to the device CLI and enters privileged mode. Any failure
// before the session is usable is a ConnectionError; the partial connection
// is torn down before returning.
func (d *SSHDialer) Dial(ctx context.Context, creds Credentials) (Session, error) {
	config := &ssh.ClientConfig{
		User: creds.Username,
		Auth: []ssh.AuthMethod{
			ssh.Password(creds.Password),
		},
		// Device management networks rarely distribute host keys;
		// production deployments would pin them.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         d.dialTimeout(),
	}

	client, err := ssh.Dial("tcp", creds.Addr(), config)
	if err != nil {
		return nil, &ConnectionError{Host: creds.Host, Err: err}
	}

	s := &sshSession{
		client:        client,
		host:          creds.Host,
		promptTimeout: d.promptTimeout(),
		output:        make(chan []byte, 16),
	}
	if err := s.start(ctx, creds.EnableSecret); err != nil {
		s.Close()
		return nil, &ConnectionError{Host: creds.Host, Err: err}
	}
	return s, nil
}

// sshSession drives a device CLI over one interactive SSH channel.
type sshSession struct {
	client        *ssh.Client
	sess          *ssh.Session
	stdin         io.WriteCloser
	host          string
	promptTimeout time.Duration
	output        chan []byte
	closeOnce     sync.Once
}

// start opens the interactive shell, waits for the first prompt, enters
// enable mode, and disables output paging.
func (s *sshSession) start(ctx context.Context, enableSecret string) error {
	sess, err := s.client.NewSession()
	if err != nil {
		return fmt.Errorf("opening channel: %w", err)
	}
	s.sess = sess

	modes := ssh.TerminalModes{
		ssh.ECHO:          0,
		ssh.TTY_OP_ISPEED: 115200,
		ssh.TTY_OP_OSPEED: 115200,
	}
	if err := sess.RequestPty("vt100", 0, 200, modes); err != nil {
		return fmt.Errorf("requesting pty: %w", err)
	}

	stdin, err := sess.StdinPipe()
	if err != nil {
		return err
	}
	s.stdin = stdin

	stdout, err := sess.StdoutPipe()
	if err != nil {
		return err
	}
	if err := sess.Shell(); err != nil {
		return fmt.Errorf("starting shell: %w", err)
	}

	go s.pump(stdout)

	banner, err := s.waitPrompt(ctx)
	if err != nil {
		return fmt.Errorf("waiting for login prompt: %w", err)
	}

	// Unprivileged prompt ends with '>'; escalate before anything else.
	if strings.HasSuffix(strings.TrimSpace(banner), ">") {
		if err := s.send("enable"); err != nil {
			return err
		}
		out, err := s.waitPromptOr(ctx, "assword")
		if err != nil {
			return fmt.Errorf("entering enable mode: %w", err)
		}
		if strings.Contains(out, "assword") {
			if err := s.send(enableSecret); err != nil {
				return err
			}
			out, err = s.waitPrompt(ctx)
			if err != nil {
				return fmt.Errorf("enable authentication: %w", err)
			}
		}
		if !strings.HasSuffix(strings.TrimSpace(out), "#") {
			return fmt.Errorf("enable mode refused")
		}
	}

	if err := s.send("terminal length 0"); err != nil {
		return err
	}
	if _, err := s.waitPrompt(ctx); err != nil {
		return fmt.Errorf("disabling paging: %w", err)
	}
	return nil
}

// pump forwards shell output into the session channel until EOF.
func (s *sshSession) pump(r io.Reader) {
	defer close(s.output)
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			s.output <- chunk
		}
		if err != nil {
			return
		}
	}
}

// send writes one line to the device.
func (s *sshSession) send(line string) error {
	if _, err := io.WriteString(s.stdin, line+"\n"); err != nil {
		return fmt.Errorf("sending %q: %w", line, err)
	}
	return nil
}

// waitPrompt collects output until the device shows a CLI prompt ('#' or '>'
// at end of output) or the prompt timeout elapses.
func (s *sshSession) waitPrompt(ctx context.Context) (string, error) {
	return s.waitPromptOr(ctx, "")
}

func (s *sshSession) waitPromptOr(ctx context.Context, marker string) (string, error) {
	deadline := time.NewTimer(s.promptTimeout)
	defer deadline.Stop()

	var b strings.Builder
	for {
		select {
		case chunk, ok := <-s.output:
			if !ok {
				return b.String(), fmt.Errorf("session closed by device")
			}
			b.Write(chunk)
			out := strings.TrimRight(b.String(), " \t")
			if strings.HasSuffix(out, "#") || strings.HasSuffix(out, ">") {
				return b.String(), nil
			}
			if marker != "" && strings.Contains(out, marker) {
				return b.String(), nil
			}
		case <-ctx.Done():
			return b.String(), ctx.Err()
		case <-deadline.C:
			return b.String(), fmt.Errorf("timed out waiting for device prompt")
		}
	}
}

// Apply enters configuration mode, sends the command list in order, and
// leaves configuration mode. The full transcript is returned even when a
// command fails mid-sequence; the device offers no rollback.
func (s *sshSession) Apply(ctx context.Context, commands []string) (string, error) {
	var transcript strings.Builder

	run := func(line string) error {
		if err := s.send(line); err != nil {
			return err
		}
		out, err := s.waitPrompt(ctx)
		transcript.WriteString(out)
		return err
	}

	if err := run("configure terminal"); err != nil {
		return transcript.String(), &ExecutionError{Err: err}
	}
	for _, cmd := range commands {
		if err := run(cmd); err != nil {
			return transcript.String(), &ExecutionError{Err: err}
		}
	}
	if err := run("end"); err != nil {
		return transcript.String(), &ExecutionError{Err: err}
	}
	return transcript.String(), nil
}

// Read runs a single read-only command in privileged mode.
func (s *sshSession) Read(ctx context.Context, command string) (string, error) {
	if err := s.send(command); err != nil {
		return "", &ExecutionError{Err: err}
	}
	out, err := s.waitPrompt(ctx)
	if err != nil {
		return out, &ExecutionError{Err: err}
	}
	return out, nil
}

// Close tears down the shell and the SSH connection. Safe to call more than
// once and on partially constructed sessions.
func (s *sshSession) Close() error {
	s.closeOnce.Do(func() {
		if s.stdin != nil {
			_ = s.send("exit")
			s.stdin.Close()
		}
		if s.sess != nil {
			if err := s.sess.Close(); err != nil && err != io.EOF {
				util.Debugf("closing SSH channel to %s: %v", s.host, err)
			}
		}
		if err := s.client.Close(); err != nil {
			util.Debugf("closing SSH connection to %s: %v", s.host, err)
		}
	})
	return nil
}
