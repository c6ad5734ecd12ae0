package deploy

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/netweave/netweave/pkg/device"
	"github.com/netweave/netweave/pkg/inventory"
)

// stubSession counts calls so tests can verify the gateway lifecycle.
type stubSession struct {
	applyErr   error
	applyOut   string
	applyCalls int
	closeCalls int
}

func (s *stubSession) Apply(ctx context.Context, commands []string) (string, error) {
	s.applyCalls++
	return s.applyOut, s.applyErr
}

func (s *stubSession) Read(ctx context.Context, command string) (string, error) {
	return "", nil
}

func (s *stubSession) Close() error {
	s.closeCalls++
	return nil
}

type stubDialer struct {
	session   *stubSession
	dialErr   error
	dialCalls int
}

func (d *stubDialer) Dial(ctx context.Context, creds device.Credentials) (device.Session, error) {
	d.dialCalls++
	if d.dialErr != nil {
		return nil, d.dialErr
	}
	return d.session, nil
}

var testDevice = inventory.Device{
	Name:     "R1-Core",
	MgmtIP:   "10.0.0.1",
	Username: "admin",
	Password: "x",
}

func TestDeployConnectFailed(t *testing.T) {
	dialer := &stubDialer{
		session: &stubSession{},
		dialErr: &device.ConnectionError{Host: "10.0.0.1", Err: errors.New("connection refused")},
	}
	orch := &Orchestrator{Dialer: dialer}

	r := orch.Deploy(context.Background(), testDevice, []string{"interface Gi0/1"})

	if r.Succeeded {
		t.Error("Deploy() succeeded despite connection failure")
	}
	if !strings.Contains(r.Err, "10.0.0.1") {
		t.Errorf("error %q does not carry the host", r.Err)
	}
	if dialer.session.applyCalls != 0 {
		t.Errorf("apply called %d times after connect failure, want 0", dialer.session.applyCalls)
	}
}

func TestDeployApplyFailed(t *testing.T) {
	sess := &stubSession{
		applyOut: "partial output",
		applyErr: &device.ExecutionError{Err: errors.New("invalid input detected")},
	}
	orch := &Orchestrator{Dialer: &stubDialer{session: sess}}

	r := orch.Deploy(context.Background(), testDevice, []string{"interface Gi0/1"})

	if r.Succeeded {
		t.Error("Deploy() succeeded despite apply failure")
	}
	if r.Err == "" {
		t.Error("result missing error message")
	}
	// No atomicity: the partially observed transcript is still reported
	if r.Output != "partial output" {
		t.Errorf("Output = %q, want partial transcript", r.Output)
	}
	if sess.closeCalls != 1 {
		t.Errorf("close called %d times, want exactly 1", sess.closeCalls)
	}
}

func TestDeploySucceeded(t *testing.T) {
	sess := &stubSession{applyOut: "config applied"}
	orch := &Orchestrator{Dialer: &stubDialer{session: sess}}

	r := orch.Deploy(context.Background(), testDevice, []string{"interface Gi0/1", "no shutdown"})

	if !r.Succeeded {
		t.Fatalf("Deploy() failed: %s", r.Err)
	}
	if r.Output != "config applied" {
		t.Errorf("Output = %q", r.Output)
	}
	if r.Device != "R1-Core" {
		t.Errorf("Device = %q", r.Device)
	}
	if sess.applyCalls != 1 {
		t.Errorf("apply called %d times, want 1", sess.applyCalls)
	}
	if sess.closeCalls != 1 {
		t.Errorf("close called %d times, want exactly 1", sess.closeCalls)
	}
}

func TestDeployEmptyCommandList(t *testing.T) {
	sess := &stubSession{}
	dialer := &stubDialer{session: sess}
	orch := &Orchestrator{Dialer: dialer}

	r := orch.Deploy(context.Background(), testDevice, nil)

	if !r.Succeeded {
		t.Errorf("empty deployment failed: %s", r.Err)
	}
	if r.Output != "" {
		t.Errorf("Output = %q, want empty", r.Output)
	}
	if dialer.dialCalls != 0 {
		t.Errorf("dial called %d times for empty command list, want 0", dialer.dialCalls)
	}
	if sess.applyCalls != 0 {
		t.Errorf("apply called %d times for empty command list, want 0", sess.applyCalls)
	}
}
