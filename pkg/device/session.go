// Package device provides the session gateway used to apply configuration to
// network devices over their remote CLI.
//
// The transport is modeled as a capability: a Dialer opens a Session, the
// Session applies command lists or runs read-only commands, and Close is
// best-effort and idempotent. Callers hold exactly one Session per
// deployment and never share or reuse it after Close.
package device

import (
	"context"
	"fmt"

	"github.com/netweave/netweave/pkg/inventory"
)

// Credentials is the per-connection view of an inventory record. It is
// constructed for one connection attempt and never persisted.
type Credentials struct {
	Host         string
	Port         int
	Username     string
	Password     string
	EnableSecret string
}

// CredentialsFor derives connection credentials from an inventory record.
// The enable secret falls back to the login password, matching how the
// inventory stores a single secret per device.
func CredentialsFor(dev inventory.Device) Credentials {
	return Credentials{
		Host:         dev.MgmtIP,
		Port:         22,
		Username:     dev.Username,
		Password:     dev.Password,
		EnableSecret: dev.Password,
	}
}

// Addr returns the dial address.
func (c Credentials) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ConnectionError reports a failed session open: unreachable host, refused
// authentication, or failure to enter privileged mode. No commands were sent.
type ConnectionError struct {
	Host string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connecting to %s: %v", e.Host, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ExecutionError reports a failure after the session was open. The device may
// have applied part of the command list; the transport gives no atomicity.
type ExecutionError struct {
	Err error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("executing commands: %v", e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Session is a live authenticated connection to one device. Privileged mode
// is entered during open, so Apply and Read run with enable rights.
type Session interface {
	// Apply sends the command list as one configuration transaction and
	// returns the device transcript. It does not retry.
	Apply(ctx context.Context, commands []string) (string, error)

	// Read runs a single read-only command and returns its output.
	Read(ctx context.Context, command string) (string, error)

	// Close tears the session down. Idempotent, best-effort, safe on every
	// exit path.
	Close() error
}

// Dialer opens device sessions. The SSH implementation is the production
// transport; tests inject stubs.
type Dialer interface {
	Dial(ctx context.Context, creds Credentials) (Session, error)
}
