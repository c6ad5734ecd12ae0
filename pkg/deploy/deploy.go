// Package deploy drives configuration command lists onto devices and
// aggregates per-device outcomes.
package deploy

import (
	"context"

	"github.com/netweave/netweave/pkg/device"
	"github.com/netweave/netweave/pkg/inventory"
	"github.com/netweave/netweave/pkg/util"
)

// Result is the outcome of one deployment attempt. It is created once per
// device per run and never mutated afterwards.
type Result struct {
	Device    string
	Succeeded bool
	// Skipped marks a device whose commands were produced but not deployed
	// (declined confirmation). Neither a success nor a failure.
	Skipped bool
	Output  string
	Err     string
}

// Orchestrator applies a command list to a single device through the session
// gateway. It owns the session for exactly one deployment: open, apply,
// close, in that order, with close guaranteed on every exit path.
type Orchestrator struct {
	Dialer device.Dialer
}

// Deploy connects to dev and applies commands as one transaction.
//
// An empty command list is a valid no-op deployment: no session is opened and
// the result reports success with empty output. A connection failure reports
// failure without any command having been sent; an execution failure reports
// failure, but the device may have applied part of the list (the transport
// guarantees no atomicity).
func (o *Orchestrator) Deploy(ctx context.Context, dev inventory.Device, commands []string) Result {
	log := util.WithDevice(dev.Name)

	if len(commands) == 0 {
		log.Debug("empty command list, nothing to deploy")
		return Result{Device: dev.Name, Succeeded: true}
	}

	log.Infof("connecting to %s", dev.MgmtIP)
	sess, err := o.Dialer.Dial(ctx, device.CredentialsFor(dev))
	if err != nil {
		log.Warnf("connection failed: %v", err)
		return Result{Device: dev.Name, Err: err.Error()}
	}
	defer sess.Close()

	log.Infof("applying %d commands", len(commands))
	output, err := sess.Apply(ctx, commands)
	if err != nil {
		log.Warnf("apply failed: %v", err)
		return Result{Device: dev.Name, Output: output, Err: err.Error()}
	}

	log.Info("configuration applied")
	return Result{Device: dev.Name, Succeeded: true, Output: output}
}
