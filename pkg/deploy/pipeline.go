package deploy

import (
	"context"

	"github.com/netweave/netweave/pkg/generate"
	"github.com/netweave/netweave/pkg/inventory"
	"github.com/netweave/netweave/pkg/util"
)

// Generator produces configuration text from a prompt. Satisfied by
// *generate.Client; tests inject stubs.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Deployer applies a command list to one device. Satisfied by *Orchestrator.
type Deployer interface {
	Deploy(ctx context.Context, dev inventory.Device, commands []string) Result
}

// ConfirmFunc decides whether generated commands may be deployed to dev.
// Returning false is a normal outcome, not an error.
type ConfirmFunc func(dev inventory.Device, commands []string) bool

// Pipeline runs the generate → sanitize → confirm → deploy sequence across an
// inventory, one device at a time, in inventory order. No state is shared
// between devices; a single device's failure never aborts the run.
type Pipeline struct {
	Generator Generator
	Deployer  Deployer
	Confirm   ConfirmFunc
}

// Run processes each device in order and returns the deployment results.
// Devices whose generation fails or produces no usable commands are skipped
// without a result; devices whose confirmation is declined record a skipped
// result.
func (p *Pipeline) Run(ctx context.Context, devices []inventory.Device, requirements string) []Result {
	var results []Result
	for _, dev := range devices {
		log := util.WithDevice(dev.Name)

		text, err := p.Generator.Generate(ctx, generate.BuildPrompt(dev, requirements))
		if err != nil {
			log.Warnf("skipping device, generation failed: %v", err)
			continue
		}

		commands := generate.Sanitize(text)
		if len(commands) == 0 {
			log.Warn("skipping device, no valid configuration commands generated")
			continue
		}
		log.Infof("generated %d configuration commands", len(commands))

		if p.Confirm != nil && !p.Confirm(dev, commands) {
			log.Info("deployment declined, commands not applied")
			results = append(results, Result{Device: dev.Name, Skipped: true})
			continue
		}

		results = append(results, p.Deployer.Deploy(ctx, dev, commands))
	}
	return results
}
