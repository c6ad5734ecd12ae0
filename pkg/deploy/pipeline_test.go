package deploy

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/netweave/netweave/pkg/generate"
	"github.com/netweave/netweave/pkg/inventory"
)

// stubGenerator fails for device names listed in failFor.
type stubGenerator struct {
	output  string
	failFor map[string]bool
	prompts []string
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	for name := range g.failFor {
		if strings.Contains(prompt, name) {
			return "", &generate.GenerationError{URL: "http://stub", Err: errors.New("backend down")}
		}
	}
	return g.output, nil
}

// recordingDeployer records which devices reached deployment.
type recordingDeployer struct {
	deployed []string
}

func (d *recordingDeployer) Deploy(ctx context.Context, dev inventory.Device, commands []string) Result {
	d.deployed = append(d.deployed, dev.Name)
	return Result{Device: dev.Name, Succeeded: true, Output: "ok"}
}

func threeDevices() []inventory.Device {
	return []inventory.Device{
		{Name: "R1", MgmtIP: "10.0.0.1"},
		{Name: "R2", MgmtIP: "10.0.0.2"},
		{Name: "R3", MgmtIP: "10.0.0.3"},
	}
}

func TestPipelineGenerationFailureDoesNotAbortRun(t *testing.T) {
	gen := &stubGenerator{
		output:  "interface Gi0/1\nno shutdown",
		failFor: map[string]bool{"R2": true},
	}
	deployer := &recordingDeployer{}
	p := &Pipeline{Generator: gen, Deployer: deployer}

	results := p.Run(context.Background(), threeDevices(), "bring up Gi0/1")

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 (R2 skipped)", len(results))
	}
	if results[0].Device != "R1" || results[1].Device != "R3" {
		t.Errorf("results for %s and %s, want R1 and R3", results[0].Device, results[1].Device)
	}
	if len(deployer.deployed) != 2 {
		t.Errorf("deployed to %v, want R1 and R3 only", deployer.deployed)
	}
}

func TestPipelinePromptEmbedsDevice(t *testing.T) {
	gen := &stubGenerator{output: "no shutdown"}
	p := &Pipeline{Generator: gen, Deployer: &recordingDeployer{}}

	devices := []inventory.Device{{Name: "R1", MgmtIP: "10.0.0.1", Description: "core"}}
	p.Run(context.Background(), devices, "enable the uplink")

	if len(gen.prompts) != 1 {
		t.Fatalf("got %d prompts, want 1", len(gen.prompts))
	}
	for _, want := range []string{"R1", "10.0.0.1", "core", "enable the uplink"} {
		if !strings.Contains(gen.prompts[0], want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestPipelineDeclinedConfirmation(t *testing.T) {
	gen := &stubGenerator{output: "interface Gi0/1\nshutdown"}
	deployer := &recordingDeployer{}
	p := &Pipeline{
		Generator: gen,
		Deployer:  deployer,
		Confirm: func(dev inventory.Device, commands []string) bool {
			return dev.Name != "R2"
		},
	}

	results := p.Run(context.Background(), threeDevices(), "shut down Gi0/1")

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if !results[1].Skipped {
		t.Error("declined device not marked skipped")
	}
	if results[1].Succeeded || results[1].Err != "" {
		t.Error("declined confirmation recorded as success or error")
	}
	if len(deployer.deployed) != 2 {
		t.Errorf("deployed to %v, want R1 and R3 only", deployer.deployed)
	}
}

func TestPipelineUnusableGenerationSkipped(t *testing.T) {
	// Nothing but noise: sanitizer leaves an empty command list
	gen := &stubGenerator{output: "# only a comment\n!\n"}
	deployer := &recordingDeployer{}
	p := &Pipeline{Generator: gen, Deployer: deployer}

	results := p.Run(context.Background(), threeDevices(), "anything")

	if len(results) != 0 {
		t.Errorf("got %d results for unusable generation, want 0", len(results))
	}
	if len(deployer.deployed) != 0 {
		t.Errorf("deployed to %v, want none", deployer.deployed)
	}
}

func TestPipelineOrderPreserved(t *testing.T) {
	gen := &stubGenerator{output: "no shutdown"}
	deployer := &recordingDeployer{}
	p := &Pipeline{Generator: gen, Deployer: deployer}

	p.Run(context.Background(), threeDevices(), "anything")

	want := []string{"R1", "R2", "R3"}
	for i, name := range want {
		if deployer.deployed[i] != name {
			t.Fatalf("deployment order %v, want %v", deployer.deployed, want)
		}
	}
}
