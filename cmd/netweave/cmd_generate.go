package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/netweave/netweave/pkg/cli"
	"github.com/netweave/netweave/pkg/deploy"
	"github.com/netweave/netweave/pkg/device"
	"github.com/netweave/netweave/pkg/generate"
	"github.com/netweave/netweave/pkg/inventory"
)

var (
	generateRequirements string
	generateYes          bool
	generateBackendURL   string
	generateModel        string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and deploy configuration from natural language",
	Long: `Generate device configuration from a natural-language requirement.

For each device (all inventory devices, or one with -d), the requirement is
sent to the text-generation backend with the device's identity embedded in
the prompt. The generated text is sanitized into CLI commands, shown, and
deployed after confirmation. One device's failure never stops the run.

Examples:
  netweave generate --requirements "Configure Gi0/1 with 192.168.1.1/24 and enable it"
  netweave -d R1-Core generate --yes
  netweave generate --model llama3 --url http://ollama:11434`,
	RunE: func(cmd *cobra.Command, args []string) error {
		devices := inv.Devices
		if deviceName != "" {
			dev, err := requireDevice()
			if err != nil {
				return err
			}
			devices = []inventory.Device{dev}
		}
		if len(devices) == 0 {
			return fmt.Errorf("inventory is empty")
		}

		if generateRequirements == "" {
			fmt.Println("Enter your network configuration requirements.")
			fmt.Println(`Example: Configure interface GigabitEthernet0/1 with IP 192.168.1.1/24 and enable it`)
			generateRequirements = promptString("Requirements", "")
		}
		if strings.TrimSpace(generateRequirements) == "" {
			return fmt.Errorf("no requirements provided")
		}

		if generateBackendURL == "" {
			generateBackendURL = userSettings.BackendURL
		}
		if generateModel == "" {
			generateModel = userSettings.BackendModel
		}

		pipeline := &deploy.Pipeline{
			Generator: generate.NewClient(generateBackendURL, generateModel),
			Deployer:  &deploy.Orchestrator{Dialer: &device.SSHDialer{}},
			Confirm:   confirmDeployment,
		}

		results := pipeline.Run(context.Background(), devices, generateRequirements)

		fmt.Println()
		if len(results) == 0 {
			fmt.Println("No deployments were attempted.")
			return nil
		}
		for _, r := range results {
			printResult(r)
		}
		return nil
	},
}

// confirmDeployment shows the generated commands and asks for an explicit
// go-ahead. With --yes the prompt is skipped.
func confirmDeployment(dev inventory.Device, commands []string) bool {
	fmt.Printf("\nGenerated configuration for %s:\n", cli.Bold(dev.Name))
	fmt.Println(strings.Repeat("-", 40))
	fmt.Println(strings.Join(commands, "\n"))
	fmt.Println(strings.Repeat("-", 40))
	if generateYes {
		return true
	}
	return promptYesNo(fmt.Sprintf("Apply configuration to %s?", dev.Name))
}

func init() {
	generateCmd.Flags().StringVar(&generateRequirements, "requirements", "", "natural-language configuration requirement")
	generateCmd.Flags().BoolVar(&generateYes, "yes", false, "deploy without per-device confirmation")
	generateCmd.Flags().StringVar(&generateBackendURL, "url", "", "text-generation backend URL (default from settings)")
	generateCmd.Flags().StringVar(&generateModel, "model", "", "text-generation model (default from settings)")
}
