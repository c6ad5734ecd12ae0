package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/netweave/netweave/pkg/cli"
	"github.com/netweave/netweave/pkg/deploy"
	"github.com/netweave/netweave/pkg/device"
	"github.com/netweave/netweave/pkg/render"
)

var (
	configureAction    string
	configureInterface string
	configureIP        string
	configureMask      string
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Render and deploy an interface configuration",
	Long: `Render a fixed interface-configuration template and deploy it.

Actions:
  create - assign an IP address to an interface and enable it
  delete - remove the address and disable the interface

Missing values are prompted for. Requires -d (device) flag.

Examples:
  netweave -d R1-Core configure --action create --interface Gi0/1 --ip 10.0.0.1 --mask 255.255.255.0
  netweave -d R1-Core configure --action delete --interface Gi0/1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := requireDevice()
		if err != nil {
			return err
		}

		if configureAction == "" {
			configureAction = promptString("Action (create/delete)", "create")
		}
		intent := render.Intent(configureAction)
		if intent != render.Create && intent != render.Delete {
			return fmt.Errorf("unknown action %q: use create or delete", configureAction)
		}

		if configureInterface == "" {
			configureInterface = promptString("Interface name", "GigabitEthernet2")
		}
		if intent == render.Create {
			if configureIP == "" {
				configureIP = promptString("IP address", "")
			}
			if configureMask == "" {
				configureMask = promptString("Subnet mask", "255.255.255.0")
			}
		}

		commands, err := render.Render(render.Params{
			Intent:     intent,
			Interface:  configureInterface,
			IPAddress:  configureIP,
			SubnetMask: configureMask,
		})
		if err != nil {
			return err
		}

		fmt.Printf("\nSending configuration to %s:\n", cli.Bold(dev.Name))
		fmt.Println(strings.Join(commands, "\n"))

		orch := &deploy.Orchestrator{Dialer: &device.SSHDialer{}}
		result := orch.Deploy(context.Background(), dev, commands)
		printResult(result)
		if !result.Succeeded {
			return fmt.Errorf("deployment to %s failed", dev.Name)
		}
		return nil
	},
}

func printResult(r deploy.Result) {
	switch {
	case r.Skipped:
		fmt.Printf("%s %s: commands produced but not deployed\n", cli.Yellow("skipped"), r.Device)
	case r.Succeeded:
		fmt.Printf("%s %s\n", cli.Green("deployed"), r.Device)
		if r.Output != "" {
			fmt.Println(r.Output)
		}
	default:
		fmt.Printf("%s %s: %s\n", cli.Red("failed"), r.Device, r.Err)
		if r.Output != "" {
			fmt.Println(r.Output)
		}
	}
}

func init() {
	configureCmd.Flags().StringVar(&configureAction, "action", "", "create or delete")
	configureCmd.Flags().StringVar(&configureInterface, "interface", "", "interface to configure")
	configureCmd.Flags().StringVar(&configureIP, "ip", "", "IP address (create)")
	configureCmd.Flags().StringVar(&configureMask, "mask", "", "subnet mask (create)")
}
