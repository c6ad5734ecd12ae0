package main

import (
	"github.com/spf13/cobra"

	"github.com/netweave/netweave/pkg/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List inventory devices",
	Long: `List all devices in the inventory.

Passwords are masked in the output; the inventory file itself is unchanged.

Examples:
  netweave list
  netweave --inventory lab.csv list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t := cli.NewTable("NAME", "MANAGEMENT IP", "USERNAME", "PASSWORD", "DESCRIPTION")
		for _, d := range inv.Devices {
			t.Row(d.Name, d.MgmtIP, d.Username, cli.MaskSecret(d.Password), d.Description)
		}
		t.Flush()
		return nil
	},
}
