package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netweave/netweave/pkg/device"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show interface status on a device",
	Long: `Run "show ip interface brief" on a device and print the output.

Requires -d (device) flag.

Examples:
  netweave -d R1-Core show`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := requireDevice()
		if err != nil {
			return err
		}

		ctx := context.Background()
		dialer := &device.SSHDialer{}

		fmt.Printf("Connecting to %s (%s)...\n", dev.Name, dev.MgmtIP)
		sess, err := dialer.Dial(ctx, device.CredentialsFor(dev))
		if err != nil {
			return err
		}
		defer sess.Close()

		out, err := sess.Read(ctx, "show ip interface brief")
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}
