// Netweave - AI-assisted network configuration tool
//
// A CLI tool for generating and deploying device configuration snippets:
//   - Flat CSV device inventory (load, list, add, remove, export)
//   - Template-rendered interface configuration (create/delete intents)
//   - Natural-language configuration via a text-generation backend,
//     sanitized into device CLI commands
//   - Deployment over SSH with per-device results
//
// Examples:
//
//	netweave list
//	netweave -d R1-Core configure --action create --interface Gi0/1
//	netweave -d R1-Core show
//	netweave generate --requirements "Configure Gi0/1 with 192.168.1.1/24"
//	netweave inventory add --name R2 --ip 10.0.0.2 --user admin --desc "edge"
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/netweave/netweave/pkg/inventory"
	"github.com/netweave/netweave/pkg/settings"
	"github.com/netweave/netweave/pkg/util"
	"github.com/netweave/netweave/pkg/version"
)

var (
	// Global flags
	inventoryPath string
	deviceName    string // -d, --device
	logLevel      string
	jsonLog       bool

	// Global state, loaded in PersistentPreRunE
	userSettings *settings.Settings
	inv          *inventory.Inventory
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "netweave",
	Short:             "AI-assisted network configuration tool",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `Netweave generates and deploys network-device configuration snippets.

Configurations come from fixed templates (configure) or from a natural-
language requirement routed through a text-generation backend (generate).
Commands are deployed to devices from the inventory over SSH.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := util.SetLogLevel(logLevel); err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		if jsonLog {
			util.SetJSONFormat()
		}

		var err error
		userSettings, err = settings.Load()
		if err != nil {
			util.Warnf("Could not load settings: %v", err)
			userSettings = &settings.Settings{}
		}

		if inventoryPath == "" {
			inventoryPath = userSettings.GetInventory()
		}

		// Settings, version, and help work without an inventory
		if skipsInventory(cmd) {
			return nil
		}

		// Failure to load the inventory is the one fatal condition
		inv, err = inventory.Load(inventoryPath)
		if err != nil {
			return err
		}
		util.Debugf("loaded %d devices from %s", len(inv.Devices), inventoryPath)
		return nil
	},
}

func skipsInventory(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "settings", "version", "help", "completion":
			return true
		}
	}
	return false
}

// requireDevice resolves the -d flag against the inventory.
func requireDevice() (inventory.Device, error) {
	if deviceName == "" {
		return inventory.Device{}, fmt.Errorf("device name required: use -d <device>")
	}
	return inv.Get(deviceName)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("netweave %s\n", version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&inventoryPath, "inventory", "", "inventory CSV file (default from settings, then inventory.csv)")
	rootCmd.PersistentFlags().StringVarP(&deviceName, "device", "d", "", "device name from the inventory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "emit logs as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(settingsCmd)
}
