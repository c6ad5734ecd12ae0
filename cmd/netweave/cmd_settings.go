package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netweave/netweave/pkg/cli"
	"github.com/netweave/netweave/pkg/generate"
	"github.com/netweave/netweave/pkg/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persistent settings",
	Long: `Manage persistent settings stored in ~/.netweave/settings.json.

Settings provide defaults for flags:
  inventory - inventory CSV path (--inventory default)
  url       - text-generation backend URL (generate --url default)
  model     - text-generation model (generate --model default)

Examples:
  netweave settings show
  netweave settings set url http://ollama:11434
  netweave settings set model llama3`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		fmt.Printf("Settings file: %s\n\n", settings.DefaultPath())

		t := cli.NewTable("SETTING", "VALUE", "EFFECTIVE")
		row := func(name, value, fallback string) {
			effective := value
			if effective == "" {
				effective = fallback
			}
			if value == "" {
				value = "(not set)"
			}
			t.Row(name, value, effective)
		}
		row("inventory", s.Inventory, "inventory.csv")
		row("url", s.BackendURL, generate.DefaultBaseURL)
		row("model", s.BackendModel, generate.DefaultModel)
		t.Flush()
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <setting> <value>",
	Short: "Set a setting value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			s = &settings.Settings{}
		}

		switch args[0] {
		case "inventory":
			s.Inventory = args[1]
		case "url", "backend_url":
			s.BackendURL = args[1]
		case "model", "backend_model":
			s.BackendModel = args[1]
		default:
			return fmt.Errorf("unknown setting %q (inventory, url, model)", args[0])
		}
		if err := s.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		fmt.Printf("%s set to: %s\n", args[0], args[1])
		return nil
	},
}

var settingsUnsetCmd = &cobra.Command{
	Use:   "unset <setting>",
	Short: "Clear a setting value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		switch args[0] {
		case "inventory":
			s.Inventory = ""
		case "url", "backend_url":
			s.BackendURL = ""
		case "model", "backend_model":
			s.BackendModel = ""
		default:
			return fmt.Errorf("unknown setting %q (inventory, url, model)", args[0])
		}
		if err := s.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		fmt.Printf("%s cleared\n", args[0])
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsUnsetCmd)
}
