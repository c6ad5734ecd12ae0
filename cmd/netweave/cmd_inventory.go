package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/netweave/netweave/pkg/inventory"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Manage the device inventory",
	Long: `Manage the device inventory CSV.

Examples:
  netweave inventory add --name R2-Edge --ip 10.0.0.2 --user admin --desc "edge router"
  netweave inventory remove --name R2-Edge
  netweave inventory export --format yaml`,
}

var (
	addName string
	addIP   string
	addUser string
	addPass string
	addDesc string
)

var inventoryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a device and save the inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if addPass == "" {
			var err error
			addPass, err = promptSecret(fmt.Sprintf("Password for %s", addName))
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}
		}
		err := inv.Add(inventory.Device{
			Name:        addName,
			MgmtIP:      addIP,
			Username:    addUser,
			Password:    addPass,
			Description: addDesc,
		})
		if err != nil {
			return err
		}
		if err := inv.Save(inventoryPath); err != nil {
			return err
		}
		fmt.Printf("Device %q added and saved.\n", addName)
		return nil
	},
}

var removeName string

var inventoryRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a device and save the inventory",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := inv.Remove(removeName); err != nil {
			return err
		}
		if err := inv.Save(inventoryPath); err != nil {
			return err
		}
		fmt.Printf("Device %q removed and saved.\n", removeName)
		return nil
	},
}

var inventorySaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Rewrite the inventory file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := inv.Save(inventoryPath); err != nil {
			return err
		}
		fmt.Println("Inventory saved.")
		return nil
	},
}

var exportFormat string

var inventoryExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the inventory as JSON or YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		var out string
		var err error
		switch exportFormat {
		case "json":
			out, err = inv.ExportJSON()
		case "yaml":
			out, err = inv.ExportYAML()
		default:
			return fmt.Errorf("unknown format %q: use json or yaml", exportFormat)
		}
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	inventoryAddCmd.Flags().StringVar(&addName, "name", "", "device name")
	inventoryAddCmd.Flags().StringVar(&addIP, "ip", "", "management IP")
	inventoryAddCmd.Flags().StringVar(&addUser, "user", "", "login username")
	inventoryAddCmd.Flags().StringVar(&addPass, "password", "", "login password (prompted when omitted)")
	inventoryAddCmd.Flags().StringVar(&addDesc, "desc", "", "description")
	inventoryAddCmd.MarkFlagRequired("name")
	inventoryAddCmd.MarkFlagRequired("ip")
	inventoryAddCmd.MarkFlagRequired("user")

	inventoryRemoveCmd.Flags().StringVar(&removeName, "name", "", "device name")
	inventoryRemoveCmd.MarkFlagRequired("name")

	inventoryExportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json or yaml")

	inventoryCmd.AddCommand(inventoryAddCmd)
	inventoryCmd.AddCommand(inventoryRemoveCmd)
	inventoryCmd.AddCommand(inventorySaveCmd)
	inventoryCmd.AddCommand(inventoryExportCmd)
}
