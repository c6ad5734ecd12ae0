// Package inventory manages the flat CSV device inventory.
//
// The store is a five-column table keyed by device name:
//
//	Name, Management IP, Username, Password, Description
//
// Load/save round-trips are lossless for these columns. Records are loaded
// once per run and treated as immutable for the duration of a pipeline.
package inventory

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/netweave/netweave/pkg/util"
)

// Device is one inventory record.
type Device struct {
	Name        string `json:"Name" yaml:"Name"`
	MgmtIP      string `json:"Management IP" yaml:"Management IP"`
	Username    string `json:"Username" yaml:"Username"`
	Password    string `json:"Password" yaml:"Password"`
	Description string `json:"Description" yaml:"Description"`
}

// columns is the fixed CSV header, in file order.
var columns = []string{"Name", "Management IP", "Username", "Password", "Description"}

// Inventory holds the loaded records in file order.
type Inventory struct {
	Devices []Device
}

// Load reads the inventory CSV at path. A missing or unreadable file is a
// fatal condition for the caller; Load does not paper over it.
func Load(path string) (*Inventory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening inventory %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing inventory %s: %w", path, err)
	}
	if len(rows) == 0 {
		return &Inventory{}, nil
	}

	idx := make(map[string]int, len(rows[0]))
	for i, col := range rows[0] {
		idx[col] = i
	}
	for _, col := range columns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("inventory %s: missing column %q", path, col)
		}
	}

	inv := &Inventory{Devices: make([]Device, 0, len(rows)-1)}
	for _, row := range rows[1:] {
		inv.Devices = append(inv.Devices, Device{
			Name:        row[idx["Name"]],
			MgmtIP:      row[idx["Management IP"]],
			Username:    row[idx["Username"]],
			Password:    row[idx["Password"]],
			Description: row[idx["Description"]],
		})
	}
	return inv, nil
}

// Save writes the inventory back to path with the fixed column header.
func (inv *Inventory) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing inventory %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return err
	}
	for _, d := range inv.Devices {
		row := []string{d.Name, d.MgmtIP, d.Username, d.Password, d.Description}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Get returns the record for name, or ErrDeviceNotFound.
func (inv *Inventory) Get(name string) (Device, error) {
	for _, d := range inv.Devices {
		if d.Name == name {
			return d, nil
		}
	}
	return Device{}, fmt.Errorf("%q: %w", name, util.ErrDeviceNotFound)
}

// Add appends a record. Duplicate names are rejected so that Name stays a
// usable lookup key.
func (inv *Inventory) Add(d Device) error {
	if _, err := inv.Get(d.Name); err == nil {
		return fmt.Errorf("device %q already exists", d.Name)
	}
	inv.Devices = append(inv.Devices, d)
	return nil
}

// Remove deletes the record for name, preserving the order of the rest.
func (inv *Inventory) Remove(name string) error {
	for i, d := range inv.Devices {
		if d.Name == name {
			inv.Devices = append(inv.Devices[:i], inv.Devices[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%q: %w", name, util.ErrDeviceNotFound)
}

// ExportJSON renders the records with the CSV column names as keys, so JSON
// and YAML exports match the file format.
func (inv *Inventory) ExportJSON() (string, error) {
	data, err := json.MarshalIndent(inv.Devices, "", "    ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ExportYAML renders the records as a YAML sequence.
func (inv *Inventory) ExportYAML() (string, error) {
	data, err := yaml.Marshal(inv.Devices)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
