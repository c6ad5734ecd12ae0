// Package render expands fixed interface-configuration intents into ordered
// device CLI command lists.
package render

import (
	"strings"
	"text/template"

	"github.com/netweave/netweave/pkg/util"
)

// Intent classifies the desired interface change.
type Intent string

const (
	// Create assigns an address to an interface and enables it.
	Create Intent = "create"
	// Delete removes the address and disables the interface.
	Delete Intent = "delete"
)

// Params carries the values substituted into the intent template.
type Params struct {
	Intent     Intent
	Interface  string
	IPAddress  string
	SubnetMask string
}

var createTmpl = template.Must(template.New("create").Parse(`
interface {{.Interface}}
 ip address {{.IPAddress}} {{.SubnetMask}}
 no shutdown
`))

var deleteTmpl = template.Must(template.New("delete").Parse(`
interface {{.Interface}}
 no ip address
 shutdown
`))

// Render expands the template for p's intent into a command list. Lines are
// trimmed and blanks dropped; ordering is significant. Render checks that the
// required parameters are present but performs no address-format validation.
func Render(p Params) ([]string, error) {
	v := &util.ValidationBuilder{}
	v.Add(p.Interface != "", "interface name is required")

	var tmpl *template.Template
	switch p.Intent {
	case Create:
		v.Add(p.IPAddress != "", "ip address is required for create")
		v.Add(p.SubnetMask != "", "subnet mask is required for create")
		tmpl = createTmpl
	case Delete:
		tmpl = deleteTmpl
	default:
		v.AddErrorf("unknown intent %q", p.Intent)
	}
	if err := v.Build(); err != nil {
		return nil, err
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, p); err != nil {
		return nil, err
	}

	var commands []string
	for _, line := range strings.Split(buf.String(), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			commands = append(commands, line)
		}
	}
	return commands, nil
}
