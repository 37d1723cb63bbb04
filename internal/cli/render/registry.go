package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/wormhole-demos/xmsg/internal/usecase"
)

// RegistryRenderer renders the deployed contracts registry
type RegistryRenderer struct {
	out io.Writer
}

// NewRegistryRenderer creates a new registry renderer
func NewRegistryRenderer(out io.Writer) *RegistryRenderer {
	return &RegistryRenderer{out: out}
}

func (r *RegistryRenderer) Render(result *usecase.RegistryResult) error {
	if len(result.Entries) == 0 {
		fmt.Fprintf(r.out, "No deployed contracts in %s\n", result.Path)
		return nil
	}

	t := newTable()
	t.AppendHeader(table.Row{"Chain", "Contract", "Address", "Deployed At"})
	for _, entry := range result.Entries {
		roles := lo.Keys(entry.Contracts)
		sort.Strings(roles)
		for i, role := range roles {
			chain, deployedAt := "", ""
			if i == 0 {
				chain = color.New(color.Bold).Sprint(entry.ChainKey)
				deployedAt = entry.DeployedAt
			}
			t.AppendRow(table.Row{chain, role, color.New(color.FgGreen).Sprint(entry.Contracts[role]), deployedAt})
		}
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}

var _ Renderer[*usecase.RegistryResult] = (*RegistryRenderer)(nil)
