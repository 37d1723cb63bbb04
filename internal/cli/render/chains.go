package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/wormhole-demos/xmsg/internal/usecase"
)

// ChainsRenderer renders the chains file
type ChainsRenderer struct {
	out io.Writer
}

// NewChainsRenderer creates a new chains renderer
func NewChainsRenderer(out io.Writer) *ChainsRenderer {
	return &ChainsRenderer{out: out}
}

func (r *ChainsRenderer) Render(result *usecase.ChainListResult) error {
	if len(result.Chains) == 0 {
		fmt.Fprintln(r.out, "No chains configured")
		return nil
	}

	t := newTable()
	t.AppendHeader(table.Row{"Description", "Wormhole", "EVM Chain", "Relayer", "RPC"})
	for _, info := range result.Chains {
		wormhole := "-"
		if info.Chain.ChainID != 0 {
			wormhole = FormatWormholeChain(info.Chain.ChainID)
		}

		evm := "-"
		switch {
		case info.ProbeError != "":
			evm = color.New(color.FgRed).Sprint("unreachable")
		case info.EVMChainID != 0:
			evm = fmt.Sprintf("%d", info.EVMChainID)
		}

		t.AppendRow(table.Row{
			color.New(color.Bold).Sprint(info.Chain.Description),
			wormhole,
			evm,
			info.Chain.WormholeRelayer,
			info.Chain.RPC,
		})
	}
	fmt.Fprintln(r.out, t.Render())

	for _, info := range result.Chains {
		if info.ProbeError != "" {
			fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%s: %s", info.Chain.Description, info.ProbeError)))
		}
	}
	return nil
}

var _ Renderer[*usecase.ChainListResult] = (*ChainsRenderer)(nil)

// newTable returns a borderless table writer
func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Format.Header = text.FormatUpper
	t.Style().Box.PaddingRight = "   "
	return t
}
