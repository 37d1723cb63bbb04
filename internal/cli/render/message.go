package render

import (
	"fmt"
	"io"
	"math/big"

	"github.com/ethereum/go-ethereum/params"
	"github.com/fatih/color"
	"github.com/wormhole-demos/xmsg/internal/usecase"
)

// MessageRenderer renders sent messages
type MessageRenderer struct {
	out io.Writer
}

// NewMessageRenderer creates a new message renderer
func NewMessageRenderer(out io.Writer) *MessageRenderer {
	return &MessageRenderer{out: out}
}

func (r *MessageRenderer) Render(result *usecase.SendMessageResult) error {
	fmt.Fprintf(r.out, "Message sent! Transaction hash: %s\n", result.Transaction.Hash.Hex())
	fmt.Fprintf(r.out, "  %-12s %q\n", "Message:", result.Message)
	fmt.Fprintf(r.out, "  %-12s %s\n", "Target:", FormatWormholeChain(result.TargetChainID))
	fmt.Fprintf(r.out, "  %-12s %s\n", "Cost:", formatWei(result.Cost))
	fmt.Fprintf(r.out, "You may see the transaction status on the Wormhole Explorer: %s\n",
		color.New(color.FgCyan, color.Underline).Sprint(result.ExplorerURL))
	return nil
}

var _ Renderer[*usecase.SendMessageResult] = (*MessageRenderer)(nil)

// formatWei renders wei amounts with an ether conversion
func formatWei(wei *big.Int) string {
	if wei == nil {
		return "0 wei"
	}
	ether := new(big.Float).Quo(new(big.Float).SetInt(wei), big.NewFloat(params.Ether))
	return fmt.Sprintf("%s wei (%s)", wei.String(), ether.Text('f', 6))
}
