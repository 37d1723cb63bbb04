package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/wormhole-demos/xmsg/internal/usecase"
)

// DeployRenderer renders contract deployments
type DeployRenderer struct {
	out io.Writer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{out: out}
}

// Render renders a single deployment
func (r *DeployRenderer) Render(result *usecase.DeployContractResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s deployed on %s", result.Contract, result.Chain.Description)))
	r.field("Address", color.New(color.FgGreen, color.Bold).Sprint(result.Address.Hex()))
	r.field("Deployer", result.Deployer.Hex())
	if result.Transaction != nil {
		r.field("Transaction", result.Transaction.Hash.Hex())
		r.field("Block", fmt.Sprintf("%d", result.Transaction.BlockNumber))
	}
	r.field("Saved to", fmt.Sprintf("%s (%s)", result.RegistryPath, result.ChainKey))
	return nil
}

// RenderReceiver renders a receiver deployment and its registration
func (r *DeployRenderer) RenderReceiver(result *usecase.DeployReceiverResult) error {
	if result.Deployment != nil {
		if err := r.Render(result.Deployment); err != nil {
			return err
		}
	}
	if result.Registration != nil {
		fmt.Fprintln(r.out)
		return r.RenderRegistration(result.Registration)
	}
	return nil
}

// RenderRegistration renders a setRegisteredSender transaction
func (r *DeployRenderer) RenderRegistration(reg *usecase.SenderRegistration) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Sender registered for %s", FormatWormholeChain(reg.SourceChainID))))
	r.field("Receiver", reg.Receiver.Hex())
	r.field("Sender", reg.Sender.Hex())
	r.field("Emitter", reg.Emitter.Hex())
	if reg.Transaction != nil {
		r.field("Transaction", reg.Transaction.Hash.Hex())
	}
	return nil
}

func (r *DeployRenderer) field(label, value string) {
	fmt.Fprintf(r.out, "  %-12s %s\n", label+":", value)
}

// ReceiverRenderer renders deploy-receiver results
type ReceiverRenderer struct {
	*DeployRenderer
}

// NewReceiverRenderer creates a new receiver renderer
func NewReceiverRenderer(out io.Writer) *ReceiverRenderer {
	return &ReceiverRenderer{DeployRenderer: NewDeployRenderer(out)}
}

func (r *ReceiverRenderer) Render(result *usecase.DeployReceiverResult) error {
	return r.RenderReceiver(result)
}

// RegistrationRenderer renders register-sender results
type RegistrationRenderer struct {
	*DeployRenderer
}

// NewRegistrationRenderer creates a new registration renderer
func NewRegistrationRenderer(out io.Writer) *RegistrationRenderer {
	return &RegistrationRenderer{DeployRenderer: NewDeployRenderer(out)}
}

func (r *RegistrationRenderer) Render(result *usecase.SenderRegistration) error {
	return r.RenderRegistration(result)
}

var (
	_ Renderer[*usecase.DeployContractResult] = (*DeployRenderer)(nil)
	_ Renderer[*usecase.DeployReceiverResult] = (*ReceiverRenderer)(nil)
	_ Renderer[*usecase.SenderRegistration]   = (*RegistrationRenderer)(nil)
)
