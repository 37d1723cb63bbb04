package interactive

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/wormhole-demos/xmsg/internal/domain/config"
)

// PasswordPrompterAdapter asks for secrets on the terminal
type PasswordPrompterAdapter struct {
	config *config.RuntimeConfig
}

// NewPasswordPrompterAdapter creates a new password prompter
func NewPasswordPrompterAdapter(cfg *config.RuntimeConfig) *PasswordPrompterAdapter {
	return &PasswordPrompterAdapter{config: cfg}
}

// PromptPassword reads a masked line from the terminal
func (p *PasswordPrompterAdapter) PromptPassword(ctx context.Context, label string) (string, error) {
	if p.config.NonInteractive {
		return "", fmt.Errorf("cannot prompt for %q in non-interactive mode", label)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	prompt := promptui.Prompt{
		Label: label,
		Mask:  '*',
	}

	password, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return "", fmt.Errorf("password prompt aborted")
		}
		return "", fmt.Errorf("password prompt failed: %w", err)
	}
	return password, nil
}
