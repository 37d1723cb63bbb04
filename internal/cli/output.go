package cli

import (
	"github.com/spf13/cobra"
	"github.com/wormhole-demos/xmsg/internal/app"
	"github.com/wormhole-demos/xmsg/internal/cli/render"
)

// output renders result as JSON when --json is set and with human otherwise
func output[T any](cmd *cobra.Command, a *app.App, result T, human render.Renderer[T]) error {
	if a.Config.JSON {
		return render.NewJSONRenderer[T](cmd.OutOrStdout()).Render(result)
	}
	return human.Render(result)
}
