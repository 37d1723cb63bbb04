package render

import (
	"strconv"

	"github.com/fatih/color"
	"github.com/wormhole-demos/xmsg/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// FormatWormholeChain renders a Wormhole chain ID as "Celo (14)"
func FormatWormholeChain(id uint16) string {
	num := strconv.FormatUint(uint64(id), 10)
	name := domain.WormholeChainID(id).String()
	if name == num {
		return num
	}
	return cases.Title(language.English).String(name) + " (" + num + ")"
}
