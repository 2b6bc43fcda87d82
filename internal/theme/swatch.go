package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Swatches renders one line per palette role with a block of that colour,
// for previewing a palette in the terminal.
func Swatches(p Palette) string {
	label := lipgloss.NewStyle().Width(16)
	value := lipgloss.NewStyle().Faint(true)

	var b strings.Builder
	for _, role := range p.sortedRoles() {
		color := p.Color(role)
		block := lipgloss.NewStyle().
			Background(lipgloss.Color(color)).
			Padding(0, 3).
			Render("")
		fmt.Fprintf(&b, "%s %s %s\n", block, label.Render(string(role)), value.Render(color))
	}
	return b.String()
}
