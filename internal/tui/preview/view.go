package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lmarchand/huegen/internal/contrast"
	"github.com/lmarchand/huegen/internal/scale"
	"github.com/lmarchand/huegen/internal/semantic"
)

// View renders the preview: seed input, both scales, and a mock surface
// composed from the currently selected theme's role assignment.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("huegen preview"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("seed ") + m.seedInput.View())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"compliance %s · saturation %.0f%% · %s theme",
		m.mode, m.saturation*100, m.theme,
	)))
	b.WriteString("\n")

	if m.inputErr != nil {
		b.WriteString(errorStyle.Render("cannot derive tokens: enter a valid hex seed"))
		b.WriteString("\n")
	}

	if m.result != nil {
		b.WriteString(labelStyle.Render("neutral"))
		b.WriteString("\n")
		b.WriteString(renderRamp(m.result.Neutral))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("primary"))
		b.WriteString("\n")
		b.WriteString(renderRamp(m.result.Primary))
		b.WriteString("\n")
		b.WriteString(m.renderSurfacePanel())
	}

	b.WriteString(helpStyle.Render(
		"ctrl+a compliance · ctrl+t theme · ctrl+j/ctrl+k saturation · esc quit",
	))

	return b.String()
}

func renderRamp(s *scale.Scale) string {
	swatches := make([]string, 0, s.Len())
	for _, entry := range s.Entries {
		label := entry.Label
		if entry.IsSeed {
			label = "*" + label
		}
		swatches = append(swatches, lipgloss.NewStyle().
			Background(lipgloss.Color(entry.Sample.Hex)).
			Foreground(lipgloss.Color(readableOn(entry.Sample.Hex))).
			Padding(0, 1).
			Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, swatches...)
}

// renderSurfacePanel mocks up a card on the theme's surface variant:
// three text levels, an outline line, and a primary action chip.
func (m Model) renderSurfacePanel() string {
	assignment := m.assignment()
	if assignment == nil {
		return ""
	}

	surface := assignment[semantic.RoleSurfaceVariant].Entry.Sample.Hex
	onSurface := func(role semantic.Role) lipgloss.Style {
		return lipgloss.NewStyle().
			Background(lipgloss.Color(surface)).
			Foreground(lipgloss.Color(assignment[role].Entry.Sample.Hex))
	}

	lines := []string{
		onSurface(semantic.RoleTextPrimary).Bold(true).Render("Primary text"),
		onSurface(semantic.RoleTextSecondary).Render("Secondary text"),
		onSurface(semantic.RoleTextTertiary).Render("Tertiary text"),
		onSurface(semantic.RoleOutlineDefault).Render(strings.Repeat("─", 24)),
		lipgloss.NewStyle().
			Background(lipgloss.Color(assignment[semantic.RoleSurfacePrimary].Entry.Sample.Hex)).
			Foreground(lipgloss.Color(assignment[semantic.RoleTextOnPrimary].Entry.Sample.Hex)).
			Padding(0, 1).
			Render("Primary action"),
	}

	return panelStyle.
		Background(lipgloss.Color(surface)).
		Render(strings.Join(lines, "\n"))
}

func readableOn(hex string) string {
	whiteRatio, okWhite := contrast.Ratio(hex, "#FFFFFF")
	blackRatio, okBlack := contrast.Ratio(hex, "#000000")
	if okWhite && okBlack && blackRatio > whiteRatio {
		return "#000000"
	}
	return "#FFFFFF"
}
