package preview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmarchand/huegen/internal/semantic"
)

const saturationStep = 0.02

// Update handles key and debounce messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case recomputeMsg:
		if msg.generation == m.generation {
			m.regenerate()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+a":
			if m.mode == semantic.ComplianceAA {
				m.mode = semantic.ComplianceAAA
			} else {
				m.mode = semantic.ComplianceAA
			}
			m.regenerate()
			return m, nil

		case "ctrl+t":
			if m.theme == ThemeLight {
				m.theme = ThemeDark
			} else {
				m.theme = ThemeLight
			}
			return m, nil

		case "ctrl+k":
			m.saturation = clampSaturation(m.saturation + saturationStep)
			m.regenerate()
			return m, nil

		case "ctrl+j":
			m.saturation = clampSaturation(m.saturation - saturationStep)
			m.regenerate()
			return m, nil
		}
	}

	var cmd tea.Cmd
	previous := m.seedInput.Value()
	m.seedInput, cmd = m.seedInput.Update(msg)

	if m.seedInput.Value() != previous {
		m.generation++
		return m, tea.Batch(cmd, scheduleRecompute(m.generation))
	}

	return m, cmd
}
