// Package preview implements the interactive terminal explorer for
// derived token trees. The core pipeline stays synchronous; the model
// merely debounces seed keystrokes before triggering a fresh pass.
package preview

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmarchand/huegen/internal/generate"
	"github.com/lmarchand/huegen/internal/semantic"
)

// Theme selects which half of the token tree the preview renders.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// Model is the preview TUI state.
type Model struct {
	seedInput  textinput.Model
	saturation float64
	mode       semantic.Compliance
	theme      Theme

	// Latest completed pass; nil until the first seed resolves.
	result *generate.Result
	// Parse/derivation problem with the current input, shown instead of
	// swatches. The previous good result stays rendered underneath.
	inputErr error

	// generation counts seed edits; a pending recompute only fires when
	// its generation is still the latest, which debounces fast typing.
	generation int

	width  int
	height int
}

// NewModel creates a preview model primed with the given parameters.
func NewModel(seed string, saturation float64, mode semantic.Compliance) Model {
	input := textinput.New()
	input.Placeholder = "#3366FF"
	input.CharLimit = 7
	input.Width = 12
	input.SetValue(seed)
	input.Focus()

	m := Model{
		seedInput:  input,
		saturation: clampSaturation(saturation),
		mode:       mode,
		theme:      ThemeLight,
		width:      80,
		height:     24,
	}
	m.regenerate()
	return m
}

// Init starts cursor blinking; the first pass already ran in NewModel.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// regenerate runs the full pipeline for the current inputs.
func (m *Model) regenerate() {
	result, err := generate.Run(generate.Request{
		Seed:       m.seedInput.Value(),
		Saturation: m.saturation,
		Compliance: m.mode,
	})
	if err != nil {
		m.inputErr = err
		return
	}
	m.inputErr = nil
	m.result = result
}

// assignment returns the role assignment for the selected theme, mirrored
// on demand for dark.
func (m Model) assignment() semantic.Assignment {
	if m.result == nil {
		return nil
	}
	if m.theme == ThemeDark {
		return m.result.Light.Mirrored()
	}
	return m.result.Light
}

func clampSaturation(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 0.30 {
		return 0.30
	}
	return s
}
