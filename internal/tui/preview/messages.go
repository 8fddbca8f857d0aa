package preview

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// debounceInterval is how long the seed input must be quiet before a
// recompute fires.
const debounceInterval = 250 * time.Millisecond

// recomputeMsg asks the model to re-run the pipeline if no newer edit has
// superseded this one.
type recomputeMsg struct {
	generation int
}

func scheduleRecompute(generation int) tea.Cmd {
	return tea.Tick(debounceInterval, func(time.Time) tea.Msg {
		return recomputeMsg{generation: generation}
	})
}
