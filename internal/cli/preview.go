package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// previewHint is shown under the maze while the preview waits.
const previewHint = "Press `enter` to close"

// PreviewModel is the bubbletea model that shows a drawn maze until the user
// presses enter.
type PreviewModel struct {
	Maze   string
	Closed bool
}

// NewPreviewModel creates a preview for the text rendering of a maze.
func NewPreviewModel(maze string) PreviewModel {
	return PreviewModel{Maze: maze}
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "q", "esc", "ctrl+c":
			m.Closed = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View draws the maze. The hint disappears once the preview is closed so the
// maze stays on screen by itself.
func (m PreviewModel) View() string {
	var b strings.Builder
	b.WriteString(m.Maze)
	if !strings.HasSuffix(m.Maze, "\n") {
		b.WriteString("\n")
	}
	if !m.Closed {
		b.WriteString(StyleDim.Render(previewHint))
		b.WriteString("\n")
	}
	return b.String()
}

// showPreview prints the maze. Unless closeNow is set it keeps the maze on
// screen until enter is pressed.
func (c *CLI) showPreview(ctx context.Context, maze string, closeNow bool) error {
	if closeNow {
		_, err := fmt.Fprint(c.out, maze)
		return err
	}
	p := tea.NewProgram(NewPreviewModel(maze), tea.WithContext(ctx), tea.WithOutput(c.out))
	_, err := p.Run()
	return err
}
