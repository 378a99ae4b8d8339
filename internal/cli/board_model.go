package cli

import (
	"fmt"
	"strings"

	"github.com/JPNeto01/okrplanner01-sub000/internal/cli/formatter"
	"github.com/JPNeto01/okrplanner01-sub000/internal/contract"
	"github.com/JPNeto01/okrplanner01-sub000/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type boardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func newBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// boardModel is a read-only kanban view over an urgency-ordered board
// snapshot. It groups tasks into status columns; within a column the
// board's most-urgent-first order is preserved.
type boardModel struct {
	resp     *contract.BoardResponse
	keys     boardKeyMap
	viewport viewport.Model
	ready    bool
	width    int
}

func newBoardModel(resp *contract.BoardResponse) boardModel {
	return boardModel{resp: resp, keys: newBoardKeyMap()}
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.viewport.SetContent(m.renderColumns())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m boardModel) View() string {
	if !m.ready {
		return "loading board..."
	}
	header := formatter.Header("Board") + "\n"
	footer := formatter.Dim(fmt.Sprintf("%d tasks · %s · q to quit",
		len(m.resp.Tasks), m.resp.GeneratedAt.Format("2006-01-02")))
	return header + m.viewport.View() + "\n" + footer
}

var boardColumns = []struct {
	title  string
	status domain.TaskStatus
}{
	{"TO DO", domain.TaskTodo},
	{"IN PROGRESS", domain.TaskInProgress},
	{"DONE", domain.TaskDone},
}

func (m boardModel) renderColumns() string {
	colWidth := m.width/len(boardColumns) - 2
	if colWidth < 16 {
		colWidth = 16
	}

	colStyle := lipgloss.NewStyle().
		Width(colWidth).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(formatter.ColorDim).
		PaddingRight(1)

	rendered := make([]string, 0, len(boardColumns))
	for _, col := range boardColumns {
		var b strings.Builder
		b.WriteString(formatter.Bold(col.title) + "\n\n")
		for _, bt := range m.resp.Tasks {
			if bt.Task.Status != col.status {
				continue
			}
			b.WriteString(renderBoardCard(bt, colWidth) + "\n")
		}
		rendered = append(rendered, colStyle.Render(b.String()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderBoardCard(bt contract.BoardTask, width int) string {
	title := bt.Task.Title
	if lipgloss.Width(title) > width-2 {
		title = title[:width-3] + "…"
	}

	line := formatter.UrgencyStyle(bt.Urgency).Render("● ") + formatter.StyleFg.Render(title)
	meta := formatter.FormatDaysRemaining(bt.DaysRemaining)
	if bt.Task.DueDate != nil {
		meta = formatter.Dim(bt.Task.DueDate.Format("Jan 02")) + " " + meta
	}
	return line + "\n  " + meta
}
