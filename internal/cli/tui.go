package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/desenhapp/svgprep/pkg/classify"
	"github.com/desenhapp/svgprep/pkg/inspect"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ClassifyModel - Interactive classification review
// =============================================================================

// ClassifyModel is the bubbletea model for reviewing and overriding
// classification verdicts before a transform.
type ClassifyModel struct {
	Elements  []inspect.ElementReport
	Verdicts  []classify.Kind
	Cursor    int
	Height    int
	Offset    int
	Confirmed bool
}

// NewClassifyModel creates a review model seeded with the heuristic
// verdicts.
func NewClassifyModel(report *inspect.Report) ClassifyModel {
	verdicts := make([]classify.Kind, len(report.Elements))
	for i, e := range report.Elements {
		verdicts[i] = e.Kind
	}
	return ClassifyModel{
		Elements: report.Elements,
		Verdicts: verdicts,
		Height:   15,
	}
}

func (m ClassifyModel) Init() tea.Cmd {
	return nil
}

func (m ClassifyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Elements)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "tab":
			if len(m.Verdicts) > 0 {
				if m.Verdicts[m.Cursor] == classify.Colorable {
					m.Verdicts[m.Cursor] = classify.Decorative
				} else {
					m.Verdicts[m.Cursor] = classify.Colorable
				}
			}
		case "enter":
			m.Confirmed = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ClassifyModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Review Classification"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ␣ toggle  ⏎ apply  q cancel"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Elements) {
		end = len(m.Elements)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		e := m.Elements[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		name := e.Tag
		if e.ID != "" {
			name = e.ID
		}

		fill := e.Fill
		if fill == "" {
			fill = "—"
		}

		verdict := m.Verdicts[i].String()
		rule := e.Rule
		if m.Verdicts[i] != e.Kind {
			rule = "manual"
		}

		rows = append(rows, []string{
			cursor, name, fill, fmt.Sprintf("%.0f", e.Area), verdict, rule,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Element", "Fill", "Area", "Verdict", "Rule").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Elements) {
				return lipgloss.NewStyle()
			}

			base := lipgloss.NewStyle()
			if actualIdx == m.Cursor {
				return base.Foreground(colorCyan).Bold(true)
			}
			if m.Verdicts[actualIdx] == classify.Decorative {
				return base.Foreground(colorDim)
			}
			return base.Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	colorable := 0
	for _, v := range m.Verdicts {
		if v == classify.Colorable {
			colorable++
		}
	}
	b.WriteString(listDimStyle.Render(fmt.Sprintf(
		"%d colorable · %d decorative", colorable, len(m.Verdicts)-colorable)))
	b.WriteString("\n")

	return b.String()
}

// runClassifyTUI runs the review loop and returns the final verdicts, or
// ok=false when the user cancelled.
func runClassifyTUI(ctx context.Context, report *inspect.Report) ([]classify.Kind, bool, error) {
	model := NewClassifyModel(report)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return nil, false, fmt.Errorf("interactive classification: %w", err)
	}

	m, ok := final.(ClassifyModel)
	if !ok || !m.Confirmed {
		return nil, false, nil
	}
	return m.Verdicts, true, nil
}
