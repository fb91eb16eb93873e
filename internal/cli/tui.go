package cli

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/depaudit/pkg/workspace"
)

// errSelectionCancelled is returned when the picker is closed without confirming.
var errSelectionCancelled = errors.New("member selection cancelled")

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// MemberListModel - Interactive workspace member selection
// =============================================================================

// MemberListModel is the bubbletea model for picking workspace members.
// Space toggles a member, "a" toggles all, enter confirms.
type MemberListModel struct {
	Members   []workspace.PackageInfo
	Cursor    int
	Checked   map[int]bool
	Height    int
	Offset    int
	Confirmed bool
}

// NewMemberListModel creates a member list with every member checked.
func NewMemberListModel(members []workspace.PackageInfo) MemberListModel {
	checked := make(map[int]bool, len(members))
	for i := range members {
		checked[i] = true
	}
	return MemberListModel{Members: members, Checked: checked, Height: 15}
}

func (m MemberListModel) Init() tea.Cmd {
	return nil
}

func (m MemberListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Members)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "x":
			m.Checked[m.Cursor] = !m.Checked[m.Cursor]
		case "a":
			all := len(m.Selection()) != len(m.Members)
			for i := range m.Members {
				m.Checked[i] = all
			}
		case "enter":
			if len(m.Selection()) == 0 {
				return m, nil
			}
			m.Confirmed = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m MemberListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Workspace Members"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  a all  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Members))
	for i := m.Offset; i < end; i++ {
		pkg := m.Members[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		box := "[ ]"
		if m.Checked[i] {
			box = "[" + StyleSuccess.Render("x") + "]"
		}

		line := fmt.Sprintf("%s%s %-32s %s", cursor, box, pkg.Name,
			listDimStyle.Render(fmt.Sprintf("%d deps · %d peers", len(pkg.DeclaredDependencies()), len(pkg.PeerDependencies))))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d selected]", len(m.Selection()), len(m.Members))))
	return b.String()
}

// Selection returns the checked members in list order.
func (m MemberListModel) Selection() []workspace.PackageInfo {
	var out []workspace.PackageInfo
	for i, pkg := range m.Members {
		if m.Checked[i] {
			out = append(out, pkg)
		}
	}
	return out
}

// pickMembers runs the member picker on the terminal.
func pickMembers(members []workspace.PackageInfo) ([]workspace.PackageInfo, error) {
	if len(members) <= 1 {
		return members, nil
	}
	final, err := tea.NewProgram(NewMemberListModel(members)).Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(MemberListModel)
	if !ok || !m.Confirmed {
		return nil, errSelectionCancelled
	}
	return m.Selection(), nil
}
