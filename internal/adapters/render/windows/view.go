package windows

import (
	"fmt"
	"strconv"

	"al.essio.dev/pkg/shellescape"
	"github.com/bnema/desktop-switcher/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type windowDoc struct {
	ID       string `json:"id" yaml:"id"`
	Desktop  int    `json:"desktop" yaml:"desktop"`
	PID      int    `json:"pid" yaml:"pid"`
	Class    string `json:"class" yaml:"class"`
	Hostname string `json:"hostname" yaml:"hostname"`
	Title    string `json:"title" yaml:"title"`
}

type profileDoc struct {
	Name       string  `json:"name" yaml:"name"`
	Command    string  `json:"command" yaml:"command"`
	Class      string  `json:"class" yaml:"class"`
	Desktop    int     `json:"desktop" yaml:"desktop"`
	Fullscreen bool    `json:"fullscreen" yaml:"fullscreen"`
	Activate   bool    `json:"activate" yaml:"activate"`
	Timeout    float64 `json:"timeout" yaml:"timeout"`
}

// Windows renders a window inventory in the requested format.
func Windows(windows []domain.WindowRecord, format Format) (string, error) {
	if format != FormatTable {
		docs := make([]windowDoc, 0, len(windows))
		for _, w := range windows {
			docs = append(docs, windowDoc(w))
		}
		return encode(format, docs)
	}

	return renderTable(func(s styles) string {
		return windowsView(windows, s)
	})
}

// Profiles renders configured profiles in the requested format.
func Profiles(profiles []domain.DesktopProfile, format Format) (string, error) {
	if format != FormatTable {
		docs := make([]profileDoc, 0, len(profiles))
		for _, p := range profiles {
			docs = append(docs, profileDoc{
				Name:       p.Name,
				Command:    p.Command,
				Class:      p.Class,
				Desktop:    p.Desktop,
				Fullscreen: p.Fullscreen,
				Activate:   p.Activate,
				Timeout:    p.EffectiveTimeout().Seconds(),
			})
		}
		return encode(format, docs)
	}

	return renderTable(func(s styles) string {
		return profilesView(profiles, s)
	})
}

func windowsView(windows []domain.WindowRecord, s styles) string {
	title := s.title.Render(fmt.Sprintf("windows: %d", len(windows)))
	if len(windows) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, s.empty.Render("No windows reported by the window manager."))
	}

	rows := make([][]string, 0, len(windows))
	for _, w := range windows {
		rows = append(rows, []string{
			w.ID,
			strconv.Itoa(w.Desktop),
			strconv.Itoa(w.PID),
			w.Class,
			w.Title,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers("ID", "DESKTOP", "PID", "CLASS", "TITLE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.header
			case col == 0:
				return s.id
			default:
				return s.cell
			}
		})

	return lipgloss.JoinVertical(lipgloss.Left, title, t.String())
}

func profilesView(profiles []domain.DesktopProfile, s styles) string {
	title := s.title.Render(fmt.Sprintf("profiles: %d", len(profiles)))
	if len(profiles) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, s.empty.Render("No profiles configured."))
	}

	rows := make([][]string, 0, len(profiles))
	for _, p := range profiles {
		rows = append(rows, []string{
			p.Name,
			strconv.Itoa(p.Desktop),
			p.Class,
			shellescape.QuoteCommand(p.Argv()),
			flags(p),
			p.EffectiveTimeout().String(),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers("NAME", "DESKTOP", "CLASS", "COMMAND", "FLAGS", "TIMEOUT").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.header
			case col == 0:
				return s.id
			case col == 4:
				return s.flag
			default:
				return s.cell
			}
		})

	return lipgloss.JoinVertical(lipgloss.Left, title, t.String())
}

func flags(p domain.DesktopProfile) string {
	switch {
	case p.Fullscreen && p.Activate:
		return "fullscreen,activate"
	case p.Fullscreen:
		return "fullscreen"
	case p.Activate:
		return "activate"
	default:
		return "-"
	}
}
