package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/displayconf/internal/window"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Width(16).
			Align(lipgloss.Right).
			PaddingRight(2)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Bold(true)

	addStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	rmStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	ctxStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)
)

func (e *editor) viewForm() string {
	header := headerStyle.Render("Editing "+e.pathLabel()) +
		dimStyle.Render("  (esc to quit without saving)")

	content := header + "\n\n" + e.form.View()
	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

func (e *editor) viewPreview() string {
	areaW, areaH := e.area()
	boxW := clamp(areaW-8, 30, 80)
	innerW := max(boxW-6, 10)

	var body []string
	if len(e.diff) == 0 {
		body = append(body, dimStyle.Render("No changes."))
	} else {
		diffH := max(areaH-22, 3)
		maxScroll := max(len(e.diff)-diffH, 0)
		off := min(e.scrollOffset, maxScroll)
		end := min(off+diffH, len(e.diff))
		for _, dl := range e.diff[off:end] {
			body = append(body, renderDiffLine(dl, innerW))
		}
	}

	body = append(body, "", headerStyle.Render("Window"))
	if e.builderErr != nil {
		body = append(body, rmStyle.Render(e.builderErr.Error()))
	} else if e.builder != nil {
		for _, row := range attributeRows(e.builder.Window) {
			body = append(body, labelStyle.Render(row[0])+valueStyle.Render(row[1]))
		}
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Render("Save " + e.pathLabel())
	footer := dimStyle.Render("enter: save  e: edit again  esc: quit  j/k: scroll")
	content := title + "\n\n" + strings.Join(body, "\n") + "\n\n" + footer

	box := boxStyle.Width(boxW).Render(content)
	return lipgloss.Place(areaW, areaH, lipgloss.Center, lipgloss.Center, box)
}

func (e *editor) viewResult() string {
	areaW, areaH := e.area()
	boxW := clamp(areaW-8, 30, 60)

	var msg string
	if e.err != nil {
		msg = rmStyle.Bold(true).Render("Error: " + e.err.Error())
	} else {
		msg = addStyle.Bold(true).Render("Saved " + e.pathLabel())
	}
	content := msg + "\n\n" + dimStyle.Render("press any key to exit")

	box := boxStyle.Width(boxW).Render(content)
	return lipgloss.Place(areaW, areaH, lipgloss.Center, lipgloss.Center, box)
}

func (e *editor) pathLabel() string {
	if e.path == "" {
		return "display config"
	}
	return e.path
}

func (e *editor) area() (int, int) {
	w, h := e.width, e.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}
	return w, h
}

func renderDiffLine(dl diffLine, width int) string {
	t := dl.text
	if len(t) > width-2 {
		t = t[:width-2]
	}
	switch dl.kind {
	case diffAdded:
		return addStyle.Render("+ " + t)
	case diffRemoved:
		return rmStyle.Render("- " + t)
	default:
		return ctxStyle.Render("  " + t)
	}
}

// attributeRows lists the builder attributes as label/value pairs.
func attributeRows(a window.Attributes) [][2]string {
	fullscreen := "no"
	if a.Fullscreen != nil {
		fullscreen = fmt.Sprintf("%s (index %d)", a.Fullscreen.Name, a.Fullscreen.Index)
	}
	return [][2]string{
		{"Title", a.Title},
		{"Fullscreen", fullscreen},
		{"Dimensions", sizeText(a.Dimensions)},
		{"Min", sizeText(a.MinDimensions)},
		{"Max", sizeText(a.MaxDimensions)},
		{"Visible", yesNo(a.Visible)},
		{"Always On Top", yesNo(a.AlwaysOnTop)},
		{"Decorations", yesNo(a.Decorations)},
		{"Maximized", yesNo(a.Maximized)},
		{"Multitouch", yesNo(a.Multitouch)},
		{"Resizable", yesNo(a.Resizable)},
		{"Transparent", yesNo(a.Transparent)},
	}
}

func sizeText(s *window.LogicalSize) string {
	if s == nil {
		return "(platform)"
	}
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
