package studio

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jakoblorz/clipdeck/internal/models"
	"github.com/jakoblorz/clipdeck/internal/timecode"
	"github.com/jakoblorz/clipdeck/internal/tui"
)

const (
	sidebarWidth  = 34
	blockWidth    = 18
	previewHeight = 9
)

// View renders the whole screen
func (m Model) View() string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(), m.viewPreview())

	sections := []string{
		m.viewHeader(),
		body,
		m.viewTimeline(),
		m.viewTransport(),
		m.viewFooter(),
	}
	return strings.Join(sections, "\n")
}

func (m Model) viewHeader() string {
	counts := fmt.Sprintf("%d video • %d audio",
		m.project.Count(models.MediaVideo), m.project.Count(models.MediaAudio))
	return tui.TitleStyle.Render("clipdeck · "+m.project.Title) + "  " + tui.SubtleStyle.Render(counts)
}

func (m Model) viewSidebar() string {
	var b strings.Builder

	b.WriteString(tui.HeaderStyle.Render("Media"))
	b.WriteString("\n\n")
	b.WriteString(tui.ButtonStyle.Render("+ Add Video (v)"))
	b.WriteString("\n")
	b.WriteString(tui.ButtonStyle.Render("+ Add Audio (a)"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Clips (%d)\n", len(m.project.Clips)))

	if len(m.project.Clips) == 0 {
		b.WriteString(tui.DescStyle.Render("No clips yet"))
	}

	nameWidth := sidebarWidth - 14
	for i, clip := range m.project.Clips {
		cursor := " "
		style := lipgloss.NewStyle()
		if i == m.selected {
			cursor = tui.SelectedStyle.Render("›")
			style = tui.SelectedStyle
		}

		line := fmt.Sprintf("%s %-*s %s",
			glyph(clip.Type), nameWidth, truncate(clip.Name(), nameWidth), timecode.FormatDuration(clip.Duration()))
		b.WriteString(fmt.Sprintf("%s %s", cursor, style.Render(line)))
		if i < len(m.project.Clips)-1 {
			b.WriteString("\n")
		}
	}

	return tui.PanelStyle.Width(sidebarWidth).Render(b.String())
}

func (m Model) viewPreview() string {
	width := max(m.width-sidebarWidth-6, 20)

	caption := "No clip selected"
	if clip, ok := m.selectedClip(); ok {
		caption = clip.Name()
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		tui.SubtleStyle.Render("▶"),
		"",
		tui.DescStyle.Render("Preview not available"),
		tui.SubtleStyle.Render(truncate(caption, width-4)),
	)

	placed := lipgloss.Place(width-2, previewHeight, lipgloss.Center, lipgloss.Center, content)
	return tui.PanelStyle.Width(width).Render(tui.HeaderStyle.Render("Preview") + "\n" + placed)
}

func (m Model) viewTimeline() string {
	var b strings.Builder

	b.WriteString(tui.HeaderStyle.Render("Timeline"))
	b.WriteString("  ")
	b.WriteString(tui.SubtleStyle.Render("length " + timecode.FormatClock(m.project.TotalDuration())))
	b.WriteString("\n")

	if len(m.project.Clips) == 0 {
		b.WriteString(tui.DescStyle.Render("Add a clip to start the timeline"))
		return tui.PanelStyle.Width(m.width - 4).Render(b.String())
	}

	first, last := m.visibleRange()
	blocks := make([]string, 0, last-first)
	marks := make([]string, 0, last-first)

	offset := m.startOffset(first)
	for i := first; i < last; i++ {
		clip := m.project.Clips[i]

		style := tui.VideoBlockStyle
		if clip.Type == models.MediaAudio {
			style = tui.AudioBlockStyle
		}
		if i == m.selected {
			style = tui.SelectedBlockStyle
		}

		label := fmt.Sprintf(" %s %s", glyph(clip.Type), truncate(clip.Name(), blockWidth-4))
		blocks = append(blocks, style.Width(blockWidth).Render(label))
		marks = append(marks, lipgloss.NewStyle().Width(blockWidth).Render(timecode.FormatDuration(offset)))
		offset += clip.Duration()
	}

	if first > 0 {
		blocks = append([]string{tui.SubtleStyle.Render("‹")}, blocks...)
		marks = append([]string{" "}, marks...)
	}
	if last < len(m.project.Clips) {
		blocks = append(blocks, tui.SubtleStyle.Render("›"))
	}

	b.WriteString(strings.Join(blocks, " "))
	b.WriteString("\n")
	b.WriteString(tui.SubtleStyle.Render(strings.Join(marks, " ")))

	return tui.PanelStyle.Width(m.width - 4).Render(b.String())
}

// visibleRange returns the clip indexes that fit the strip, keeping the
// selection in view
func (m Model) visibleRange() (int, int) {
	fit := max((m.width-8)/(blockWidth+1), 1)
	n := len(m.project.Clips)
	if n <= fit {
		return 0, n
	}

	first := 0
	if m.selected >= fit {
		first = m.selected - fit + 1
	}
	return first, min(first+fit, n)
}

func (m Model) startOffset(index int) (offset time.Duration) {
	for _, clip := range m.project.Clips[:index] {
		offset += clip.Duration()
	}
	return offset
}

func (m Model) viewTransport() string {
	play := "▶"
	if m.transport.IsPlaying() {
		play = "⏸"
	}

	controls := strings.Join([]string{"⏮", play, "⏹", "⏭"}, "  ")
	position := fmt.Sprintf("%s / %s", timecode.FormatDuration(0), timecode.FormatClock(m.project.TotalDuration()))
	speed := fmt.Sprintf("%.2fx", m.transport.Speed())

	line := strings.Join([]string{
		tui.SelectedStyle.Render(controls),
		m.scrubber.ViewAs(0),
		position,
		tui.SubtleStyle.Render(speed),
	}, "   ")
	return tui.PanelStyle.Width(m.width - 4).Render(line)
}

func (m Model) viewFooter() string {
	var status string
	switch m.mode {
	case modeRename:
		status = m.rename.View() + "  " + tui.HelpStyle.Render("enter save • esc cancel")
	case modeConfirmClear:
		status = m.confirm.View()
	default:
		switch {
		case m.err != nil:
			status = tui.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err))
		case m.status != "":
			status = tui.SuccessStyle.Render(m.status)
		}
	}

	return status + "\n" + m.help.View(m.keys)
}

func glyph(t models.MediaType) string {
	if t == models.MediaAudio {
		return "♪"
	}
	return "▣"
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
