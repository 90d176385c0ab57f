package tui

import (
	"strings"

	"github.com/Unikyri/forohub-tui/models"
)

const uiDivider = "────────────────────────────────────────────────────────────"

// viewTitle renders a screen heading in the shared title style.
func viewTitle(title string) string {
	return titleStyle.Render(title) + "\n"
}

// fitText collapses a message to a single line of at most width runes,
// appending an ellipsis when it had to cut.
func fitText(text string, width int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

func formatFecha(f models.Fecha) string {
	if f.IsZero() {
		return "—"
	}
	return f.Format("02/01/2006 15:04")
}
