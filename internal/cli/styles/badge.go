package styles

import (
	"github.com/bnema/dumbwm/internal/domain/entity"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// StateBadge renders a window state. Tiling windows get the muted badge.
func (t *Theme) StateBadge(state entity.WindowState) string {
	if state == entity.WindowStateTiling {
		return t.MutedBadge(string(state))
	}
	return t.AccentBadge(string(state))
}
