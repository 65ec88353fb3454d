package styles

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file location and whether it exists.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	if !exists {
		return fmt.Sprintf(
			"\n  %s Config %s\n  %s\n",
			iconStyle.Render(IconConfig),
			pathStyle.Render(path),
			r.theme.Subtle.Render("No config file yet, built-in defaults apply. Run 'dumbwm config init' to create one."),
		)
	}

	return fmt.Sprintf(
		"\n  %s Config %s\n",
		iconStyle.Render(IconConfig),
		pathStyle.Render(path),
	)
}

// RenderCreated renders the success message after writing a config file.
func (r *ConfigRenderer) RenderCreated(path string) string {
	return fmt.Sprintf(
		"\n  %s Wrote defaults to %s\n",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(filepath.Base(path)),
	)
}

// RenderExists renders the message shown when init would overwrite a file.
func (r *ConfigRenderer) RenderExists(path string) string {
	return fmt.Sprintf(
		"\n  %s Config %s already exists\n  %s\n",
		r.theme.WarningStyle.Render(IconWarning),
		r.theme.WarningStyle.Render(path),
		r.theme.Subtle.Render("Pass --force to overwrite it."),
	)
}

// RenderValid renders the summary of a config that passed validation,
// boxed under a header.
func (r *ConfigRenderer) RenderValid(path string, rules, modes int) string {
	countStyle := r.theme.Highlight

	header := r.theme.BoxHeader.Render(
		r.theme.SuccessStyle.Render(IconCheck) + " Config is valid",
	)
	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		r.theme.Subtle.Render(path),
		fmt.Sprintf("%s window rules, %s binding modes",
			countStyle.Render(fmt.Sprintf("%d", rules)),
			countStyle.Render(fmt.Sprintf("%d", modes)),
		),
	)

	return "\n" + r.theme.Box.Render(body) + "\n"
}

// RenderSchemaWritten renders the location of a generated schema file.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	return fmt.Sprintf(
		"\n  %s Schema written to %s\n",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		r.theme.ErrorStyle.Render(IconX),
		r.theme.ErrorStyle.Render(err.Error()),
	)
}
