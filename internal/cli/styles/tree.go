package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/bnema/dumbwm/internal/domain/entity"
)

// TreeRenderer renders a container snapshot as an indented tree.
type TreeRenderer struct {
	theme *Theme
}

// NewTreeRenderer creates a new tree renderer with the given theme.
func NewTreeRenderer(theme *Theme) *TreeRenderer {
	return &TreeRenderer{theme: theme}
}

// Render draws the snapshot. The container matching focused gets a marker.
func (r *TreeRenderer) Render(root entity.ContainerDTO, focused entity.ContainerID) string {
	t := r.build(root, focused).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(lipgloss.NewStyle().Foreground(r.theme.Border).MarginRight(1)).
		RootStyle(r.theme.Title)

	return t.String()
}

func (r *TreeRenderer) build(dto entity.ContainerDTO, focused entity.ContainerID) *tree.Tree {
	node := tree.Root(r.label(dto, focused))
	for _, child := range dto.Children {
		if len(child.Children) == 0 {
			node.Child(r.label(child, focused))
			continue
		}
		node.Child(r.build(child, focused))
	}
	return node
}

func (r *TreeRenderer) label(dto entity.ContainerDTO, focused entity.ContainerID) string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	detail := r.theme.Subtle

	var parts []string
	switch dto.Type {
	case "root":
		parts = append(parts, icon.Render(IconRoot), r.theme.Title.Render("root"))

	case "monitor":
		parts = append(parts, icon.Render(IconMonitor), r.theme.Normal.Render("monitor "+dto.Name))
		if dto.Rect != nil {
			parts = append(parts, detail.Render(formatRect(*dto.Rect)))
		}
		if dto.ScaleFactor != 0 && dto.ScaleFactor != 1 {
			parts = append(parts, detail.Render(fmt.Sprintf("@%gx", dto.ScaleFactor)))
		}

	case "workspace":
		parts = append(parts,
			icon.Render(IconWorkspace),
			r.theme.Normal.Render("workspace "+dto.Name),
			detail.Render(string(dto.TilingDirection)),
		)

	case "split":
		parts = append(parts,
			icon.Render(IconSplit),
			r.theme.Normal.Render("split"),
			detail.Render(string(dto.TilingDirection)),
		)
		if dto.TilingSize != nil {
			parts = append(parts, detail.Render(formatSize(*dto.TilingSize)))
		}

	default:
		parts = append(parts, r.windowLabel(dto)...)
	}

	if dto.ID == focused {
		parts = append(parts, r.theme.Highlight.Render(IconFocus+" focused"))
	}
	return strings.Join(parts, " ")
}

func (r *TreeRenderer) windowLabel(dto entity.ContainerDTO) []string {
	icon := lipgloss.NewStyle().Foreground(r.theme.Accent)
	detail := r.theme.Subtle

	glyph := IconWindow
	switch dto.State {
	case entity.WindowStateFloating, entity.WindowStateFullscreen:
		glyph = IconFloating
	case entity.WindowStateMinimized:
		glyph = IconMinimized
	}

	parts := []string{
		icon.Render(glyph),
		r.theme.Normal.Render(fmt.Sprintf("#%d", dto.Handle)),
	}
	if dto.ClassName != "" {
		parts = append(parts, r.theme.Highlight.Render(dto.ClassName))
	}
	if dto.Title != "" {
		parts = append(parts, detail.Render(fmt.Sprintf("%q", dto.Title)))
	}
	if dto.State != "" {
		parts = append(parts, r.theme.StateBadge(dto.State))
	}
	if dto.TilingSize != nil {
		parts = append(parts, detail.Render(formatSize(*dto.TilingSize)))
	}
	return parts
}

func formatRect(rect entity.Rect) string {
	return fmt.Sprintf("%dx%d+%d+%d", rect.Width, rect.Height, rect.X, rect.Y)
}

func formatSize(size float64) string {
	return fmt.Sprintf("%.0f%%", size*100)
}
