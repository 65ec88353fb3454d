package entity

// ContainerDTO is the serialized form of a container and its subtree,
// tagged by Type. Variant fields are omitted when they do not apply.
type ContainerDTO struct {
	Type            string          `json:"type" yaml:"type"`
	ID              ContainerID     `json:"id" yaml:"id"`
	ParentID        ContainerID     `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	Children        []ContainerDTO  `json:"children" yaml:"children"`
	ChildFocusOrder []ContainerID   `json:"child_focus_order" yaml:"child_focus_order"`
	Name            string          `json:"name,omitempty" yaml:"name,omitempty"`
	Rect            *Rect           `json:"rect,omitempty" yaml:"rect,omitempty"`
	ScaleFactor     float64         `json:"scale_factor,omitempty" yaml:"scale_factor,omitempty"`
	TilingDirection TilingDirection `json:"tiling_direction,omitempty" yaml:"tiling_direction,omitempty"`
	TilingSize      *float64        `json:"tiling_size,omitempty" yaml:"tiling_size,omitempty"`
	State           WindowState     `json:"state,omitempty" yaml:"state,omitempty"`
	Handle          WindowHandle    `json:"handle,omitempty" yaml:"handle,omitempty"`
	Title           string          `json:"title,omitempty" yaml:"title,omitempty"`
	ClassName       string          `json:"class_name,omitempty" yaml:"class_name,omitempty"`
	ProcessName     string          `json:"process_name,omitempty" yaml:"process_name,omitempty"`
}

// Snapshot serializes a container and its subtree. Positions are not
// included; use ToRect when geometry is needed.
func (t *Tree) Snapshot(id ContainerID) (ContainerDTO, error) {
	c, err := t.lookup("snapshot", id)
	if err != nil {
		return ContainerDTO{}, err
	}

	dto := ContainerDTO{
		Type:            c.Kind.String(),
		ID:              c.ID,
		ParentID:        c.Parent,
		Children:        make([]ContainerDTO, 0, len(c.Children)),
		ChildFocusOrder: append([]ContainerID{}, c.FocusOrder...),
	}

	switch c.Kind {
	case KindMonitor:
		rect := c.Rect
		dto.Name = c.Name
		dto.Rect = &rect
		dto.ScaleFactor = c.ScaleFactor
	case KindWorkspace:
		dto.Name = c.Name
		dto.TilingDirection = c.TilingDirection
	case KindSplit:
		size := c.TilingSize
		dto.TilingDirection = c.TilingDirection
		dto.TilingSize = &size
	case KindTilingWindow, KindNonTilingWindow:
		dto.State = c.State
		dto.Handle = c.Native.Handle
		dto.Title = c.Native.Title
		dto.ClassName = c.Native.ClassName
		dto.ProcessName = c.Native.ProcessName
		if c.Kind == KindTilingWindow {
			size := c.TilingSize
			dto.TilingSize = &size
		} else {
			rect := c.Rect
			dto.Rect = &rect
		}
	}

	for _, childID := range c.Children {
		child, err := t.Snapshot(childID)
		if err != nil {
			return ContainerDTO{}, err
		}
		dto.Children = append(dto.Children, child)
	}

	return dto, nil
}
