package entity

import "fmt"

// Direction is a cardinal direction used by focus and move commands.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
)

// ParseDirection validates a direction name.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case DirectionLeft, DirectionRight, DirectionUp, DirectionDown:
		return d, nil
	default:
		return "", fmt.Errorf("unknown direction %q", s)
	}
}

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	switch d {
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	case DirectionUp:
		return DirectionDown
	default:
		return DirectionUp
	}
}

// TowardsStart reports whether the direction points at the beginning of a
// children sequence (Up/Left).
func (d Direction) TowardsStart() bool {
	return d == DirectionLeft || d == DirectionUp
}

// TilingDirection is the axis along which a container lays out its tiling children.
type TilingDirection string

const (
	TilingHorizontal TilingDirection = "horizontal"
	TilingVertical   TilingDirection = "vertical"
)

// TilingDirectionFrom maps Left/Right to horizontal and Up/Down to vertical.
func TilingDirectionFrom(d Direction) TilingDirection {
	if d == DirectionLeft || d == DirectionRight {
		return TilingHorizontal
	}
	return TilingVertical
}

// ParseTilingDirection validates a tiling direction name.
func ParseTilingDirection(s string) (TilingDirection, error) {
	switch t := TilingDirection(s); t {
	case TilingHorizontal, TilingVertical:
		return t, nil
	default:
		return "", fmt.Errorf("unknown tiling direction %q", s)
	}
}

// Inverse returns the other axis.
func (t TilingDirection) Inverse() TilingDirection {
	if t == TilingHorizontal {
		return TilingVertical
	}
	return TilingHorizontal
}
