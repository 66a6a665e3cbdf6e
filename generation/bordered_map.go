package generation

import (
	"fmt"

	"retro3d/components"
)

// BorderIDs are the palette ids of the four outer walls
type BorderIDs struct {
	Top, Bottom, Left, Right int
}

// NewBorderedMap creates a blank map and paints a wall along each edge with
// its own id and color. Edges are painted top, bottom, left, right, so the
// side walls own the corners.
func NewBorderedMap(width, height int, src components.ColorSource) (*components.MapComponent, BorderIDs, error) {
	var ids BorderIDs

	mapComp, err := components.NewMapComponent(width, height)
	if err != nil {
		return nil, ids, err
	}

	for _, id := range []*int{&ids.Top, &ids.Bottom, &ids.Left, &ids.Right} {
		if *id, err = mapComp.AssignNewColor(src); err != nil {
			return nil, ids, err
		}
	}

	for x := 0; x < width; x++ {
		if err := mapComp.SetCell(x, 0, ids.Top); err != nil {
			return nil, ids, fmt.Errorf("painting top wall: %w", err)
		}
	}
	for x := 0; x < width; x++ {
		if err := mapComp.SetCell(x, height-1, ids.Bottom); err != nil {
			return nil, ids, fmt.Errorf("painting bottom wall: %w", err)
		}
	}
	for y := 0; y < height; y++ {
		if err := mapComp.SetCell(0, y, ids.Left); err != nil {
			return nil, ids, fmt.Errorf("painting left wall: %w", err)
		}
	}
	for y := 0; y < height; y++ {
		if err := mapComp.SetCell(width-1, y, ids.Right); err != nil {
			return nil, ids, fmt.Errorf("painting right wall: %w", err)
		}
	}

	return mapComp, ids, nil
}
