package domain

import (
	"fmt"
	"strings"
)

// DropPosition describes where a dragged node lands relative to a drop target
type DropPosition string

const (
	DropNone   DropPosition = ""
	DropBefore DropPosition = "before"
	DropAfter  DropPosition = "after"
	DropInside DropPosition = "inside"
)

// ParseDropPosition converts user input into a DropPosition
func ParseDropPosition(s string) (DropPosition, error) {
	switch p := DropPosition(strings.ToLower(strings.TrimSpace(s))); p {
	case DropBefore, DropAfter, DropInside:
		return p, nil
	case "none", "":
		return DropNone, nil
	default:
		return DropNone, NewValidationError(fmt.Sprintf("invalid drop position: %q (must be 'before', 'after' or 'inside')", s))
	}
}

func (p DropPosition) String() string {
	if p == DropNone {
		return "none"
	}
	return string(p)
}

// Placement reports where AddComponent put a new node
type Placement int

const (
	PlacedAtRoot Placement = iota
	PlacedInGrid
	// RedirectedToRoot means the requested parent was missing, not a grid, or full
	RedirectedToRoot
	// PlacementRejected means the node was not added (invalid type or duplicate id)
	PlacementRejected
)

func (p Placement) String() string {
	switch p {
	case PlacedAtRoot:
		return "root"
	case PlacedInGrid:
		return "grid"
	case RedirectedToRoot:
		return "redirected_to_root"
	case PlacementRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// MoveOutcome reports the result of MoveComponent.
// Every outcome other than Moved leaves the document unchanged.
type MoveOutcome int

const (
	Moved MoveOutcome = iota
	MoveSelf
	MoveSourceMissing
	MoveTargetMissing
	MoveIntoDescendant
	MoveInsideNonGrid
	MoveGridFull
	MoveNoPosition
)

func (o MoveOutcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case MoveSelf:
		return "self_drop"
	case MoveSourceMissing:
		return "source_missing"
	case MoveTargetMissing:
		return "target_missing"
	case MoveIntoDescendant:
		return "into_descendant"
	case MoveInsideNonGrid:
		return "inside_non_grid"
	case MoveGridFull:
		return "grid_full"
	case MoveNoPosition:
		return "no_position"
	default:
		return "unknown"
	}
}
