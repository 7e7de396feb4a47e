package dot

import (
	"fmt"

	"github.com/sftools/sferd/pkg/sferd"
)

// EdgeStyle is a fixed preset for one relationship kind.
type EdgeStyle struct {
	ArrowHead string
	ArrowTail string
	Color     string
	PenWidth  float64
}

// attrs renders the preset as a DOT attribute list.
func (e EdgeStyle) attrs() string {
	return fmt.Sprintf("arrowhead=%s, arrowtail=%s, color=%s, penwidth=%.1f",
		e.ArrowHead, e.ArrowTail, e.Color, e.PenWidth)
}

// FieldLimitRule maps a minimum selection size to a per-entity field cap.
type FieldLimitRule struct {
	// MinSelected is the smallest selection size this rule applies to.
	MinSelected int

	// MaxFields is the per-entity field cap for diagrams of that size.
	MaxFields int
}

// Style is the immutable rendering configuration: colors, edge presets,
// layout attributes, label limits, and the auto-truncation threshold table.
type Style struct {
	// FillColors maps entity categories to node fill colors.
	FillColors map[sferd.Category]string

	// StrongEdge styles ownership (MasterDetail) relationships.
	StrongEdge EdgeStyle

	// WeakEdge styles soft (Lookup) relationships.
	WeakEdge EdgeStyle

	// FontName is used for the title, nodes, and edges.
	FontName string

	// TitleFontSize, NodeFontSize, EdgeFontSize in points.
	TitleFontSize int
	NodeFontSize  int
	EdgeFontSize  int

	// RankDir is the layout direction (LR gives better horizontal use).
	RankDir string

	// Splines selects the edge routing (ortho keeps large diagrams readable).
	Splines string

	// NodeSep and RankSep control spacing between nodes and ranks.
	NodeSep float64
	RankSep float64

	// MaxLabelLength caps any literal label text; longer text is cut to
	// MaxLabelLength-3 characters plus an ellipsis marker.
	MaxLabelLength int

	// FieldLimits is the descending threshold table for auto-truncation.
	// The first rule whose MinSelected is <= the selection size wins;
	// selections smaller than every rule get no limit.
	FieldLimits []FieldLimitRule
}

// DefaultStyle returns the standard ERD style: light blue for standard
// objects, light orange for managed packages, light yellow for custom
// objects, dotted steelblue edges for ownership links and open gray arrows
// for lookups.
func DefaultStyle() Style {
	return Style{
		FillColors: map[sferd.Category]string{
			sferd.CategoryStandard:       "#E1F5FE",
			sferd.CategoryManagedPackage: "#FFE0B2",
			sferd.CategoryCustom:         "#FFF9C4",
		},
		StrongEdge: EdgeStyle{
			ArrowHead: "dot",
			ArrowTail: "dot",
			Color:     "steelblue",
			PenWidth:  2.0,
		},
		WeakEdge: EdgeStyle{
			ArrowHead: "open",
			ArrowTail: "none",
			Color:     "gray",
			PenWidth:  1.5,
		},
		FontName:       "Arial, sans-serif",
		TitleFontSize:  24,
		NodeFontSize:   12,
		EdgeFontSize:   10,
		RankDir:        "LR",
		Splines:        "ortho",
		NodeSep:        1.0,
		RankSep:        2.0,
		MaxLabelLength: 25,
		FieldLimits: []FieldLimitRule{
			{MinSelected: 500, MaxFields: 2},
			{MinSelected: 200, MaxFields: 3},
			{MinSelected: 100, MaxFields: 4},
			{MinSelected: 50, MaxFields: 6},
			{MinSelected: 20, MaxFields: 8},
		},
	}
}

// AutoFieldLimit derives a per-entity field cap from the selection size.
// Rules are checked highest threshold first; the first match wins. Returns
// nil (no limit) for selections below every threshold.
func (s Style) AutoFieldLimit(selectedCount int) *int {
	for _, rule := range s.FieldLimits {
		if selectedCount >= rule.MinSelected {
			limit := rule.MaxFields
			return &limit
		}
	}
	return nil
}

// edgeStyle returns the preset for a relationship kind.
func (s Style) edgeStyle(kind sferd.Kind) EdgeStyle {
	if kind == sferd.KindStrong {
		return s.StrongEdge
	}
	return s.WeakEdge
}
