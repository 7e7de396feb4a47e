package dot

import (
	"fmt"
	"strings"

	"github.com/sftools/sferd/pkg/sferd"
)

// Serializer renders entities and relationships as a DOT document. It holds
// no mutable state; a single instance can serve any number of renders.
type Serializer struct {
	style Style
}

// NewSerializer creates a serializer with the given style.
func NewSerializer(style Style) *Serializer {
	return &Serializer{style: style}
}

// Render produces a complete DOT document for the selected entity names.
//
// Selected names with no Entity record (referenced by rank but never loaded)
// are silently omitted from node emission. Edges are emitted only when both
// endpoints are selected, anchored to the source field's record port.
func (s *Serializer) Render(selected []string, entities map[string]*sferd.Entity, rels []sferd.Relationship, policy sferd.DisplayPolicy, title string) string {
	var b strings.Builder

	s.writeHeader(&b, title)

	selectedSet := make(map[string]struct{}, len(selected))
	for _, name := range selected {
		selectedSet[name] = struct{}{}
		entity, ok := entities[name]
		if !ok {
			continue
		}
		s.writeNode(&b, entity, policy)
	}

	b.WriteString("\n")

	for _, rel := range rels {
		if _, ok := selectedSet[rel.SourceEntity]; !ok {
			continue
		}
		if _, ok := selectedSet[rel.TargetEntity]; !ok {
			continue
		}
		s.writeEdge(&b, rel)
	}

	b.WriteString("}\n")
	return b.String()
}

func (s *Serializer) writeHeader(b *strings.Builder, title string) {
	fmt.Fprintf(b, "digraph G {\n")
	fmt.Fprintf(b, "  label=\"%s\";\n", sanitizeLabel(title, s.style.MaxLabelLength))
	fmt.Fprintf(b, "  labelloc=t;\n")
	fmt.Fprintf(b, "  fontsize=%d;\n", s.style.TitleFontSize)
	fmt.Fprintf(b, "  fontname=\"%s\";\n", s.style.FontName)
	fmt.Fprintf(b, "  rankdir=%s;\n", s.style.RankDir)
	fmt.Fprintf(b, "  splines=%s;\n", s.style.Splines)
	fmt.Fprintf(b, "  nodesep=%.1f;\n", s.style.NodeSep)
	fmt.Fprintf(b, "  ranksep=%.1f;\n", s.style.RankSep)
	fmt.Fprintf(b, "  overlap=false;\n")
	fmt.Fprintf(b, "  concentrate=false;\n")
	fmt.Fprintf(b, "  node [shape=record, style=filled, fontname=\"%s\", fontsize=%d, margin=0.1];\n",
		s.style.FontName, s.style.NodeFontSize)
	fmt.Fprintf(b, "  edge [fontname=\"%s\", fontsize=%d, penwidth=%.1f];\n",
		s.style.FontName, s.style.EdgeFontSize, s.style.WeakEdge.PenWidth)
	b.WriteString("\n")
}

// writeNode emits one record node: the entity label, then one line per
// displayed reference field, then an overflow marker when truncated.
func (s *Serializer) writeNode(b *strings.Builder, entity *sferd.Entity, policy sferd.DisplayPolicy) {
	parts := []string{"*" + sanitizeLabel(entity.Label, s.style.MaxLabelLength) + "*"}

	if policy.ShowFields {
		eligible := entity.ReferenceFields()
		shown := eligible
		if policy.MaxFieldsPerEntity != nil && len(eligible) > *policy.MaxFieldsPerEntity {
			shown = eligible[:*policy.MaxFieldsPerEntity]
		}
		for _, field := range shown {
			name := sanitizeLabel(field.Name, s.style.MaxLabelLength)
			if field.Required {
				name = "*" + name + "*"
			}
			parts = append(parts, name+" : "+sanitizeLabel(field.DataType, s.style.MaxLabelLength))
		}
		if hidden := len(eligible) - len(shown); hidden > 0 {
			parts = append(parts, fmt.Sprintf("+%d more", hidden))
		}
	}

	fmt.Fprintf(b, "  %s [label=\"%s\", fillcolor=\"%s\"];\n",
		entity.Name, strings.Join(parts, "|"), s.style.FillColors[entity.Category])
}

// writeEdge emits one directed edge anchored to the source field's port.
func (s *Serializer) writeEdge(b *strings.Builder, rel sferd.Relationship) {
	fmt.Fprintf(b, "  %s:\"%s\" -> %s [%s];\n",
		rel.SourceEntity, rel.SourceField, rel.TargetEntity, s.style.edgeStyle(rel.Kind).attrs())
}
