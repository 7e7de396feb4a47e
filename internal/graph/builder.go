package graph

import (
	"github.com/sftools/sferd/pkg/sferd"
)

// Build scans all loaded entities and emits one relationship per reference
// field with a non-empty target. MasterDetail references produce strong
// relationships; Lookup references produce weak ones.
//
// Emission order is entity load order crossed with field load order, which
// makes the output deterministic for identical input trees.
func Build(result *sferd.LoadResult) []sferd.Relationship {
	var rels []sferd.Relationship

	for _, name := range result.Order {
		entity := result.Entities[name]
		if entity == nil {
			continue
		}
		for _, field := range entity.Fields {
			if !field.IsReference || field.ReferenceTarget == "" {
				continue
			}
			kind := sferd.KindWeak
			if field.DataType == sferd.TypeMasterDetail {
				kind = sferd.KindStrong
			}
			rels = append(rels, sferd.Relationship{
				SourceEntity: name,
				TargetEntity: field.ReferenceTarget,
				SourceField:  field.Name,
				Kind:         kind,
			})
		}
	}
	return rels
}
