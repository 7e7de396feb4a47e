// Package graph infers directed relationships from reference fields and
// ranks entities by connectivity so that the most diagram-worthy subset can
// be selected when the full graph is too large to render legibly.
package graph
