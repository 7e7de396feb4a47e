// Package dot renders the selected entity subset and its relationships as a
// Graphviz DOT document: record-shaped nodes with category fill colors and
// directed edges styled by relationship kind. All style constants live in an
// explicit Style value so tests can inject alternate tables.
package dot
