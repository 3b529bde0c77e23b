// Package parser turns fontconfig rule markup into the pkg/types model.
//
// Two independent strategies are provided. The streaming DocumentReader
// consumes xml.Decoder events incrementally and produces a single-file
// Document without materializing a tree. The tree-walk ParseConfig walks
// an etree document and yields the ordered ConfigPart fragments the merge
// engine folds, include markers included.
//
// Both strategies funnel every string-to-typed-field conversion through
// the same coercion helpers, so attribute semantics are identical
// regardless of which parser produced them.
package parser
