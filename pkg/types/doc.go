// Package types defines the data model for fontconfig rule files.
//
// The model mirrors the rule DSL directly: leaf Values, recursive
// Expressions built from them, typed Properties, and the per-file
// configuration fragments (dirs, cache dirs, includes, matches, aliases)
// that the merge engine folds into a resolved FontConfig.
//
// Everything here is plain data. Parsing lives in pkg/parser and the
// multi-file include resolution in pkg/merge; the only behavior the model
// owns is text-form coercion for its closed enums and the fallible
// property conversion MakeProperty.
package types
