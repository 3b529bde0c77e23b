// Package merge folds parsed rule-file fragments into one resolved
// FontConfig, recursing through include directives.
//
// Resolution is single-threaded and depth-first: a child include borrows
// the same accumulator and returns before the parent folds its next
// fragment, so the accumulator is never shared. Drop-in directories are
// processed in sorted name order independent of filesystem enumeration
// order, and a visited-path set plus a depth cap guard against include
// cycles.
package merge
