// Package rules contains the built-in audit rules for gohtmlint.
//
// Each rule is an independent check over the immutable document model:
// a pure function from the tree (and its derived indices) to a sequence
// of findings. Rules never depend on each other or on execution order.
// Built-in rules register themselves with lint.DefaultRegistry via init().
package rules
