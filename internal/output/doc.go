// internal/output/doc.go

// Package output turns fit and Student-t results into serialized
// reports.
//
// Design:
//   - Writers own all presentation knowledge (text blocks, JSON, LaTeX).
//   - core stays domain-only; the CLI stays orchestration-only.
//   - JSON goes through pkg/api (v1) for a stable wire format.
//   - The rounding policy is threaded through every writer, so one
//     --rounding flag changes text, JSON and LaTeX alike.
package output
