// Package densemat is an in-memory toolkit for dense linear algebra:
// contiguous row-major matrices, hybrid classical/Strassen multiplication,
// and pivoted LU factorization with a triangular solver.
//
// 🚀 What is densemat?
//
//	A small, deterministic numeric kernel that brings together:
//		• Dense container: one contiguous buffer per matrix, row-major, no views
//		• Elementwise ops: add/subtract with strict shape validation
//		• Hybrid multiply: cache-ordered O(n³) below a threshold,
//		  padded Strassen divide-and-conquer above it
//		• Pivoted LU: packed in-place factors, permutation vector, swap parity
//		• Triangular solver: permute → forward → backward substitution
//
// ✨ Why choose densemat?
//
//   - Predictable numerics – partial pivoting, fixed loop orders, no hidden state
//   - Cache-aware kernels – i→k→j multiplication over flat storage
//   - Generic container – any signed numeric scalar; factorization is
//     restricted to floating point where division demands it
//   - Closed error set – sentinel errors matched with errors.Is, never free text
//
// Everything is organized under three subpackages plus a CLI:
//
//	matrix/       — Dense container, sub-blocks, padding, add/sub, multiply
//	lu/           — pivoted factorization, determinant, linear-system solve
//	textio/       — plain-text matrix and vector file adapters
//	cmd/densemat/ — file-driven multiply/solve/verify/bench commands
//
// Quick sketch of the multiply dispatch:
//
//	small operands ──────────────► classical i→k→j
//	large operands ── pad to 2^k ─► Strassen (M1..M7) ── crop ─► result
//
// Dive into the package docs for contracts, invariants, and examples.
package densemat
