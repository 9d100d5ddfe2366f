// Package runtime is the Go-level reference model of the runtime ABI:
// type/field/protocol metadata, the existential `Any` box,
// reference-counted "indirect type" boxes, and the handful of C
// functions (`trill_alloc`, `trill_retain`, `trill_release`,
// `trill_once`, `trill_fatalError`, …) generated IR calls into. irgen's
// textual IR references these functions by their mangled or fixed C
// names; this package is both that contract's specification in Go
// and, via its own test suite, a directly executable regression check
// of the retain-count state machine.
package runtime
