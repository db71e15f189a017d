// Package domain defines the core value types of mapbench.
//
// Domain types are plain values without IO dependencies. This package
// contains:
//
//   - Result: the immutable record produced by one benchmark run
//   - OpKind: the read/write decision made for each operation
//   - Errors: coded errors shared by configuration, driver and CLI
package domain
