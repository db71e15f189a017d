// Package procmem samples the resident memory of the current process.
//
// Sampling is capability gated: on Linux the value comes from
// /proc/self/stat via prometheus/procfs; elsewhere Sample reports that no
// measurement was taken. Callers must treat an unmeasured sample as
// "unknown", never as "zero bytes in use".
package procmem
