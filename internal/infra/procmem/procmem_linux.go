//go:build linux

package procmem

import (
	"github.com/prometheus/procfs"
)

// Supported reports whether this platform can sample resident memory.
const Supported = true

// Sample returns the resident set size of the current process in bytes.
// ok is false when the sample could not be taken.
func Sample() (rss uint64, ok bool) {
	p, err := procfs.Self()
	if err != nil {
		return 0, false
	}
	stat, err := p.Stat()
	if err != nil {
		return 0, false
	}
	return uint64(stat.ResidentMemory()), true
}
