//go:build !linux

package procmem

// Supported reports whether this platform can sample resident memory.
const Supported = false

// Sample always reports an unmeasured value on this platform.
func Sample() (rss uint64, ok bool) {
	return 0, false
}
