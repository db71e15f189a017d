package domain

// OpKind is the kind of a single workload operation.
type OpKind uint8

const (
	// OpRead reads a key's counter.
	OpRead OpKind = iota
	// OpWrite increments a key's counter.
	OpWrite
)

// String returns "read" or "write".
func (k OpKind) String() string {
	switch k {
	case OpRead:
		return "read"
	case OpWrite:
		return "write"
	default:
		return "unknown"
	}
}

// Op is one (key, kind) pair drawn by a worker.
type Op struct {
	Key  int
	Kind OpKind
}
