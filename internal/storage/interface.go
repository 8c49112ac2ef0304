package storage

// KV is the persistence port every component writes through: a flat
// key-value store of string payloads. SetAll applies a multi-key batch
// atomically so logically-related writes (cycle + current-cycle pointer,
// rollover bundles) cannot be torn by a crash mid-sequence.
type KV interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	SetAll(pairs map[string]string) error

	// Path returns the backing file path.
	Path() string
}
