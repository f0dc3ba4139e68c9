package engine

// RevisionReader provides read-only access to the revision graph
// Thread-safe: All methods are safe for concurrent use
type RevisionReader interface {
	// Repository
	Root() string

	// State queries
	AllRevisions() []Revision
	GetRevision(key string) (Revision, bool)
	GetChildren(key string) []string

	// Head queries
	Heads() []string
	Head() (string, error) // Returns empty string if the repository is empty

	// Sequence returns the keys from base to target, both inclusive.
	// Empty base means the root, empty target means the unique head.
	Sequence(base, target string) ([]string, error)
}

// RevisionWriter provides write operations on the revision graph
// Thread-safe: All methods are safe for concurrent use
type RevisionWriter interface {
	Add(key, parent string) (string, error)
	Rebase(key, parent string) error
}

// Engine is the core interface for revision graph management
// Thread-safe: All methods are safe for concurrent use
type Engine interface {
	RevisionReader
	RevisionWriter
}
