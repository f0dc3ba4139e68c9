package engine

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
)

// randomKeyBytes is the number of random bytes in a generated key
const randomKeyBytes = 6

// Graph implements Engine on top of a repository directory
type Graph struct {
	root      string
	store     *store
	keygen    KeyGenerator
	revisions map[string]Revision
	mu        sync.RWMutex
}

var _ Engine = (*Graph)(nil)

// Option configures a Graph
type Option func(*Graph)

// WithKeyGenerator sets the generator used for revisions added without a key
func WithKeyGenerator(gen KeyGenerator) Option {
	return func(g *Graph) {
		g.keygen = gen
	}
}

// Open opens the repository at root and reads all revisions.
// A root that does not exist is an empty repository; it is created by the first Add.
func Open(root string, opts ...Option) (*Graph, error) {
	g := &Graph{
		root:   root,
		store:  &store{root: root},
		keygen: RandomKey,
	}
	for _, opt := range opts {
		opt(g)
	}

	revisions, err := g.store.scan()
	if err != nil {
		return nil, err
	}
	g.revisions = revisions

	return g, nil
}

// RandomKey returns a key of 12 lowercase hex characters
func RandomKey() (string, error) {
	b := make([]byte, randomKeyBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate revision key: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Root returns the repository directory
func (g *Graph) Root() string {
	return g.root
}
