package engine

// Revision is the metadata of a single revision
type Revision struct {
	Key    string
	Parent string // Empty for a root revision
}

// IsRoot reports whether the revision has no parent
func (r Revision) IsRoot() bool {
	return r.Parent == ""
}

// KeyGenerator produces keys for revisions added without an explicit key
type KeyGenerator func() (string, error)
