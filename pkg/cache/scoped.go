package cache

// ScopedKeyer wraps a Keyer with a prefix, giving each scope its own
// namespace in a shared cache.
//
// Example usage:
//
//	// Keys for artifacts rendered from a team's custom catalog
//	teamKeyer := NewScopedKeyer(NewDefaultKeyer(), "catalog:brand:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// A nil inner keyer means DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(hash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(hash, opts)
}

// SheetKey generates a prefixed sheet key.
func (k *ScopedKeyer) SheetKey(hash string, opts SheetKeyOpts) string {
	return k.prefix + k.inner.SheetKey(hash, opts)
}
