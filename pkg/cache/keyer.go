package cache

// keyVersion is bumped whenever the rendered output changes for identical
// inputs, which invalidates every previously stored artifact.
const keyVersion = "v1"

// Keyer derives cache keys from rendering inputs.
type Keyer interface {
	// ArtifactKey returns the key for a single rendered badge. hash
	// identifies the badge's render instructions.
	ArtifactKey(hash string, opts ArtifactKeyOpts) string

	// SheetKey returns the key for a contact sheet. hash identifies the
	// catalog contents the sheet was drawn from.
	SheetKey(hash string, opts SheetKeyOpts) string
}

// ArtifactKeyOpts holds the output settings that affect a single artifact.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
	Engine string  `json:"engine,omitempty"`
}

// SheetKeyOpts holds the output settings that affect a contact sheet.
type SheetKeyOpts struct {
	Format  string  `json:"format"`
	Scheme  string  `json:"scheme"`
	Size    float64 `json:"size"`
	Columns int     `json:"columns,omitempty"`
	Labels  bool    `json:"labels,omitempty"`
	Scale   float64 `json:"scale,omitempty"`
	Engine  string  `json:"engine,omitempty"`
}

// DefaultKeyer produces keys of the form "kind:sha256".
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(hash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", keyVersion, hash, opts)
}

// SheetKey implements Keyer.
func (DefaultKeyer) SheetKey(hash string, opts SheetKeyOpts) string {
	return hashKey("sheet", keyVersion, hash, opts)
}

var _ Keyer = DefaultKeyer{}
