package cache

import "fmt"

// Keyer builds cache keys for each pipeline stage.
type Keyer interface {
	MazeKey(opts MazeKeyOpts) string
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// MazeKeyOpts identifies a generated and merged maze.
type MazeKeyOpts struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Seed     uint64 `json:"seed"`
	Attempts int    `json:"attempts"`
	MaxDepth int    `json:"max_depth"`
}

// ArtifactKeyOpts identifies one rendered output of a layout.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	CellSize int    `json:"cell_size"`
	Solution bool   `json:"solution"`
}

// DefaultKeyer hashes the key options into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a keyer without namespace.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// MazeKey returns the key of a generated layout.
func (DefaultKeyer) MazeKey(opts MazeKeyOpts) string {
	return hashKey("maze", opts)
}

// ArtifactKey returns the key of a rendered artifact.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey(fmt.Sprintf("artifact:%s", opts.Format), layoutHash, opts)
}
