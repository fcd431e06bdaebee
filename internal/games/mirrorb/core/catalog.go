package core

import "fmt"

// Map bytes produced by level expansion.
const (
	BlockMarker byte = '.'
	FloorMarker byte = 'x'
	OrbMarker   byte = 'o'
)

// Block is one decoded level record.
type Block struct {
	Pieces int    // Inventory size: 8, 16 or 24
	Size   int    // Side length N
	Orbs   int    // Declared orb count
	Map    []byte // N*N marker bytes, row-major
}

// Key returns the tuple that decides pool membership.
func (b Block) Key() [3]int {
	return [3]int{b.Pieces, b.Size, b.Orbs}
}

// Catalog is the ordered sequence of option pools. Pool i holds every
// consecutive block sharing (pieces, size, orbs).
type Catalog struct {
	Pools [][]Block
}

// NewCatalog groups blocks into pools in file order.
func NewCatalog(blocks []Block) *Catalog {
	c := &Catalog{}
	var prev [3]int
	for i, b := range blocks {
		if i == 0 || b.Key() != prev {
			c.Pools = append(c.Pools, nil)
			prev = b.Key()
		}
		last := len(c.Pools) - 1
		c.Pools[last] = append(c.Pools[last], b)
	}
	return c
}

// Len returns the number of pools.
func (c *Catalog) Len() int {
	return len(c.Pools)
}

// Pool returns the options of the 1-based level, or nil when out of range.
func (c *Catalog) Pool(level int) []Block {
	if level < 1 || level > len(c.Pools) {
		return nil
	}
	return c.Pools[level-1]
}

// MapCount returns the total number of blocks.
func (c *Catalog) MapCount() int {
	n := 0
	for _, p := range c.Pools {
		n += len(p)
	}
	return n
}

// LevelCount returns the number of distinct levels a player sees: one per
// pool plus one more for every pool offering a second variant.
func (c *Catalog) LevelCount() int {
	n := 0
	for _, p := range c.Pools {
		n++
		if len(p) > 1 {
			n++
		}
	}
	return n
}

// Summary returns the version line shown on the title screen.
func (c *Catalog) Summary(version string) string {
	return fmt.Sprintf("mirr/orb %s, %d levels, %d maps", version, c.LevelCount(), c.MapCount())
}

// FinalLevel returns the displayed label of the last level, or 0 for an
// empty catalog.
func (c *Catalog) FinalLevel() int {
	n := len(c.Pools)
	if n == 0 {
		return 0
	}
	return DisplayedLevel(n, (len(c.Pools[n-1])-1)%2)
}
