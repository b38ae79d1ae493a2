package onet

// Catalog lists the tile types available to a board. Identifiers are opaque
// to the core: a terminal host uses glyphs, another host might use asset
// names. Tile t maps to entry t-1.
type Catalog struct {
	ids []string
}

// NewCatalog creates a catalog from tile identifiers.
func NewCatalog(ids ...string) Catalog {
	return Catalog{ids: append([]string(nil), ids...)}
}

// Len returns the number of tile types.
func (c Catalog) Len() int {
	return len(c.ids)
}

// ID returns the identifier of tile t, or "" for Empty and unknown tiles.
func (c Catalog) ID(t Tile) string {
	i := int(t) - 1
	if i < 0 || i >= len(c.ids) {
		return ""
	}
	return c.ids[i]
}
