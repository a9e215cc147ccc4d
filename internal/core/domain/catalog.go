package domain

// Catalog is the set of item specs the project file currently declares.
// Filters consult it to validate additions against declared items. A nil
// *Catalog means "no data": filters that depend on item-spec validation
// must degrade gracefully instead of vetoing.
type Catalog struct {
	itemSpecs map[string]struct{}
}

// NewCatalog builds a catalog from declared item specs.
func NewCatalog(itemSpecs []string) *Catalog {
	specs := make(map[string]struct{}, len(itemSpecs))
	for _, spec := range itemSpecs {
		specs[spec] = struct{}{}
	}
	return &Catalog{itemSpecs: specs}
}

// ContainsItemSpec reports whether the catalog declares the given item spec.
// A nil catalog reports true for every spec, so absent data never vetoes.
func (c *Catalog) ContainsItemSpec(spec string) bool {
	if c == nil {
		return true
	}
	_, ok := c.itemSpecs[spec]
	return ok
}

// Len returns the number of declared item specs, zero for a nil catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.itemSpecs)
}
