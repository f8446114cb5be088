package aidharvest

// FindingAidNode is one entry in a finding aid hierarchy: a series,
// sub-series, or item. Children are in document order; a node with no
// children is a leaf, the actual described content unit (e.g. one letter
// or diary). Nesting depth is implicit in the tree shape; the cNN level
// markers in the source markup are consumed during extraction and never
// stored.
type FindingAidNode struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Digitised   bool              `json:"digitised"`
	FirstPage   string            `json:"first_page,omitempty"`
	Children    []*FindingAidNode `json:"children"`
}

// Validate returns an error if the node contains invalid fields.
// Downstream leaf and path derivations key on ID, so a missing id is
// never substituted with a synthetic one.
func (n *FindingAidNode) Validate() error {
	if n.ID == "" {
		return Errorf(EMISSINGID, "finding aid node %q requires an id", n.Title)
	}
	return nil
}
