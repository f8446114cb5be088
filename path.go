package aidharvest

import "strings"

// LeafPath locates a leaf within its hierarchy. Context is the chain of
// ancestor titles from the top-level series down to the leaf's immediate
// parent, used to recover descriptive information inherited from higher
// levels.
type LeafPath struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Context string `json:"context"`
}

// BuildPaths returns one LeafPath per leaf, in document order. Context
// joins the ancestor titles with " / " and excludes the leaf's own title.
// Every subtree descends with its own copy of the ancestor trail, so
// repeated calls and sibling series traversals share no state.
func BuildPaths(nodes []*FindingAidNode) []LeafPath {
	var paths []LeafPath
	for _, node := range nodes {
		paths = walkPaths(paths, node, nil)
	}
	return paths
}

func walkPaths(paths []LeafPath, node *FindingAidNode, ancestors []string) []LeafPath {
	if len(node.Children) == 0 {
		return append(paths, LeafPath{
			ID:      node.ID,
			Title:   node.Title,
			Context: strings.Join(ancestors, " / "),
		})
	}
	trail := make([]string, len(ancestors)+1)
	copy(trail, ancestors)
	trail[len(ancestors)] = node.Title
	for _, child := range node.Children {
		paths = walkPaths(paths, child, trail)
	}
	return paths
}
