package aidharvest

import "iter"

// Leaves returns a pre-order, left-to-right iterator over the leaf nodes
// of the given top-level series, matching document order. The sequence is
// stateless and restartable: each range starts a fresh traversal over the
// already-built tree.
func Leaves(nodes []*FindingAidNode) iter.Seq[*FindingAidNode] {
	return func(yield func(*FindingAidNode) bool) {
		for _, node := range nodes {
			if !yieldLeaves(node, yield) {
				return
			}
		}
	}
}

func yieldLeaves(node *FindingAidNode, yield func(*FindingAidNode) bool) bool {
	if len(node.Children) == 0 {
		return yield(node)
	}
	for _, child := range node.Children {
		if !yieldLeaves(child, yield) {
			return false
		}
	}
	return true
}

// CollectLeaves returns the leaf nodes as a slice in document order.
func CollectLeaves(nodes []*FindingAidNode) []*FindingAidNode {
	var leaves []*FindingAidNode
	for leaf := range Leaves(nodes) {
		leaves = append(leaves, leaf)
	}
	return leaves
}
