package aidharvest_test

import (
	"testing"

	"github.com/fwojciec/aidharvest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatSeries(ids ...string) []*aidharvest.FindingAidNode {
	nodes := make([]*aidharvest.FindingAidNode, len(ids))
	for i, id := range ids {
		nodes[i] = &aidharvest.FindingAidNode{ID: id, Title: "Series " + id}
	}
	return nodes
}

func TestLeaves(t *testing.T) {
	t.Parallel()

	t.Run("flat series are all leaves in document order", func(t *testing.T) {
		t.Parallel()

		nodes := flatSeries("s1", "s2", "s3")

		leaves := aidharvest.CollectLeaves(nodes)

		require.Len(t, leaves, 3)
		assert.Equal(t, "s1", leaves[0].ID)
		assert.Equal(t, "s2", leaves[1].ID)
		assert.Equal(t, "s3", leaves[2].ID)
	})

	t.Run("yields only bottom-level items of a nested tree", func(t *testing.T) {
		t.Parallel()

		nodes := []*aidharvest.FindingAidNode{
			{
				ID: "s1", Title: "Series 1",
				Children: []*aidharvest.FindingAidNode{
					{
						ID: "ss1", Title: "Subseries 1",
						Children: []*aidharvest.FindingAidNode{
							{ID: "i1", Title: "Item 1"},
							{ID: "i2", Title: "Item 2"},
						},
					},
					{ID: "i3", Title: "Item 3"},
				},
			},
			{ID: "s2", Title: "Series 2"},
		}

		leaves := aidharvest.CollectLeaves(nodes)

		require.Len(t, leaves, 4)
		assert.Equal(t, []string{"i1", "i2", "i3", "s2"}, []string{
			leaves[0].ID, leaves[1].ID, leaves[2].ID, leaves[3].ID,
		})
	})

	t.Run("sequence is restartable", func(t *testing.T) {
		t.Parallel()

		nodes := flatSeries("s1", "s2")
		seq := aidharvest.Leaves(nodes)

		var first, second []string
		for leaf := range seq {
			first = append(first, leaf.ID)
		}
		for leaf := range seq {
			second = append(second, leaf.ID)
		}

		assert.Equal(t, first, second)
	})

	t.Run("supports early termination", func(t *testing.T) {
		t.Parallel()

		nodes := flatSeries("s1", "s2", "s3")

		var got []string
		for leaf := range aidharvest.Leaves(nodes) {
			got = append(got, leaf.ID)
			if len(got) == 2 {
				break
			}
		}

		assert.Equal(t, []string{"s1", "s2"}, got)
	})

	t.Run("empty input yields nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, aidharvest.CollectLeaves(nil))
	})
}
