package bst

import (
	"bytes"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referenceInput = []int{16, 24, 15, 13, 18, 56, 13, 19, 17}

func referenceTree() *Tree[int] {
	tree := New[int]()
	tree.InsertAll(referenceInput...)
	return tree
}

// TestNewTree verifies that a new tree starts empty.
func TestNewTree(t *testing.T) {
	tree := New[int]()
	assert.True(t, tree.IsEmpty(), "New tree should be empty")
	assert.Nil(t, tree.Root(), "New tree should have no root")
	assert.Equal(t, 0, tree.Count(), "New tree should have a count of 0")
	assert.Equal(t, 0, tree.Height(), "New tree should have a height of 0")
	assert.Equal(t, "", tree.String())
}

func TestNewFuncPanicsWithoutComparator(t *testing.T) {
	assert.Panics(t, func() {
		NewFunc[int](nil)
	}, "Should panic when no comparison function is given")
}

// TestInsertRoot verifies that the first value becomes the root.
func TestInsertRoot(t *testing.T) {
	tree := New[int]()
	assert.Equal(t, Inserted, tree.Insert(16))
	require.NotNil(t, tree.Root())
	assert.Equal(t, 16, tree.Root().Value())
	assert.True(t, tree.Root().IsLeaf(), "Root should be a leaf while alone")
	assert.False(t, tree.IsEmpty())
	assert.Equal(t, 1, tree.Count())
}

// TestInsertReferenceScenario checks the shape and traversals of the classic example.
func TestInsertReferenceScenario(t *testing.T) {
	tree := New[int]()

	outcomes := []Outcome{}
	for _, v := range referenceInput {
		outcomes = append(outcomes, tree.Insert(v))
	}

	assert.Equal(t, []Outcome{
		Inserted, Inserted, Inserted, Inserted, Inserted, Inserted,
		DuplicateIgnored, Inserted, Inserted,
	}, outcomes)
	assert.Equal(t, 8, tree.Count(), "The second 13 should be rejected")

	assert.Equal(t, []int{16, 15, 13, 24, 18, 17, 19, 56}, tree.Values(Preorder))
	assert.Equal(t, []int{13, 15, 16, 17, 18, 19, 24, 56}, tree.Values(Inorder))
	assert.Equal(t, []int{13, 15, 17, 19, 18, 56, 24, 16}, tree.Values(Postorder))
	assert.Equal(t, "13 15 16 17 18 19 24 56", tree.String())

	assert.True(t, tree.Contains(24))
	assert.False(t, tree.Contains(99))

	root := tree.Root()
	assert.Equal(t, 16, root.Value())
	assert.Equal(t, 15, root.Left().Value())
	assert.Equal(t, 24, root.Right().Value())
	assert.Equal(t, 13, root.Left().Left().Value())
	assert.Nil(t, root.Left().Right())
	assert.Equal(t, 18, root.Right().Left().Value())
	assert.Equal(t, 56, root.Right().Right().Value())
	assert.Equal(t, 4, tree.Height())
}

// TestInsertDuplicateKeepsStructure verifies that duplicates are a no-op.
func TestInsertDuplicateKeepsStructure(t *testing.T) {
	tree := referenceTree()
	before := tree.Values(Preorder)

	for _, v := range referenceInput {
		assert.Equal(t, DuplicateIgnored, tree.Insert(v), "Value %d is already present", v)
	}

	assert.Equal(t, 8, tree.Count())
	assert.Equal(t, before, tree.Values(Preorder), "Structure should not change on duplicates")
}

func TestInsertAll(t *testing.T) {
	tree := New[int]()
	assert.Equal(t, 8, tree.InsertAll(referenceInput...))
	assert.Equal(t, 0, tree.InsertAll(13, 16, 56))
	assert.Equal(t, 8, tree.Count())
}

// TestDegenerateChain verifies that sorted input builds a right-only chain.
func TestDegenerateChain(t *testing.T) {
	tree := New[int]()
	tree.InsertAll(1, 2, 3, 4, 5)

	assert.Equal(t, 5, tree.Height(), "Ascending input should produce a chain of depth 5")
	assert.Equal(t, []int{1, 2, 3, 4, 5}, tree.Values(Inorder))

	for n := tree.Root(); n != nil; n = n.Right() {
		assert.Nil(t, n.Left(), "Chain node %d should have no left child", n.Value())
	}
}

// TestLargeDegenerateChain makes sure the traversals do not depend on call depth.
func TestLargeDegenerateChain(t *testing.T) {
	const size = 5_000
	tree := New[int]()
	for i := size; i > 0; i-- {
		tree.Insert(i)
	}

	assert.Equal(t, size, tree.Count())
	assert.Equal(t, size, tree.Height())
	for _, order := range Orders() {
		assert.Len(t, tree.Values(order), size, "%s should visit every node", order)
	}
}

func TestFind(t *testing.T) {
	tree := referenceTree()

	node := tree.Find(18)
	require.NotNil(t, node)
	assert.Equal(t, 18, node.Value())
	assert.Equal(t, 17, node.Left().Value())
	assert.Equal(t, 19, node.Right().Value())

	assert.Nil(t, tree.Find(20))
	assert.Nil(t, New[int]().Find(1), "Find on an empty tree should return nil")
}

func TestEmptyTraversals(t *testing.T) {
	tree := New[string]()
	for _, order := range Orders() {
		visited := 0
		tree.Walk(order, func(string) { visited++ })
		assert.Equal(t, 0, visited, "%s over an empty tree should yield nothing", order)
		assert.Empty(t, tree.Values(order))
	}
}

// TestTraversalEarlyStop verifies that a consumer can stop pulling without harm.
func TestTraversalEarlyStop(t *testing.T) {
	tree := referenceTree()

	var firstThree []int
	for v := range tree.Inorder() {
		firstThree = append(firstThree, v)
		if len(firstThree) == 3 {
			break
		}
	}

	assert.Equal(t, []int{13, 15, 16}, firstThree)
	assert.Equal(t, 8, tree.Count())
	assert.Equal(t, []int{13, 15, 16, 17, 18, 19, 24, 56}, tree.Values(Inorder), "A new walk should start from scratch")
}

func TestTraversalSequences(t *testing.T) {
	tree := referenceTree()

	testCases := []struct {
		order    Order
		seq      func() []int
		expected []int
	}{
		{Preorder, func() []int { return slices.Collect(tree.Preorder()) }, []int{16, 15, 13, 24, 18, 17, 19, 56}},
		{Inorder, func() []int { return slices.Collect(tree.Inorder()) }, []int{13, 15, 16, 17, 18, 19, 24, 56}},
		{Postorder, func() []int { return slices.Collect(tree.Postorder()) }, []int{13, 15, 17, 19, 18, 56, 24, 16}},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.seq(), tc.order.String())

		var walked []int
		tree.Walk(tc.order, func(v int) { walked = append(walked, v) })
		assert.Equal(t, tc.expected, walked, tc.order.String())
	}
}

func TestTraversePanicsOnUnknownOrder(t *testing.T) {
	assert.Panics(t, func() {
		referenceTree().Traverse(Order(42))
	})
}

// TestRandomInsertions checks the tree properties against a set of random inputs.
func TestRandomInsertions(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		tree := New[int]()
		distinct := map[int]bool{}

		for i := 0; i < 200; i++ {
			v := rnd.Intn(150)
			outcome := tree.Insert(v)
			if distinct[v] {
				assert.Equal(t, DuplicateIgnored, outcome)
			} else {
				assert.Equal(t, Inserted, outcome)
			}
			distinct[v] = true

			assert.Equal(t, len(distinct), tree.Count(), "Count should match distinct values after every insert")
			assert.True(t, tree.Contains(v), "Value %d should be found right after insertion", v)
		}

		inorder := tree.Values(Inorder)
		assert.True(t, slices.IsSorted(inorder), "Inorder should be ascending")
		assert.Len(t, slices.Compact(slices.Clone(inorder)), len(inorder), "Inorder should have no duplicates")

		for _, order := range Orders() {
			values := tree.Values(order)
			assert.Len(t, values, tree.Count())
			assert.ElementsMatch(t, inorder, values, "%s should visit every value once", order)
		}

		for v := range distinct {
			assert.True(t, tree.Contains(v), "Value %d should still be found", v)
		}
		for v := 150; v < 200; v++ {
			assert.False(t, tree.Contains(v), "Value %d was never inserted", v)
		}
	}
}

// TestNewFuncCustomOrder stores values with a reversed comparison.
func TestNewFuncCustomOrder(t *testing.T) {
	tree := NewFunc(func(a, b string) int {
		return strings.Compare(b, a)
	})
	tree.InsertAll("b", "a", "c", "a")

	assert.Equal(t, 3, tree.Count())
	assert.Equal(t, []string{"c", "b", "a"}, tree.Values(Inorder))
	assert.True(t, tree.Contains("c"))
}

type version struct {
	major, minor int
}

// TestNewFuncStructKeys verifies that equality comes from the comparison, not from ==.
func TestNewFuncStructKeys(t *testing.T) {
	tree := NewFunc(func(a, b version) int {
		if a.major != b.major {
			return a.major - b.major
		}
		return 0
	})

	assert.Equal(t, Inserted, tree.Insert(version{1, 0}))
	assert.Equal(t, DuplicateIgnored, tree.Insert(version{1, 9}), "Same major version compares equal")
	assert.Equal(t, Inserted, tree.Insert(version{2, 0}))
	assert.True(t, tree.Contains(version{2, 5}))
	assert.Equal(t, version{1, 0}, tree.Find(version{1, 3}).Value(), "The first stored value is kept")
}

func TestInsertLogging(t *testing.T) {
	var buf bytes.Buffer
	tree := New[int](WithLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	tree.InsertAll(16, 24, 16)

	logs := buf.String()
	assert.Contains(t, logs, "16 entered - this is the root")
	assert.Contains(t, logs, "24 entered")
	assert.Contains(t, logs, "16 entered - duplicate value ignored")
	assert.Contains(t, logs, `"outcome":"duplicate ignored"`)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "inserted", Inserted.String())
	assert.Equal(t, "duplicate ignored", DuplicateIgnored.String())
	assert.Equal(t, "unknown", Outcome(9).String())
}

func TestRender(t *testing.T) {
	pterm.DisableColor()

	out, err := Render(referenceTree())
	require.NoError(t, err)
	for _, label := range []string{"L 15", "R 24", "L 13", "L 18", "R 56", "L 17", "R 19"} {
		assert.Contains(t, out, label)
	}

	empty := ToTreeNode(New[int]())
	assert.Equal(t, "(empty)", empty.Text)
	assert.Empty(t, empty.Children)
}

func BenchmarkInsertRandom(b *testing.B) {
	rnd := rand.New(rand.NewSource(1))
	values := make([]int, b.N)
	for i := range values {
		values[i] = rnd.Int()
	}
	tree := New[int]()
	b.ResetTimer()

	for _, v := range values {
		tree.Insert(v)
	}
}
