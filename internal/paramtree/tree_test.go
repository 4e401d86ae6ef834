package paramtree

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/paramgrid/internal/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSet builds a Set with one int parameter per key.
func newSet(t *testing.T, keys ...string) *param.Set {
	t.Helper()
	s := param.NewSet()
	for i, k := range keys {
		v := i
		_, err := s.Add(k, param.Field(&v), param.Meta{Name: "Param " + k})
		require.NoError(t, err)
	}
	return s
}

func TestBuild_VisitsOwnParametersBeforeChildren(t *testing.T) {
	root := newSet(t, "a")
	c1 := newSet(t, "x")
	c2 := newSet(t, "y")
	root.AddChild("c1", c1)
	root.AddChild("c2", c2)
	grand := newSet(t, "z")
	c1.AddChild("deep", grand)
	_, err := root.Add("b", param.Field(new(int)), param.Meta{})
	require.NoError(t, err)

	tree, err := Build(root)
	require.NoError(t, err)

	expected := []string{"a", "b", "c1/x", "c1/deep/z", "c2/y"}
	if diff := cmp.Diff(expected, tree.Keys()); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_KeysAreUnique(t *testing.T) {
	root := param.NewSet()
	leafCount := 0
	for i := 0; i < 5; i++ {
		child := newSet(t, "value", "other")
		leafCount += 2
		root.AddChild(fmt.Sprintf("node%d", i), child)
	}

	tree, err := Build(root)
	require.NoError(t, err)

	assert.Equal(t, leafCount, tree.Len())
	assert.Len(t, tree.Parameters(), leafCount)
	seen := make(map[string]struct{})
	for _, k := range tree.Keys() {
		_, dup := seen[k]
		assert.False(t, dup, "duplicate key %s", k)
		seen[k] = struct{}{}
	}
}

func TestBuild_IsDeterministic(t *testing.T) {
	root := newSet(t, "a", "b")
	dup1 := newSet(t, "value")
	dup2 := newSet(t, "value")
	root.AddChild("dup", dup1)
	root.AddChild("dup", dup2)

	first, err := Build(root)
	require.NoError(t, err)
	second, err := Build(root)
	require.NoError(t, err)

	if diff := cmp.Diff(first.Keys(), second.Keys()); diff != "" {
		t.Errorf("key sets differ between builds (-first +second):\n%s", diff)
	}
	assert.Equal(t, first.Fingerprint(), second.Fingerprint())
}

func TestBuild_CollisionScenario(t *testing.T) {
	root := param.NewSet()
	parentA := param.NewSet()
	parentB := param.NewSet()
	root.AddChild("A", parentA)
	root.AddChild("B", parentB)
	dynA := newSet(t, "value")
	dynB := newSet(t, "value")
	parentA.AddChild("dynamic", dynA)
	parentB.AddChild("dynamic", dynB)

	tree, err := Build(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"A/dynamic/value", "B/dynamic/value"}, tree.Keys(), "distinct paths are never suffixed")
}

func TestBuild_TrueCollisionFirstVisitedWins(t *testing.T) {
	root := param.NewSet()
	first := newSet(t, "value")
	second := newSet(t, "value")
	root.AddChild("dup", first)
	root.AddChild("dup", second)

	tree, err := Build(root)
	require.NoError(t, err)
	require.Equal(t, []string{"dup/value", "dup/value-1"}, tree.Keys())

	firstAccess, _ := param.Lookup(first, "value")
	secondAccess, _ := param.Lookup(second, "value")
	assert.Equal(t, "dup/value", tree.UniqueKey(firstAccess))
	assert.Equal(t, "dup/value-1", tree.UniqueKey(secondAccess))
}

func TestBuild_SuffixNeverTakesALaterNaturalKey(t *testing.T) {
	root := param.NewSet()
	first := newSet(t, "value")
	second := newSet(t, "value")
	literal := newSet(t, "value-1")
	root.AddChild("dup", first)
	root.AddChild("dup", second)
	root.AddChild("dup", literal)

	tree, err := Build(root)
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"dup/value", "dup/value-2", "dup/value-1"}, tree.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	literalAccess, _ := param.Lookup(literal, "value-1")
	assert.Equal(t, "dup/value-1", tree.UniqueKey(literalAccess), "a key that never collided keeps its path")
	secondAccess, _ := param.Lookup(second, "value")
	assert.Equal(t, "dup/value-2", tree.UniqueKey(secondAccess))
}

func TestBuild_SkipsMissingChild(t *testing.T) {
	root := newSet(t, "a")
	root.AddChildSlot(param.Child{
		Key:     "empty",
		Resolve: func() (param.Collection, error) { return nil, nil },
	})
	root.AddChildSlot(param.Child{Key: "unset"})

	tree, err := Build(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, tree.Keys())
	assert.Empty(t, tree.Root().Children())
}

func TestBuild_FaultDoesNotAbortSiblings(t *testing.T) {
	boom := errors.New("getter failed")
	root := param.NewSet()
	root.AddChild("before", newSet(t, "x"))
	root.AddChildSlot(param.Child{
		Key:     "broken",
		Resolve: func() (param.Collection, error) { return nil, boom },
	})
	root.AddChildSlot(param.Child{
		Key:     "panicking",
		Resolve: func() (param.Collection, error) { panic("nil dereference") },
	})
	root.AddChild("after", newSet(t, "y"))

	tree, err := Build(root)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var travErr *TraversalError
	require.ErrorAs(t, err, &travErr)
	assert.Equal(t, "broken", travErr.Path)
	assert.Contains(t, err.Error(), "parameter collection 'panicking': panic: nil dereference")

	assert.Equal(t, []string{"before/x", "after/y"}, tree.Keys())
}

func TestBuild_VisitsPartialChildAndRecordsFault(t *testing.T) {
	partialErr := errors.New("one inner node failed")
	partial := newSet(t, "x")
	root := param.NewSet()
	root.AddChildSlot(param.Child{
		Key:     "partial",
		Resolve: func() (param.Collection, error) { return partial, partialErr },
	})

	tree, err := Build(root)
	require.ErrorIs(t, err, partialErr)
	var travErr *TraversalError
	require.ErrorAs(t, err, &travErr)
	assert.Equal(t, "partial", travErr.Path)
	assert.Equal(t, []string{"partial/x"}, tree.Keys())
}

func TestBuild_SharedCollectionVisitedOnce(t *testing.T) {
	root := param.NewSet()
	shared := newSet(t, "x")
	root.AddChild("first", shared)
	root.AddChild("second", shared)
	shared.AddChild("loop", root)

	tree, err := Build(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"first/x"}, tree.Keys())
	assert.Equal(t, "first", tree.SourceKey(shared))
}

func TestBuild_NilRoot(t *testing.T) {
	tree, err := Build(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, tree.Len())
	assert.True(t, tree.Root().IsRoot())
}

func TestTree_RoundTripUniqueKey(t *testing.T) {
	root := param.NewSet()
	root.AddChild("node1", newSet(t, "x", "y"))
	root.AddChild("node2", newSet(t, "x"))

	tree, err := Build(root)
	require.NoError(t, err)

	for key, access := range tree.Parameters() {
		assert.Equal(t, key, tree.UniqueKey(access))
		resolved, ok := tree.Get(tree.UniqueKey(access))
		require.True(t, ok)
		assert.Same(t, access, resolved)
	}
	assert.Equal(t, "", tree.UniqueKey(nil))

	foreign := newSet(t, "x")
	a, _ := param.Lookup(foreign, "x")
	assert.Equal(t, "", tree.UniqueKey(a))
}

func TestTree_SourceIndexes(t *testing.T) {
	root := param.NewSet()
	node1 := newSet(t, "x")
	advanced := newSet(t, "threshold")
	node1.AddChild("advanced", advanced)
	root.AddChildSlot(param.Child{
		Key:         "node1",
		Name:        "Gaussian blur",
		Description: "Blurs images",
		UIOrder:     2,
		Resolve:     func() (param.Collection, error) { return node1, nil },
	})

	tree, err := Build(root)
	require.NoError(t, err)

	n, ok := tree.SourceNode(advanced)
	require.True(t, ok)
	assert.Equal(t, []string{"node1", "advanced"}, n.Path())
	assert.Equal(t, "node1/advanced", n.Name(), "unnamed slot falls back to path")
	assert.Equal(t, "node1/advanced", tree.SourceKey(advanced))

	parent, ok := n.Parent()
	require.True(t, ok)
	assert.Equal(t, "Gaussian blur", parent.Name())
	assert.Equal(t, "Blurs images", parent.Description())
	assert.Equal(t, 2, parent.UIOrder())
	assert.Equal(t, "Gaussian blur", tree.SourceName(node1))

	threshold, _ := tree.Get("node1/advanced/threshold")
	owner, ok := tree.SourceOf(threshold)
	require.True(t, ok)
	assert.Same(t, n, owner)

	_, ok = tree.SourceNode(param.NewSet())
	assert.False(t, ok)
	assert.Equal(t, "", tree.SourceKey(param.NewSet()))
}

func TestTree_GroupedBySourceAndAllChildParameters(t *testing.T) {
	root := param.NewSet()
	empty := param.NewSet()
	node1 := newSet(t, "x", "y")
	node1.AddChild("nested", newSet(t, "z"))
	root.AddChild("empty", empty)
	root.AddChild("node1", node1)

	tree, err := Build(root)
	require.NoError(t, err)

	groups := tree.GroupedBySource()
	require.Len(t, groups, 4)
	assert.Empty(t, groups[0].Parameters, "root has no own parameters")
	assert.Empty(t, groups[1].Parameters, "empty collections are included")
	assert.Len(t, groups[2].Parameters, 2)
	assert.Len(t, groups[3].Parameters, 1)

	n, _ := tree.SourceNode(node1)
	var keys []string
	for _, a := range tree.AllChildParameters(n) {
		keys = append(keys, tree.UniqueKey(a))
	}
	assert.Equal(t, []string{"node1/x", "node1/y", "node1/nested/z"}, keys)

	node, ok := tree.Node(n.ID())
	require.True(t, ok)
	assert.Same(t, n, node)
	_, ok = tree.Node(NodeID(99))
	assert.False(t, ok)
}

func TestTree_FingerprintChangesWithStructure(t *testing.T) {
	root := newSet(t, "a")
	before, err := Build(root)
	require.NoError(t, err)

	root.AddChild("node1", newSet(t, "x"))
	after, err := Build(root)
	require.NoError(t, err)

	assert.NotEqual(t, before.Fingerprint(), after.Fingerprint())
}
