// ABOUTME: Tests for the forest builders feeding the comparison engine
// ABOUTME: Validates type, category, and call-stack groupings

package snapshot

import (
	"testing"

	"github.com/memscope/memscope/compare"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByType(t *testing.T) {
	forest := GroupByType(sampleRecords())
	require.Len(t, forest, 4)

	for _, n := range forest {
		assert.True(t, n.IsLeaf())
		assert.Equal(t, compare.NoTreeID, n.ID)
	}
	assert.Equal(t, "Texture2D", forest[0].Data.Name())
	assert.Equal(t, uint64(100), forest[0].Data.ExclusiveSize())
}

func TestGroupByTypeComparesAggregated(t *testing.T) {
	before := GroupByType(sampleRecords())
	after := GroupByType([]AllocationRecord{
		{Size: 300, HashID: "h1", ObjectType: "Texture2D", Frame: 4},
		{Size: 200, HashID: "h2", ObjectType: "Mesh", Frame: 4},
	})

	roots, largest := compare.Build(before, after, true)
	require.Len(t, roots, 3)

	byName := make(map[string]*compare.Node[ObjectGroupItem])
	for _, n := range roots {
		byName[n.Name] = n
	}

	tex := byName["Texture2D"]
	require.NotNil(t, tex)
	assert.Equal(t, uint64(150), tex.SizeA)
	assert.Equal(t, uint64(300), tex.SizeB)
	assert.Equal(t, uint32(2), tex.CountA)
	assert.Equal(t, uint32(1), tex.CountB)

	mesh := byName["Mesh"]
	require.NotNil(t, mesh)
	assert.False(t, mesh.HasChanged())

	str := byName["String"]
	require.NotNil(t, str)
	assert.Equal(t, int64(-25), str.SizeDelta())

	assert.Equal(t, int64(150), largest)
}

func TestGroupByCategory(t *testing.T) {
	categorize := func(r AllocationRecord) Category {
		if r.ObjectType == "String" {
			return Category{Label: "Managed", ID: 2}
		}
		return Category{Label: "Native", ID: 1}
	}

	forest := GroupByCategory(sampleRecords(), categorize)
	require.Len(t, forest, 2)

	native := forest[0]
	assert.Equal(t, "Native", native.Data.Name())
	assert.Equal(t, int32(1), native.ID)
	assert.Len(t, native.Children, 3)

	managed := forest[1]
	assert.Equal(t, "Managed", managed.Data.Name())
	assert.Equal(t, int32(2), managed.ID)
	require.Len(t, managed.Children, 1)
	assert.Equal(t, "String", managed.Children[0].Data.Name())
	assert.Equal(t, uint64(25), managed.Children[0].Data.ExclusiveSize())
}

func TestGroupByCategoryIDSurvivesComparison(t *testing.T) {
	categorize := func(AllocationRecord) Category {
		return Category{Label: "Native", ID: 9}
	}
	forest := GroupByCategory(sampleRecords(), categorize)

	roots, _ := compare.Build(forest, forest, true)
	require.Len(t, roots, 1)
	assert.Equal(t, int32(9), roots[0].TreeID)
}

func TestBuildStackForest(t *testing.T) {
	traces := map[string]StackTrace{
		// innermost first: main -> LoadAssets -> LoadTexture
		"h1": {HashID: "h1", Frames: []StackFrame{
			{Function: "LoadTexture"},
			{Function: "LoadAssets"},
			{Function: "main"},
		}},
		// main -> LoadAssets -> LoadMesh
		"h2": {HashID: "h2", Frames: []StackFrame{
			{Function: "LoadMesh"},
			{Function: "LoadAssets"},
			{Function: "main"},
		}},
	}
	records := []AllocationRecord{
		{Size: 100, HashID: "h1", ObjectType: "Texture2D"},
		{Size: 50, HashID: "h1", ObjectType: "Texture2D"},
		{Size: 200, HashID: "h2", ObjectType: "Mesh"},
	}

	forest := BuildStackForest(records, traces)
	require.Len(t, forest, 1)

	main := forest[0]
	assert.Equal(t, "main", main.Data.Name())
	require.Len(t, main.Children, 1)

	loadAssets := main.Children[0]
	assert.Equal(t, "LoadAssets", loadAssets.Data.Name())
	require.Len(t, loadAssets.Children, 2)

	loadTexture := loadAssets.Children[0]
	assert.Equal(t, "LoadTexture", loadTexture.Data.Name())
	assert.Len(t, loadTexture.Children, 2, "one leaf per allocation")

	// the comparison engine sees frame totals as inclusive sizes
	roots, _ := compare.Build(forest, nil, true)
	require.Len(t, roots, 1)
	assert.Equal(t, uint64(350), roots[0].SizeA)
	assert.Equal(t, uint32(3), roots[0].CountA)
}

func TestBuildStackForestMissingTrace(t *testing.T) {
	records := []AllocationRecord{
		{Size: 40, HashID: "unknown-hash", ObjectType: "String"},
	}

	forest := BuildStackForest(records, nil)
	require.Len(t, forest, 1)
	assert.True(t, forest[0].IsLeaf())
	assert.Equal(t, "<no stack>", forest[0].Data.Name())
	assert.Equal(t, uint64(40), forest[0].Data.ExclusiveSize())
}
