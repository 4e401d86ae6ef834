package config

import (
	"testing"

	"github.com/specialistvlad/paramgrid/internal/param"
	"github.com/specialistvlad/paramgrid/internal/paramref"
	"github.com/specialistvlad/paramgrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func testModel() *Model {
	return &Model{
		Nodes: []*Node{
			{
				ID:   "node1",
				Name: "Gaussian blur",
				Parameters: []*Parameter{
					{Key: "x", Type: cty.Number, Default: cty.NumberIntVal(5), Important: true},
					{Key: "y", Type: cty.String, Default: cty.StringVal("hi"), Transient: true},
				},
				Collections: []*Collection{{
					Key:  "advanced",
					Name: "Advanced",
					Parameters: []*Parameter{
						{Key: "mode", Type: cty.String, Default: cty.StringVal("reflect")},
					},
				}},
			},
		},
		Exported: []*ExportedGroup{{
			Name: "Group A",
			References: []*paramref.Reference{
				{Path: "node1/x"},
				{Path: "node1/x", CustomName: "Duplicate"},
			},
		}},
	}
}

func TestNewPipeline(t *testing.T) {
	ctx, logs := testutil.NewCapturingContext(t)
	p, err := NewPipeline(ctx, testModel())
	require.NoError(t, err)

	tree, err := p.Graph.ParameterTree()
	require.NoError(t, err)
	assert.Equal(t, []string{"node1/x", "node1/y", "node1/advanced/mode"}, tree.Keys())

	x, _ := tree.Get("node1/x")
	assert.True(t, x.FieldType().Equals(cty.Number))
	assert.True(t, x.Important())
	require.NoError(t, x.Set("7"))
	assert.True(t, x.Get().(cty.Value).Equals(cty.NumberIntVal(7)).True())

	y, _ := tree.Get("node1/y")
	assert.Equal(t, param.Transient, y.Persistence())

	mode, _ := tree.Get("node1/advanced/mode")
	n, ok := tree.SourceOf(mode)
	require.True(t, ok)
	assert.Equal(t, "Advanced", n.Name())

	require.Equal(t, 1, p.Exported.Len())
	assert.Equal(t, 1, p.Exported.Groups()[0].Len())
	assert.Contains(t, logs.String(), "Dropped duplicate references from exported group.")
	assert.Same(t, p.Graph, p.Exported.Graph())
}

func TestNewPipeline_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		model       *Model
		expectedErr string
	}{
		{
			name:        "duplicate node",
			model:       &Model{Nodes: []*Node{{ID: "a"}, {ID: "a"}}},
			expectedErr: "node 'a' already exists in graph",
		},
		{
			name: "duplicate parameter",
			model: &Model{Nodes: []*Node{{
				ID: "a",
				Collections: []*Collection{{
					Key: "c",
					Parameters: []*Parameter{
						{Key: "p", Type: cty.String, Default: cty.NullVal(cty.String)},
						{Key: "p", Type: cty.String, Default: cty.NullVal(cty.String)},
					},
				}},
			}}},
			expectedErr: "in node 'a': in collection 'c': parameter 'p' already registered",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPipeline(testutil.NewTestContext(t), tc.model)
			require.EqualError(t, err, tc.expectedErr)
		})
	}
}
