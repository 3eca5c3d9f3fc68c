package printer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/joshuapare/treekit/internal/testutil"
	"github.com/joshuapare/treekit/tree"
	"github.com/joshuapare/treekit/tree/search"
	"github.com/joshuapare/treekit/tree/walker"
	"github.com/stretchr/testify/require"
)

func TestPrinter_PrintSequence_Text(t *testing.T) {
	root := testutil.SampleTree().Root

	var buf bytes.Buffer
	p := New[int](&buf, DefaultOptions())

	require.NoError(t, p.PrintSequence(walker.OrderIn, walker.InOrder(root)))
	require.NoError(t, p.PrintSeparator())

	require.Equal(t, "1\n3\n4\n5\n6\n7\n8\n====================\n", buf.String())
}

func TestPrinter_PrintSequence_Headers(t *testing.T) {
	root := testutil.SampleTree().Root

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.ShowHeaders = true
	p := New[int](&buf, opts)

	require.NoError(t, p.PrintSequence(walker.OrderLevel, walker.BreadthFirst(root)))
	require.Equal(t, "breadth-first:\n5\n3\n7\n1\n4\n6\n8\n", buf.String())
}

func TestPrinter_PrintSequence_JSON(t *testing.T) {
	root := testutil.SampleTree().Root

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON
	p := New[int](&buf, opts)

	require.NoError(t, p.PrintSequence(walker.OrderPost, walker.PostOrder(root)))

	var result struct {
		Order  string `json:"order"`
		Values []int  `json:"values"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Equal(t, "post-order", result.Order)
	require.Equal(t, []int{1, 4, 3, 6, 8, 7, 5}, result.Values)
}

func TestPrinter_PrintSequence_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON
	p := New[int](&buf, opts)

	require.NoError(t, p.PrintSequence(walker.OrderIn, walker.InOrder[int](nil)))
	require.Contains(t, buf.String(), `"values": []`)
}

func TestPrinter_PrintSeparator(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Separator = ""
	p := New[int](&buf, opts)
	require.NoError(t, p.PrintSeparator())
	require.Equal(t, DefaultSeparator+"\n", buf.String())

	buf.Reset()
	opts.Format = FormatJSON
	p = New[int](&buf, opts)
	require.NoError(t, p.PrintSeparator())
	require.Empty(t, buf.String())
}

func TestPrinter_PrintFind_Text(t *testing.T) {
	s := testutil.SampleTree()

	tests := []struct {
		query int
		want  string
	}{
		{77, "Node not found\n"},
		{6, "Found node with data 6\n"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.query), func(t *testing.T) {
			var buf bytes.Buffer
			p := New[int](&buf, DefaultOptions())
			require.NoError(t, p.PrintFind(tt.query, search.Find(s, tt.query)))
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrinter_PrintFind_JSON(t *testing.T) {
	s := testutil.SampleTree()

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON
	p := New[int](&buf, opts)

	require.NoError(t, p.PrintFind(6, search.Find(s, 6)))

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Equal(t, true, result["found"])
	require.InDelta(t, 6, result["data"], 0)

	buf.Reset()
	require.NoError(t, p.PrintFind(77, search.Find(s, 77)))
	result = nil
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Equal(t, false, result["found"])
	require.NotContains(t, result, "data")
}

func TestPrinter_PrintParent_Text(t *testing.T) {
	s := testutil.SampleTree()

	tests := []struct {
		name  string
		query int
		want  string
	}{
		{"leaf", 1, "Parent node = 3\n"},
		{"root", 5, "Specified node is root node.\n"},
		{"missing", 99, "find parent of 99: node not found in tree\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := New[int](&buf, DefaultOptions())

			parent, err := search.FindParentOf(s.Root, tt.query)
			require.NoError(t, p.PrintParent(tt.query, parent, err))
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrinter_PrintParent_JSON(t *testing.T) {
	s := testutil.SampleTree()

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON
	p := New[int](&buf, opts)

	parent, err := search.FindParentOf(s.Root, 5)
	require.NoError(t, p.PrintParent(5, parent, err))

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Equal(t, true, result["is_root"])
	require.NotContains(t, result, "parent")

	buf.Reset()
	parent, err = search.FindParentOf(s.Root, 99)
	require.NoError(t, p.PrintParent(99, parent, err))
	result = nil
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Equal(t, false, result["found"])
	require.Contains(t, result["error"], "not found")
}

func TestPrinter_PrintTree_Text(t *testing.T) {
	root := testutil.SampleTree().Root

	var buf bytes.Buffer
	p := New[int](&buf, DefaultOptions())
	require.NoError(t, p.PrintTree(root))

	want := "5\n" +
		"  L: 3\n" +
		"    L: 1\n" +
		"    R: 4\n" +
		"  R: 7\n" +
		"    L: 6\n" +
		"    R: 8\n"
	require.Equal(t, want, buf.String())
}

func TestPrinter_PrintTree_MaxDepth(t *testing.T) {
	root := testutil.SampleTree().Root

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.MaxDepth = 2
	opts.IndentSize = 1
	p := New[int](&buf, opts)
	require.NoError(t, p.PrintTree(root))

	require.Equal(t, "5\n L: 3\n R: 7\n", buf.String())
}

func TestPrinter_PrintTree_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := New[int](&buf, DefaultOptions())
	require.NoError(t, p.PrintTree(nil))
	require.Equal(t, "(empty)\n", buf.String())
}

func TestPrinter_PrintTree_JSON(t *testing.T) {
	s := tree.FromValues("m", "c", "x")

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON
	p := New[string](&buf, opts)
	require.NoError(t, p.PrintTree(s.Root))

	var result struct {
		Data string `json:"data"`
		Left *struct {
			Data string `json:"data"`
		} `json:"left"`
		Right *struct {
			Data string `json:"data"`
		} `json:"right"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Equal(t, "m", result.Data)
	require.Equal(t, "c", result.Left.Data)
	require.Equal(t, "x", result.Right.Data)
}
