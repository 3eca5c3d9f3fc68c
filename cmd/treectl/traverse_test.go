package main

import (
	"testing"

	"github.com/joshuapare/treekit/internal/testutil"
	"github.com/joshuapare/treekit/tree"
	"github.com/stretchr/testify/require"
)

func TestTraverseCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantErr        bool
		want           string
		wantContain    []string
		wantNotContain []string
		wantJSON       bool
	}{
		{
			name: "default in-order",
			args: []string{"traverse"},
			want: "1\n3\n4\n5\n6\n7\n8\n" + sep,
		},
		{
			name: "pre and post",
			args: []string{"traverse", "--order", "pre,post"},
			want: "5\n3\n1\n4\n7\n6\n8\n" + sep + "1\n4\n3\n6\n8\n7\n5\n" + sep,
		},
		{
			name: "level alias",
			args: []string{"traverse", "-o", "bfs"},
			want: "5\n3\n7\n1\n4\n6\n8\n" + sep,
		},
		{
			name:        "all with headers",
			args:        []string{"traverse", "--all", "--headers"},
			wantContain: []string{"in-order:", "pre-order:", "post-order:", "breadth-first:"},
		},
		{
			name:           "json",
			args:           []string{"traverse", "--all", "--json"},
			wantJSON:       true,
			wantContain:    []string{`"order": "post-order"`},
			wantNotContain: []string{"===="},
		},
		{
			name:    "unknown order",
			args:    []string{"traverse", "--order", "zigzag"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := executeCommand(t, tt.args...)

			if (err != nil) != tt.wantErr {
				t.Errorf("traverse error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			if tt.want != "" {
				require.Equal(t, tt.want, output)
			}
			if tt.wantJSON {
				assertJSON(t, output)
			}

			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestTraverse_UnknownOrderIsUnsupported(t *testing.T) {
	_, err := executeCommand(t, "traverse", "--order", "zigzag")
	require.ErrorIs(t, err, tree.ErrUnsupported)
}

func TestTraverse_StringTree(t *testing.T) {
	path := testTreePath(t, testutil.TreeFileFruits)

	output, err := executeCommand(t, "traverse", "--file", path)
	require.NoError(t, err)
	require.Equal(t, "apple\ncherry\ndate\nmango\norange\npear\nquince\n"+sep, output)
}
