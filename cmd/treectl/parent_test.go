package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParentCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		want        string
		wantContain []string
		wantJSON    bool
		wantErr     bool
	}{
		{name: "leaf", args: []string{"parent", "1"}, want: "Parent node = 3\n"},
		{name: "inner", args: []string{"parent", "7"}, want: "Parent node = 5\n"},
		{name: "root", args: []string{"parent", "5"}, want: "Specified node is root node.\n"},
		{name: "missing is reported not failed", args: []string{"parent", "99"}, want: "find parent of 99: node not found in tree\n"},
		{
			name:        "json",
			args:        []string{"parent", "8", "--json"},
			wantJSON:    true,
			wantContain: []string{`"parent": 7`, `"is_root": false`},
		},
		{name: "bad value", args: []string{"parent", "x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := executeCommand(t, tt.args...)

			if (err != nil) != tt.wantErr {
				t.Errorf("parent error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if tt.wantJSON {
				assertJSON(t, output)
			}
			if tt.want != "" {
				require.Equal(t, tt.want, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestParent_VerboseLogsFailure(t *testing.T) {
	output, err := executeCommand(t, "parent", "99", "--verbose")
	require.NoError(t, err)
	// Logs share the buffer with results in tests.
	assertContains(t, output, []string{"parent lookup failed", "node not found in tree"})
}

func TestParent_VerboseJSONLogs(t *testing.T) {
	output, err := executeCommand(t, "parent", "99", "--verbose", "--json")
	require.NoError(t, err)

	// Every line is a JSON document: log records and the result alike.
	var sawLog bool
	dec := json.NewDecoder(strings.NewReader(output))
	for dec.More() {
		var doc map[string]any
		require.NoError(t, dec.Decode(&doc))
		if doc["msg"] == "parent lookup failed" {
			sawLog = true
			require.Equal(t, "WARN", doc["level"])
		}
	}
	require.True(t, sawLog, "no JSON log record in output:\n%s", output)
}
