package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/joshuapare/treekit/internal/testutil"
)

// resetFlags restores every global flag to its default.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	noColor = false
	treeFile = ""

	demoAll = false
	demoFind = "77"
	demoParent = "1"

	traverseOrder = "in"
	traverseAll = false
	traverseHeaders = false

	treeDepth = 0
	treeCompact = false
}

// testTreePath returns a temp copy of a tree definition from testdata.
func testTreePath(t *testing.T, relativePath string) string {
	t.Helper()
	return testutil.SetupTreeFile(t, relativePath)
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()
	t.Cleanup(resetFlags)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// assertJSON checks that output is a stream of valid JSON documents
func assertJSON(t *testing.T, output string) {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(output))
	for dec.More() {
		var result interface{}
		if err := dec.Decode(&result); err != nil {
			t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
			return
		}
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
