package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/treekit/tree"
)

// SampleTree returns a fresh copy of the seven-node sample tree.
//
// Example:
//
//	root := testutil.SampleTree().Root
func SampleTree() *tree.Tree[int] {
	return tree.Sample()
}

// RightSpine builds a degenerate tree of n nodes holding 0..n-1, each node the
// right child of the previous one. Useful for depth tests.
func RightSpine(n int) *tree.Node[int] {
	if n <= 0 {
		return nil
	}
	root := tree.NewNode(0)
	cur := root
	for i := 1; i < n; i++ {
		cur.Right = tree.NewNode(i)
		cur = cur.Right
	}
	return root
}

// SetupTreeFile copies a tree definition from the repository testdata into a
// temporary directory and returns the copy's path.
// Calls t.Skip if the source file is not found.
//
// Example:
//
//	path := testutil.SetupTreeFile(t, testutil.TreeFileSample)
func SetupTreeFile(t *testing.T, relativePath string) string {
	t.Helper()

	src := resolveTestPath(t, relativePath)
	dst := filepath.Join(t.TempDir(), filepath.Base(relativePath))
	copyFile(t, src, dst)
	return dst
}

// WriteTreeFile writes contents to a temporary .toml file and returns its path.
func WriteTreeFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tree.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write tree file: %v", err)
	}
	return path
}

// resolveTestPath attempts to find a testdata file by trying multiple path resolutions.
// This handles the fact that tests may be run from different working directories.
func resolveTestPath(t *testing.T, relativePath string) string {
	t.Helper()

	// Try paths in order of likelihood
	candidates := []string{
		relativePath,                  // Direct path (from repo root)
		"../" + relativePath,          // From a top-level package
		"../../" + relativePath,       // From package two levels deep (e.g., tree/treefile/)
		"../../../" + relativePath,    // From package three levels deep
		"../../../../" + relativePath, // From package four levels deep
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	// If not found, skip the test
	t.Skipf("Test file not found at any candidate path starting from: %s", relativePath)
	return "" // unreachable
}

// copyFile copies src to dst.
// Calls t.Fatal if the copy fails.
func copyFile(t *testing.T, src, dst string) {
	t.Helper()

	srcFile, err := os.Open(src)
	if err != nil {
		t.Skipf("Test file not found: %v", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer dstFile.Close()

	if _, copyErr := io.Copy(dstFile, srcFile); copyErr != nil {
		t.Fatalf("Failed to copy file: %v", copyErr)
	}
}
