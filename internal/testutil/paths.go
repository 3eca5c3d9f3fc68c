package testutil

// Tree definition paths relative to the repository root.
// These constants should be used instead of hardcoding paths in test files.
const (
	// TreeFileSample defines the seven-node sample tree by insertion order.
	TreeFileSample = "testdata/trees/sample.toml"

	// TreeFileShape defines the sample tree by explicit shape.
	TreeFileShape = "testdata/trees/shape.toml"

	// TreeFileFruits defines a string tree ordered by English collation.
	TreeFileFruits = "testdata/trees/fruits.toml"

	// TreeFileBroken defines a shape that violates the BST property.
	TreeFileBroken = "testdata/trees/broken.toml"
)
