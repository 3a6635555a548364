package store

import "path/filepath"

// mocksDir is the top-level directory holding all scenario documents under
// the fixtures root.
const mocksDir = "mocks"

// outputsDir is the per-document directory holding captured stdout files,
// sibling to the document itself.
const outputsDir = "outputs"

// DocumentPath resolves a family-relative document path to an absolute path
// under the fixtures root: <root>/mocks/<family>/<rel>.
func DocumentPath(root, family, rel string) string {
	return filepath.Join(root, mocksDir, family, filepath.FromSlash(rel))
}

// OutputRef returns the document-relative reference stored for a scenario's
// stdout file: outputs/<scenario>.txt. References use forward slashes so
// documents stay portable across platforms.
func OutputRef(scenarioName string) string {
	return outputsDir + "/" + scenarioName + ".txt"
}

// outputPath resolves a document-relative output reference against the
// document's directory.
func outputPath(documentPath, ref string) string {
	return filepath.Join(filepath.Dir(documentPath), filepath.FromSlash(ref))
}
