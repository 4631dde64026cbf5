// Package scan walks folders for offer PDFs and runs the extraction
// pipeline over them with bounded concurrency and per-document failure
// isolation.
package scan

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// WalkPDFs collects *.pdf files under root, descending at most maxDepth
// directory levels below it. Depth 0 scans only the root folder itself.
func WalkPDFs(root string, maxDepth int) ([]string, error) {
	root = filepath.Clean(root)
	baseDepth := strings.Count(root, string(filepath.Separator))

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			depth := strings.Count(filepath.Clean(path), string(filepath.Separator)) - baseDepth
			if depth > maxDepth {
				return fs.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".pdf") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, eris.Wrapf(err, "scan: walk %s", root)
	}
	return paths, nil
}
