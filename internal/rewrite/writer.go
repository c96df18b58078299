package rewrite

import (
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"
)

// File permission for rewritten sources.
const filePerm = 0o644

// WriteFiles persists every changed result back to its original path,
// replacing the file contents in full. Unchanged files are left untouched on
// disk. Returns the number of files written.
func WriteFiles(results []Result) (int, error) {
	written := 0

	for _, res := range results {
		if !res.Changed {
			continue
		}

		err := os.WriteFile(res.Path, res.Output, filePerm)
		if err != nil {
			return written, fmt.Errorf("writing file %s: %w", res.Path, err)
		}

		written++
	}

	return written, nil
}

// UnifiedDiff renders a unified diff between a result's input and output.
func UnifiedDiff(res Result) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(res.Input)),
		B:        difflib.SplitLines(string(res.Output)),
		FromFile: res.Path,
		ToFile:   res.Path + " (rewritten)",
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("diffing %s: %w", res.Path, err)
	}

	return diff, nil
}
