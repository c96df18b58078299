package rewrite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTransformer returns a fixed set of edits for every file.
type stubTransformer struct {
	name  string
	edits []Edit
}

func (s stubTransformer) Name() string                  { return s.name }
func (s stubTransformer) Rewrite(*File) ([]Edit, error) { return s.edits, nil }

func TestPipeline_NoChange(t *testing.T) {
	f := &File{Path: "a.go", Src: []byte("package a\n")}

	p := NewPipeline(nil, stubTransformer{name: "noop"})

	results, err := p.Run([]*File{f})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.False(t, results[0].Changed)
	assert.Equal(t, f.Src, results[0].Output)
}

func TestPipeline_CombinesTransformerEdits(t *testing.T) {
	f := &File{Path: "a.go", Src: []byte("package a\n")}

	p := NewPipeline(nil,
		stubTransformer{name: "first", edits: []Edit{Insert(9, " // one")}},
		stubTransformer{name: "second", edits: []Edit{Insert(0, "// two\n")}},
	)

	results, err := p.Run([]*File{f})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.True(t, results[0].Changed)
	assert.Equal(t, "// two\npackage a // one\n", string(results[0].Output))
}

func TestWriteFiles_OnlyChanged(t *testing.T) {
	dir := t.TempDir()

	changed := filepath.Join(dir, "changed.go")
	untouched := filepath.Join(dir, "untouched.go")

	require.NoError(t, os.WriteFile(changed, []byte("old"), 0o644))
	require.NoError(t, os.WriteFile(untouched, []byte("old"), 0o644))

	results := []Result{
		{Path: changed, Input: []byte("old"), Output: []byte("new"), Changed: true},
		{Path: untouched, Input: []byte("old"), Output: []byte("old"), Changed: false},
	}

	n, err := WriteFiles(results)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := os.ReadFile(changed)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	got, err = os.ReadFile(untouched)
	require.NoError(t, err)
	assert.Equal(t, "old", string(got))
}

func TestUnifiedDiff(t *testing.T) {
	res := Result{
		Path:    "a.go",
		Input:   []byte("var x = 5\n"),
		Output:  []byte("var x int = 5\n"),
		Changed: true,
	}

	diff, err := UnifiedDiff(res)
	require.NoError(t, err)

	assert.Contains(t, diff, "-var x = 5")
	assert.Contains(t, diff, "+var x int = 5")
}
