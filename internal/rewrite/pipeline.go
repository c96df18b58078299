package rewrite

import (
	"fmt"

	"go.uber.org/zap"
)

// Transformer visits one file and returns the edits it wants applied.
// Returning zero edits means the file is unchanged as far as this
// transformer is concerned.
type Transformer interface {
	Name() string
	Rewrite(f *File) ([]Edit, error)
}

// Result is the outcome of running the pipeline over one file.
type Result struct {
	Path    string
	Input   []byte
	Output  []byte
	Changed bool
}

// Pipeline applies an ordered list of transformers to each file.
type Pipeline struct {
	transformers []Transformer
	log          *zap.Logger
}

// NewPipeline creates a pipeline applying the transformers in the given order.
func NewPipeline(log *zap.Logger, transformers ...Transformer) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}

	return &Pipeline{transformers: transformers, log: log}
}

// Run processes the files one at a time, in order. For each file the
// transformers run in their fixed order and their edits are combined into a
// single splice. A file with no edits comes back byte-identical.
func (p *Pipeline) Run(files []*File) ([]Result, error) {
	results := make([]Result, 0, len(files))

	for _, f := range files {
		res, err := p.runFile(f)
		if err != nil {
			return nil, fmt.Errorf("rewriting %s: %w", f.Path, err)
		}

		results = append(results, res)
	}

	return results, nil
}

func (p *Pipeline) runFile(f *File) (Result, error) {
	var edits []Edit

	for _, t := range p.transformers {
		te, err := t.Rewrite(f)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", t.Name(), err)
		}

		if len(te) > 0 {
			p.log.Debug("transformer produced edits",
				zap.String("transformer", t.Name()),
				zap.String("file", f.Path),
				zap.Int("edits", len(te)))
		}

		edits = append(edits, te...)
	}

	out, err := ApplyEdits(f.Src, edits)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Path:    f.Path,
		Input:   f.Src,
		Output:  out,
		Changed: len(edits) > 0,
	}, nil
}
