package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/npillmayer/airfoil"
	"github.com/npillmayer/airfoil/coordfile"
	"github.com/npillmayer/airfoil/naca"
)

type batchJob struct {
	code  string
	shape naca.ShapeParameters
	path  string
	rows  int
	err   error
}

func (j *batchJob) run(points int, sc airfoil.Scale) {
	s, err := naca.Synthesize(j.shape, points)
	if err == nil {
		s, err = sc.Apply(s)
	}
	if err == nil {
		err = coordfile.WriteFile(j.path, s)
	}
	if err != nil {
		j.err = fmt.Errorf("%s: %w", j.code, err)
		return
	}
	j.rows = len(s)
}

// runBatch synthesizes a list of designations, one goroutine each. Every
// designation maps to its own file; repeated designations are written once.
func runBatch(e *env, args []string) error {
	fs := e.newFlags("batch")
	sf := e.scaleFlags(fs)
	points := fs.Int("n", e.cfg.Points, "number of stations")
	dir := fs.String("o", e.cfg.OutputDir, "output directory")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return usagef("need at least one designation")
	}
	sc, err := sf.resolve(e, fs)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*dir, 0o755); err != nil {
		return err
	}
	var failures []error
	var jobs []*batchJob
	seen := make(map[string]bool)
	for _, code := range fs.Args() {
		shape, err := naca.ParseDesignation(code)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		path := filepath.Join(*dir, coordfile.ShapeName(shape.Designation(), sc))
		if seen[path] {
			continue
		}
		seen[path] = true
		jobs = append(jobs, &batchJob{code: code, shape: shape, path: path})
	}
	wg := new(sync.WaitGroup)
	for _, j := range jobs {
		wg.Add(1)
		go func(j *batchJob) {
			defer wg.Done()
			j.run(*points, sc)
		}(j)
	}
	wg.Wait()
	for _, j := range jobs {
		if j.err != nil {
			failures = append(failures, j.err)
			continue
		}
		fmt.Fprintf(e.stdout, "wrote %s (%d rows)\n", j.path, j.rows)
	}
	tracer().Infof("batch: %d job(s), %d failure(s)", len(jobs), len(failures))
	return errors.Join(failures...)
}
