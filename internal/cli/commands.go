package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/npillmayer/airfoil"
	"github.com/npillmayer/airfoil/coordfile"
	"github.com/npillmayer/airfoil/naca"
	"github.com/npillmayer/airfoil/outline"
	"github.com/npillmayer/airfoil/render"
	"github.com/npillmayer/airfoil/repair"
)

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usagef("%v", err)
	}
	return nil
}

// emit delivers a result series: written to a file in dir, plotted next to
// it, or printed to stdout if neither is requested.
func (e *env) emit(s airfoil.Series, dir, name, title string, write, graph bool, extra ...render.Layer) error {
	if !write && !graph {
		return coordfile.Write(e.stdout, s)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, filepath.Base(name))
	if write {
		if err := coordfile.WriteFile(path, s); err != nil {
			return err
		}
		fmt.Fprintf(e.stdout, "wrote %s (%d rows)\n", path, len(s))
	}
	if graph {
		img := render.PlotName(path, e.cfg.PlotFormat)
		layers := append([]render.Layer{{Name: "result", Series: s}}, extra...)
		if err := e.cfg.Renderer().SaveLayers(title, img, layers...); err != nil {
			return err
		}
		fmt.Fprintf(e.stdout, "plotted %s\n", img)
	}
	return nil
}

func runMake(e *env, args []string) error {
	fs := e.newFlags("make")
	sf := e.scaleFlags(fs)
	points := fs.Int("n", e.cfg.Points, "number of stations for a designation")
	write := fs.Bool("w", false, "write coordinates to a file")
	graph := fs.Bool("g", false, "plot the section")
	dir := fs.String("o", e.cfg.OutputDir, "output directory")
	if err := parse(fs, args); err != nil {
		return err
	}
	sc, err := sf.resolve(e, fs)
	if err != nil {
		return err
	}
	var shape naca.ShapeParameters
	n := *points
	switch fs.NArg() {
	case 1:
		shape, err = naca.ParseDesignation(fs.Arg(0))
	case 4:
		shape, n, err = shapeArgs(fs.Args())
	default:
		return usagef("need MAXCAMB POSCAMB THICK POINTS or a 4-digit designation, have %d argument(s)", fs.NArg())
	}
	if err != nil {
		return err
	}
	s, err := naca.Synthesize(shape, n)
	if err != nil {
		return err
	}
	if s, err = sc.Apply(s); err != nil {
		return err
	}
	tracer().Infof("synthesized %s with %d rows, scale %s", shape, len(s), sc)
	name := coordfile.ShapeName(shape.Designation(), sc)
	return e.emit(s, *dir, name, shape.String(), *write, *graph)
}

func shapeArgs(args []string) (naca.ShapeParameters, int, error) {
	var v [3]float64
	for i, label := range []string{"MAXCAMB", "POSCAMB", "THICK"} {
		f, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return naca.ShapeParameters{}, 0, usagef("%s %q is not a number", label, args[i])
		}
		v[i] = f
	}
	n, err := strconv.Atoi(args[3])
	if err != nil {
		return naca.ShapeParameters{}, 0, usagef("POINTS %q is not an integer", args[3])
	}
	shape, err := naca.NewShape(v[0], v[1], v[2])
	return shape, n, err
}

func oneFile(fs *flag.FlagSet) (string, error) {
	if fs.NArg() != 1 {
		return "", usagef("need exactly one coordinate file, have %d argument(s)", fs.NArg())
	}
	return fs.Arg(0), nil
}

func runScale(e *env, args []string) error {
	fs := e.newFlags("scale")
	sf := e.scaleFlags(fs)
	degree := fs.Int("f", e.cfg.RepairDegree, "repair with a polynomial fit of this degree (0 = off)")
	write := fs.Bool("w", false, "write coordinates to a file")
	graph := fs.Bool("g", false, "plot the section")
	dir := fs.String("o", e.cfg.OutputDir, "output directory")
	if err := parse(fs, args); err != nil {
		return err
	}
	sc, err := sf.resolve(e, fs)
	if err != nil {
		return err
	}
	path, err := oneFile(fs)
	if err != nil {
		return err
	}
	raw, err := coordfile.ReadFile(path)
	if err != nil {
		return err
	}
	s := raw
	if *degree > 0 {
		if s, err = repair.RepairN(raw, *degree, e.cfg.RepairDensity); err != nil {
			return err
		}
	}
	factor, err := sc.Factor(s)
	if err != nil {
		return err
	}
	scaled, err := s.Scaled(factor)
	if err != nil {
		return err
	}
	name := coordfile.ScaledName(path, factor)
	var extra []render.Layer
	if *degree > 0 {
		name = coordfile.RepairedName(name, *degree)
		rawScaled, err := raw.Scaled(factor)
		if err != nil {
			return err
		}
		extra = append(extra, render.Layer{Name: "raw", Series: rawScaled})
	}
	return e.emit(scaled, *dir, name, filepath.Base(name), *write, *graph, extra...)
}

func runAnalyze(e *env, args []string) error {
	fs := e.newFlags("analyze")
	degree := fs.Int("f", e.cfg.RepairDegree, "report the overlap of a repair of this degree (0 = off)")
	if err := parse(fs, args); err != nil {
		return err
	}
	path, err := oneFile(fs)
	if err != nil {
		return err
	}
	raw, err := coordfile.ReadFile(path)
	if err != nil {
		return err
	}
	g, err := naca.Decompose(raw)
	if err != nil {
		return err
	}
	w := e.stdout
	fmt.Fprintf(w, "file         %s\n", path)
	fmt.Fprintf(w, "rows         %d (leading edge at row %d)\n", len(raw), g.SplitIndex)
	fmt.Fprintf(w, "chord        %g\n", g.Chord)
	fmt.Fprintf(w, "max camber   %.3f %% at %.1f %% chord\n", g.MaxCamber, g.CamberPos)
	fmt.Fprintf(w, "thickness    %.3f %%\n", g.Thickness)
	if shape, err := g.Shape(); err == nil {
		fmt.Fprintf(w, "designation  NACA %s\n", shape.Nearest())
	} else {
		fmt.Fprintf(w, "designation  none (%v)\n", err)
	}
	ll, ur := outline.Bounds(raw)
	fmt.Fprintf(w, "bounds       %s %s\n", ll, ur)
	fmt.Fprintf(w, "area         %.6g\n", outline.SeriesArea(raw))
	if *degree > 0 {
		fixed, err := repair.RepairN(raw, *degree, e.cfg.RepairDensity)
		if err != nil {
			return err
		}
		ov, err := outline.Overlap(raw, fixed)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "overlap      %.4f (degree %d repair)\n", ov, *degree)
	}
	return nil
}

func runRegen(e *env, args []string) error {
	fs := e.newFlags("regen")
	points := fs.Int("n", e.cfg.Points, "number of stations of the regenerated section")
	write := fs.Bool("w", false, "write coordinates to a file")
	graph := fs.Bool("g", false, "plot the section")
	dir := fs.String("o", e.cfg.OutputDir, "output directory")
	if err := parse(fs, args); err != nil {
		return err
	}
	path, err := oneFile(fs)
	if err != nil {
		return err
	}
	raw, err := coordfile.ReadFile(path)
	if err != nil {
		return err
	}
	s, shape, err := repair.Regenerate(raw, *points)
	if err != nil {
		return err
	}
	name := coordfile.RegeneratedName(path, shape.Nearest())
	return e.emit(s, *dir, name, shape.String(), *write, *graph,
		render.Layer{Name: "raw", Series: raw})
}
