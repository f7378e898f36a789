package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/airfoil/coordfile"
	"github.com/npillmayer/airfoil/naca"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnv() {
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "AIRFOIL_") {
			_ = os.Unsetenv(strings.SplitN(kv, "=", 2)[0])
		}
	}
}

func foil(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func sectionFile(t *testing.T, dir, code string, points int) string {
	shape, err := naca.ParseDesignation(code)
	if err != nil {
		t.Fatal(err)
	}
	s, err := naca.Synthesize(shape, points)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "n"+code+".dat")
	if err := coordfile.WriteFile(path, s); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestUsage(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	clearConfigEnv()

	convey.Convey("Given the foil command", t, func() {
		convey.Convey("When called without a command", func() {
			code, _, stderr := foil()
			convey.So(code, convey.ShouldEqual, ExitUsage)
			convey.So(stderr, convey.ShouldContainSubstring, "commands:")
		})
		convey.Convey("When called with an unknown command", func() {
			code, _, stderr := foil("fly")
			convey.So(code, convey.ShouldEqual, ExitUsage)
			convey.So(stderr, convey.ShouldContainSubstring, `unknown command "fly"`)
		})
		convey.Convey("When make has the wrong number of arguments", func() {
			code, _, stderr := foil("make", "2", "40", "12")
			convey.So(code, convey.ShouldEqual, ExitUsage)
			convey.So(stderr, convey.ShouldContainSubstring, "usage: foil make")
		})
		convey.Convey("When a parameter is not a number", func() {
			code, _, stderr := foil("make", "2", "forty", "12", "100")
			convey.So(code, convey.ShouldEqual, ExitUsage)
			convey.So(stderr, convey.ShouldContainSubstring, "POSCAMB")
		})
		convey.Convey("When both -s and -chord are given", func() {
			code, _, _ := foil("make", "-s", "2", "-chord", "3", "0012")
			convey.So(code, convey.ShouldEqual, ExitUsage)
		})
		convey.Convey("When an undefined flag is given", func() {
			code, _, _ := foil("scale", "-q", "x.dat")
			convey.So(code, convey.ShouldEqual, ExitUsage)
		})
		convey.Convey("When the trace level is unknown", func() {
			code, _, _ := foil("-trace", "loud", "make", "0012")
			convey.So(code, convey.ShouldEqual, ExitUsage)
		})
	})
}

func TestTraceOutput(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	clearConfigEnv()

	convey.Convey("Given the foil command", t, func() {
		convey.Convey("When run with -trace Debug", func() {
			code, stdout, stderr := foil("-trace", "Debug", "make", "-n", "20", "0012")

			convey.Convey("Then trace lines go to stderr, not stdout", func() {
				convey.So(code, convey.ShouldEqual, ExitOK)
				convey.So(stderr, convey.ShouldContainSubstring, "INFO")
				convey.So(stderr, convey.ShouldContainSubstring, "with 20 rows")
				convey.So(stdout, convey.ShouldNotContainSubstring, "synthesized")
			})
		})
		convey.Convey("When run with the default trace level", func() {
			code, _, stderr := foil("make", "-n", "20", "0012")

			convey.Convey("Then stderr stays quiet", func() {
				convey.So(code, convey.ShouldEqual, ExitOK)
				convey.So(stderr, convey.ShouldNotContainSubstring, "synthesized")
			})
		})
	})
}

func TestMake(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	clearConfigEnv()

	convey.Convey("Given an output directory", t, func() {
		dir := t.TempDir()

		convey.Convey("When making a section from parameters", func() {
			code, stdout, _ := foil("make", "-w", "-o", dir, "2", "40", "12", "100")

			convey.Convey("Then it is written under its designation", func() {
				convey.So(code, convey.ShouldEqual, ExitOK)
				convey.So(stdout, convey.ShouldContainSubstring, "2412.txt")
				s, err := coordfile.ReadFile(filepath.Join(dir, "2412.txt"))
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(s), convey.ShouldEqual, 100)
			})
		})

		convey.Convey("When making a scaled section from a designation", func() {
			code, _, _ := foil("make", "-w", "-s", "2.5", "-n", "60", "-o", dir, "NACA4415")

			convey.Convey("Then the scale is part of the file name", func() {
				convey.So(code, convey.ShouldEqual, ExitOK)
				s, err := coordfile.ReadFile(filepath.Join(dir, "4415_S2.5.txt"))
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(s), convey.ShouldEqual, 60)
				convey.So(s.Chord(), convey.ShouldAlmostEqual, 2.5, 0.01)
			})
		})

		convey.Convey("When making a section to a chord", func() {
			code, _, _ := foil("make", "-w", "-chord", "5", "-n", "40", "-o", dir, "2412")

			convey.Convey("Then the name tells chord from scale factor", func() {
				convey.So(code, convey.ShouldEqual, ExitOK)
				s, err := coordfile.ReadFile(filepath.Join(dir, "2412_C5.0.txt"))
				convey.So(err, convey.ShouldBeNil)
				convey.So(s.Chord(), convey.ShouldAlmostEqual, 5, 0.01)
				_, err = os.Stat(filepath.Join(dir, "2412_S5.0.txt"))
				convey.So(os.IsNotExist(err), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When making a section without an exact 4-digit code", func() {
			code, stdout, _ := foil("make", "-w", "-o", dir, "2.5", "40", "12", "100")

			convey.Convey("Then the file carries the parameter label", func() {
				convey.So(code, convey.ShouldEqual, ExitOK)
				convey.So(stdout, convey.ShouldContainSubstring, "M2.5P40T12.txt")
				_, err := os.Stat(filepath.Join(dir, "3412.txt"))
				convey.So(os.IsNotExist(err), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When neither -w nor -g is given", func() {
			code, stdout, _ := foil("make", "-n", "20", "0012")

			convey.Convey("Then the rows go to stdout", func() {
				convey.So(code, convey.ShouldEqual, ExitOK)
				s, err := coordfile.Read(strings.NewReader(stdout))
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(s), convey.ShouldEqual, 20)
			})
		})

		convey.Convey("When plotting a section", func() {
			code, _, _ := foil("make", "-g", "-o", dir, "0012")

			convey.Convey("Then an image is saved", func() {
				convey.So(code, convey.ShouldEqual, ExitOK)
				_, err := os.Stat(filepath.Join(dir, "0012.png"))
				convey.So(err, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the shape is invalid", func() {
			code, _, stderr := foil("make", "2", "40", "0", "100")

			convey.Convey("Then the offending parameter is reported", func() {
				convey.So(code, convey.ShouldEqual, ExitError)
				convey.So(stderr, convey.ShouldContainSubstring, "thickness")
			})
		})
	})
}

func TestScale(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	clearConfigEnv()

	convey.Convey("Given a coordinate file", t, func() {
		dir := t.TempDir()
		path := sectionFile(t, dir, "0012", 80)

		convey.Convey("When scaling by a factor", func() {
			code, _, _ := foil("scale", "-s", "2", "-w", "-o", dir, path)

			convey.Convey("Then every coordinate is doubled", func() {
				convey.So(code, convey.ShouldEqual, ExitOK)
				s, err := coordfile.ReadFile(filepath.Join(dir, "n0012_S2.0.txt"))
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(s), convey.ShouldEqual, 80)
				convey.So(s[0].X(), convey.ShouldAlmostEqual, 2.0, 1e-12)
			})
		})

		convey.Convey("When scaling to a chord", func() {
			code, stdout, _ := foil("scale", "-chord", "240", path)

			convey.Convey("Then the first row sits at the target chord", func() {
				convey.So(code, convey.ShouldEqual, ExitOK)
				s, err := coordfile.Read(strings.NewReader(stdout))
				convey.So(err, convey.ShouldBeNil)
				convey.So(s[0].X(), convey.ShouldAlmostEqual, 240.0, 1e-9)
			})
		})

		convey.Convey("When repairing while scaling", func() {
			code, _, _ := foil("scale", "-s", "1", "-f", "5", "-w", "-o", dir, path)

			convey.Convey("Then the repaired file carries the degree", func() {
				convey.So(code, convey.ShouldEqual, ExitOK)
				s, err := coordfile.ReadFile(filepath.Join(dir, "n0012_S1.0_F5.txt"))
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(s), convey.ShouldEqual, 200)
			})
		})

		convey.Convey("When the file does not exist", func() {
			code, _, _ := foil("scale", "-s", "2", filepath.Join(dir, "missing.dat"))
			convey.So(code, convey.ShouldEqual, ExitError)
		})
	})
}

func TestAnalyzeAndRegen(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	clearConfigEnv()

	convey.Convey("Given a cambered section file", t, func() {
		dir := t.TempDir()
		path := sectionFile(t, dir, "2412", 200)

		convey.Convey("When analyzing it", func() {
			code, stdout, _ := foil("analyze", path)

			convey.Convey("Then its designation is recovered", func() {
				convey.So(code, convey.ShouldEqual, ExitOK)
				convey.So(stdout, convey.ShouldContainSubstring, "NACA 2412")
				convey.So(stdout, convey.ShouldContainSubstring, "area")
				convey.So(stdout, convey.ShouldNotContainSubstring, "overlap")
			})
		})

		convey.Convey("When analyzing it with a repair", func() {
			code, stdout, _ := foil("analyze", "-f", "5", path)

			convey.Convey("Then the repair overlap is reported", func() {
				convey.So(code, convey.ShouldEqual, ExitOK)
				convey.So(stdout, convey.ShouldContainSubstring, "overlap")
			})
		})

		convey.Convey("When regenerating it", func() {
			code, _, _ := foil("regen", "-n", "120", "-w", "-o", dir, path)

			convey.Convey("Then a NACA section under its designation is written", func() {
				convey.So(code, convey.ShouldEqual, ExitOK)
				s, err := coordfile.ReadFile(filepath.Join(dir, "n2412_2412.txt"))
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(s), convey.ShouldEqual, 120)
			})
		})
	})
}

func TestBatch(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	clearConfigEnv()

	convey.Convey("Given an output directory", t, func() {
		dir := t.TempDir()

		convey.Convey("When synthesizing several designations", func() {
			code, stdout, _ := foil("batch", "-n", "50", "-o", dir, "0012", "2412", "4415", "2412")

			convey.Convey("Then each is written once", func() {
				convey.So(code, convey.ShouldEqual, ExitOK)
				convey.So(strings.Count(stdout, "wrote"), convey.ShouldEqual, 3)
				for _, name := range []string{"0012.txt", "2412.txt", "4415.txt"} {
					s, err := coordfile.ReadFile(filepath.Join(dir, name))
					convey.So(err, convey.ShouldBeNil)
					convey.So(len(s), convey.ShouldEqual, 50)
				}
			})
		})

		convey.Convey("When some designations are invalid", func() {
			code, stdout, stderr := foil("batch", "-o", dir, "0012", "12", "0000")

			convey.Convey("Then the valid ones are written and all failures reported", func() {
				convey.So(code, convey.ShouldEqual, ExitError)
				convey.So(stdout, convey.ShouldContainSubstring, "0012.txt")
				convey.So(stderr, convey.ShouldContainSubstring, `"12"`)
				convey.So(stderr, convey.ShouldContainSubstring, "thickness")
			})
		})

		convey.Convey("When no designation is given", func() {
			code, _, _ := foil("batch", "-o", dir)
			convey.So(code, convey.ShouldEqual, ExitUsage)
		})
	})
}
