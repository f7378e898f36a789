package coordfile

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/npillmayer/airfoil"
)

// FormatFactor prints a scale factor for use in file names: the shortest
// decimal form, always with a fractional part ("1.0", "2.5", "0.001").
func FormatFactor(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func stem(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// ScaledName derives the output name for a file scaled by factor, e.g.
// "clarky.dat" → "clarky_S2.5.txt". The name depends on the inputs only, so
// repeated runs overwrite the same file.
func ScaledName(path string, factor float64) string {
	return stem(path) + "_S" + FormatFactor(factor) + ".txt"
}

// RepairedName derives the output name for a file repaired with a
// polynomial degree, e.g. "clarky.dat" → "clarky_F5.txt".
func RepairedName(path string, degree int) string {
	return fmt.Sprintf("%s_F%d.txt", stem(path), degree)
}

// RegeneratedName derives the output name of a regenerated file, e.g.
// "raw.dat" with designation "2412" → "raw_2412.txt".
func RegeneratedName(path, designation string) string {
	return fmt.Sprintf("%s_%s.txt", stem(path), designation)
}

// ShapeName derives the output name of a synthesized section: "2412.txt"
// at unit scale, "2412_S3.0.txt" for a scale factor of 3 and "2412_C3.0.txt"
// for a chord of 3.
func ShapeName(designation string, sc airfoil.Scale) string {
	if sc.Mode == airfoil.ToChord {
		return designation + "_C" + FormatFactor(sc.Value) + ".txt"
	}
	if sc.Value == 1 {
		return designation + ".txt"
	}
	return designation + "_S" + FormatFactor(sc.Value) + ".txt"
}
