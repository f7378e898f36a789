// Package polyn is for arithmetic with polynomials in one variable and for
// least-squares fitting of polynomials to sampled data.
/*
BSD 3-Clause License

Copyright (c) 2017–21, Norbert Pillmayer.

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package polyn

import (
	"fmt"
	"math"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/airfoil"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the polynomial tracer.
func T() tracing.Trace {
	return tracing.Select("polyn")
}

// X is a helper for quick construction of polynomials.
// It denotes a term
//
//	C⋅x^I
//
// I > 0
type X struct {
	I int     // exponent of x
	C float64 // coefficient
}

// Polynomial is a polynomial in one variable
//
//	c + a.1 x + a.2 x² + ... a.n xⁿ .
//
// Coefficients are stored by exponent in a sorted map, the constant term
// always being present. Polynomials are values: operations return new
// polynomials and leave their operands unchanged.
// The zero value is not valid; use Constant or New.
type Polynomial struct {
	terms *treemap.Map // int → float64
}

// Constant creates the polynomial p(x) = c.
func Constant(c float64) Polynomial {
	m := treemap.NewWithIntComparator()
	m.Put(0, c)
	return Polynomial{terms: m}
}

// New creates a polynomial, given the constant term and further terms.
//
// Use it as
//
//	polyn.New(8, polyn.X{2, 5}, polyn.X{1, 2.0 / 3})
//
// to get
//
//	P(x) = 8 + 2/3x + 5x²
//
// Terms with exponent < 1 are skipped and reported as an error.
func New(c float64, tms ...X) (Polynomial, error) {
	p := Constant(c)
	var err error
	for _, t := range tms {
		if t.I < 1 {
			err = fmt.Errorf("polyn: term exponent must be at least 1, skipping %v", t)
			continue
		}
		p.terms.Put(t.I, t.C)
	}
	return p, err
}

// each calls f for every stored term, in ascending order of exponent.
func (p Polynomial) each(f func(i int, c float64)) {
	if p.terms == nil {
		return
	}
	it := p.terms.Iterator()
	for it.Next() {
		f(it.Key().(int), it.Value().(float64))
	}
}

func (p Polynomial) clone() Polynomial {
	r := Constant(0)
	p.each(func(i int, c float64) { r.terms.Put(i, c) })
	return r
}

// With returns a copy of p with the coefficient of x^i set to c.
func (p Polynomial) With(i int, c float64) Polynomial {
	r := p.clone()
	r.terms.Put(i, c)
	return r
}

// Coeff returns the coefficient of x^i.
//
// Example:
//
//	p = x + 3x²
//
// ⇒
//
//	coeff(2) = 3
func (p Polynomial) Coeff(i int) float64 {
	if p.terms == nil {
		return 0
	}
	if c, found := p.terms.Get(i); found {
		return c.(float64)
	}
	return 0
}

// Exponents returns the exponents of all stored terms, in ascending order.
func (p Polynomial) Exponents() []int {
	var exps []int
	p.each(func(i int, _ float64) { exps = append(exps, i) })
	return exps
}

// TermCount returns the number of stored terms, including the constant term.
func (p Polynomial) TermCount() int {
	if p.terms == nil {
		return 0
	}
	return p.terms.Size()
}

// Degree returns the highest exponent with a non-zero coefficient.
// Constant polynomials have degree 0.
func (p Polynomial) Degree() int {
	d := 0
	p.each(func(i int, c float64) {
		if c != 0 {
			d = i
		}
	})
	return d
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	r := p.clone()
	q.each(func(i int, c float64) { r.terms.Put(i, r.Coeff(i)+c) })
	return r
}

// Subtract returns p - q.
func (p Polynomial) Subtract(q Polynomial) Polynomial {
	return p.Add(q.Scaled(-1))
}

// Multiply returns p ⋅ q.
func (p Polynomial) Multiply(q Polynomial) Polynomial {
	r := Constant(0)
	p.each(func(i int, a float64) {
		q.each(func(j int, b float64) {
			r.terms.Put(i+j, r.Coeff(i+j)+a*b)
		})
	})
	return r
}

// Scaled returns c ⋅ p.
func (p Polynomial) Scaled(c float64) Polynomial {
	r := Constant(0)
	p.each(func(i int, a float64) { r.terms.Put(i, a*c) })
	return r
}

// Derivative returns dp/dx.
func (p Polynomial) Derivative() Polynomial {
	d := Constant(0)
	p.each(func(i int, c float64) {
		if i > 0 {
			d.terms.Put(i-1, float64(i)*c)
		}
	})
	return d
}

// Eval evaluates p at x, using Horner's scheme.
func (p Polynomial) Eval(x float64) float64 {
	y := 0.0
	for i := p.Degree(); i >= 0; i-- {
		y = y*x + p.Coeff(i)
	}
	return y
}

// EvalAll evaluates p at every position of xs.
func (p Polynomial) EvalAll(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = p.Eval(x)
	}
	return ys
}

// Zap returns p without the terms whose coefficient is (nearly) 0.
func (p Polynomial) Zap() Polynomial {
	r := Constant(0)
	p.each(func(i int, c float64) {
		if !airfoil.Is0(c) {
			r.terms.Put(i, c)
		}
	})
	return r
}

// IsConstant checks wether
// a Polynomial is a constant, i.e. p = { c }? Returns the constant and a flag.
func (p Polynomial) IsConstant() (float64, bool) {
	return p.Coeff(0), p.Degree() == 0
}

// IsValid checks if this a correctly initialized polynomial with finite
// coefficients.
func (p Polynomial) IsValid() bool {
	if p.terms == nil {
		return false
	}
	ok := true
	p.each(func(_ int, c float64) { ok = ok && airfoil.Finite(c) })
	return ok
}

// String creates a readable representation of p, with terms in ascending
// order of exponent, e.g. "1 + 2x - 0.5x^3".
func (p Polynomial) String() string {
	var sb strings.Builder
	p.each(func(i int, c float64) {
		if c == 0 {
			return
		}
		switch {
		case sb.Len() == 0 && c < 0:
			sb.WriteString("-")
		case c < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}
		if a := math.Abs(c); i == 0 || a != 1 {
			fmt.Fprintf(&sb, "%g", a)
		}
		switch {
		case i == 1:
			sb.WriteString("x")
		case i > 1:
			fmt.Fprintf(&sb, "x^%d", i)
		}
	})
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}
