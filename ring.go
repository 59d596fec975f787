/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package rlwe

import (
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/AlvinHon/ring-lwe-encryption/data"
	"github.com/AlvinHon/ring-lwe-encryption/sample"
)

// RingElement is a polynomial in R_q = Z_q[X]/(X^N+1), represented by
// its coefficients in ascending degree order. Coefficients above the
// stored length are implicitly zero; RingElement values produced by
// this package carry their coefficients in the centred canonical
// range (-Q/2, Q/2] once passed through ModCoeffs.
type RingElement struct {
	Coeffs data.Vector
}

// NewRingElement wraps an existing coefficient vector as a RingElement.
func NewRingElement(coeffs data.Vector) RingElement {
	return RingElement{Coeffs: coeffs}
}

// Add returns a + b, coefficient-wise. a and b must have equal length.
func (p *Params) Add(a, b RingElement) RingElement {
	return RingElement{Coeffs: a.Coeffs.Add(b.Coeffs)}
}

// Sub returns a - b, coefficient-wise. a and b must have equal length.
func (p *Params) Sub(a, b RingElement) RingElement {
	return RingElement{Coeffs: a.Coeffs.Sub(b.Coeffs)}
}

// Mul returns a * b reduced modulo X^N+1 (coefficients are not yet
// centred; pass the result through ModCoeffs). a and b must have equal
// length.
func (p *Params) Mul(a, b RingElement) (RingElement, error) {
	coeffs, err := a.Coeffs.MulAsPolyInRing(b.Coeffs)
	if err != nil {
		return RingElement{}, errors.Wrap(err, "ring multiplication")
	}

	return RingElement{Coeffs: coeffs}, nil
}

// ModCoeffs applies Modulo to every coefficient of r. The result
// always lies in the centred canonical range; ModCoeffs is idempotent.
func (p *Params) ModCoeffs(r RingElement) RingElement {
	return RingElement{Coeffs: r.Coeffs.Apply(p.Modulo)}
}

// Scale multiplies every coefficient of r by ceil(Q/2). The result is
// not reduced modulo Q; callers pass it through ModCoeffs (directly,
// or via the Add it feeds into) before use.
func (p *Params) Scale(r RingElement) RingElement {
	return RingElement{Coeffs: r.Coeffs.MulScalar(p.ceilHalfQ())}
}

// Round thresholds every coefficient c of r against ceil(Q/2)/2
// (floor division), emitting 1 where |c| exceeds the threshold and 0
// otherwise. The result is the decoded plaintext slot value.
func (p *Params) Round(r RingElement) RingElement {
	threshold := new(big.Int).Rsh(p.ceilHalfQ(), 1)

	coeffs := r.Coeffs.Apply(func(c *big.Int) *big.Int {
		if new(big.Int).Abs(c).Cmp(threshold) > 0 {
			return big.NewInt(1)
		}
		return big.NewInt(0)
	})

	return RingElement{Coeffs: coeffs}
}

// ToFixedVec expands r to a length-N vector, zero-padding past its
// currently stored coefficients.
func (p *Params) ToFixedVec(r RingElement) data.Vector {
	return r.Coeffs.Resize(p.N)
}

// UniformIn produces a random RingElement of n coefficients, each
// drawn independently and uniformly from the inclusive integer
// interval [lo, hi], reading randomness from rng.
func UniformIn(rng io.Reader, lo, hi *big.Int, n int) (RingElement, error) {
	if hi.Cmp(lo) < 0 {
		return RingElement{}, errors.New("uniform_in: hi must not be smaller than lo")
	}

	span := new(big.Int).Sub(hi, lo)
	span.Add(span, big.NewInt(1))

	sampler := sample.NewUniformRange(rng, big.NewInt(0), span)
	coeffs, err := data.NewRandomVector(n, sampler)
	if err != nil {
		return RingElement{}, errors.Wrap(err, "uniform_in")
	}

	shifted := coeffs.Apply(func(c *big.Int) *big.Int {
		return new(big.Int).Add(c, lo)
	})

	return RingElement{Coeffs: shifted}, nil
}

// uniformLarge draws a ring element from the centred interval
// [-floor(Q/2), floor(Q/2)], the distribution key generation uses for
// the public polynomial `a`.
func (p *Params) uniformLarge(rng io.Reader) (RingElement, error) {
	return symmetricRingElement(rng, p.floorHalfQ(), p.N)
}

// uniformSmall draws a ring element from [-B, B], the distribution
// used for secrets and noise terms.
func (p *Params) uniformSmall(rng io.Reader) (RingElement, error) {
	return symmetricRingElement(rng, p.B, p.N)
}

// symmetricRingElement draws n coefficients from [-bound, bound] via
// sample.Symmetric, reading randomness from rng.
func symmetricRingElement(rng io.Reader, bound *big.Int, n int) (RingElement, error) {
	sampler := sample.NewSymmetric(rng, bound)
	coeffs, err := data.NewRandomVector(n, sampler)
	if err != nil {
		return RingElement{}, errors.Wrap(err, "symmetric sampling")
	}

	return RingElement{Coeffs: coeffs}, nil
}

// embed pads a bit vector to N coefficients, representing it as an
// (unscaled) RingElement ready for Scale.
func (p *Params) embed(bits data.Vector) RingElement {
	return RingElement{Coeffs: bits.Resize(p.N)}
}
