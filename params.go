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
	"math/big"

	"github.com/pkg/errors"

	"github.com/AlvinHon/ring-lwe-encryption/internal"
)

// Params bundles the modulus Q, ring degree N and noise bound B of a
// ring-LWE instance, along with the centred modulo operation derived
// from them.
//
// The parameters must satisfy 2*N*B^2 + B < Q/4 (see Valid); this is
// the bound that makes decryption recover the correct bit with no
// error margin left to chance.
type Params struct {
	// N is the ring degree: R_q = Z_q[X]/(X^N+1). Also the maximum
	// plaintext bit-length.
	N int
	// Q is the (odd, prime) ciphertext/key modulus.
	Q *big.Int
	// B bounds the magnitude of "small" noise and secret coefficients.
	B *big.Int
}

// NewParams validates (n, q, b) against Valid and returns the
// resulting Params, or an error wrapping internal.ErrInvalidParameters
// if the correctness bound does not hold.
func NewParams(n int, q, b *big.Int) (*Params, error) {
	p := &Params{N: n, Q: q, B: b}
	if !p.Valid() {
		return nil, errors.Wrap(internal.ErrInvalidParameters, "NewParams")
	}

	return p, nil
}

// Valid reports whether p satisfies the encryption correctness bound
// 2*N*B^2 + B < Q/4, together with the side conditions Q odd and
// B >= 1 that the bound assumes.
func (p *Params) Valid() bool {
	if p.N <= 0 || p.B == nil || p.Q == nil {
		return false
	}
	if p.B.Sign() <= 0 {
		return false
	}
	if p.Q.Bit(0) != 1 {
		return false // Q must be odd
	}
	if !p.Q.ProbablyPrime(20) {
		return false
	}

	lhs := new(big.Int).Mul(p.B, p.B)
	lhs.Mul(lhs, big.NewInt(int64(2*p.N)))
	lhs.Add(lhs, p.B)

	qDiv4 := new(big.Int).Div(p.Q, big.NewInt(4))

	return lhs.Cmp(qDiv4) < 0
}

// Modulo maps x to the unique representative of x + QZ in the centred
// canonical range (-Q/2, Q/2].
func (p *Params) Modulo(x *big.Int) *big.Int {
	a := new(big.Int).Mod(x, p.Q) // Euclidean residue, 0 <= a < Q
	halfQ := new(big.Int).Rsh(p.Q, 1)
	if a.Cmp(halfQ) > 0 {
		a.Sub(a, p.Q)
	}

	return a
}

// floorHalfQ returns floor(Q/2).
func (p *Params) floorHalfQ() *big.Int {
	return new(big.Int).Rsh(p.Q, 1)
}

// ceilHalfQ returns ceil(Q/2), the scale-up factor embedding a bit in
// a coefficient far from the opposing bit. For odd Q this is (Q+1)/2.
func (p *Params) ceilHalfQ() *big.Int {
	return ceilDiv2(p.Q)
}

// ceilDiv2 computes the closest integer to x/2, ties broken upward —
// i.e. ceil(x/2) for non-negative x.
func ceilDiv2(x *big.Int) *big.Int {
	sum := new(big.Int).Add(x, big.NewInt(1))
	return sum.Rsh(sum, 1)
}
