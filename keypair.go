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

	"github.com/pkg/errors"
)

// EncryptKey is the public half of a key pair: the random polynomial
// a and t = a*s + e, both in centred R_q form. It may be published.
type EncryptKey struct {
	params *Params
	A      RingElement
	T      RingElement
}

// DecryptKey is the private half of a key pair: the small secret
// polynomial s, with coefficients in [-B, B]. It must be kept private.
type DecryptKey struct {
	params *Params
	S      RingElement
}

// KeyGen derives an (EncryptKey, DecryptKey) pair from p, reading
// randomness from rng.
//
//	a ← uniform on centred R_q
//	s ← small uniform in R_q
//	e ← small uniform in R_q
//	t ← (a*s + e) mod Q
func (p *Params) KeyGen(rng io.Reader) (EncryptKey, DecryptKey, error) {
	a, err := p.uniformLarge(rng)
	if err != nil {
		return EncryptKey{}, DecryptKey{}, errors.Wrap(err, "KeyGen: sampling a")
	}

	s, err := p.uniformSmall(rng)
	if err != nil {
		return EncryptKey{}, DecryptKey{}, errors.Wrap(err, "KeyGen: sampling s")
	}

	e, err := p.uniformSmall(rng)
	if err != nil {
		return EncryptKey{}, DecryptKey{}, errors.Wrap(err, "KeyGen: sampling e")
	}

	as, err := p.Mul(a, s)
	if err != nil {
		return EncryptKey{}, DecryptKey{}, errors.Wrap(err, "KeyGen: a*s")
	}
	t := p.ModCoeffs(p.Add(p.ModCoeffs(as), e))

	return EncryptKey{params: p, A: a, T: t}, DecryptKey{params: p, S: s}, nil
}
