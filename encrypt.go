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

// Encrypt encrypts message m under ek, reading randomness from rng.
//
//	r, e2, e3 ← small uniform in R_q
//	u ← (a*r + e2) mod Q
//	M ← scale(embed(m))
//	v ← (t*r + e3 + M) mod Q
//
// m's validity (length <= N, entries in {0,1}) was already checked at
// Message construction; Encrypt does not re-validate it.
func (ek EncryptKey) Encrypt(rng io.Reader, m Message) (CipherText, error) {
	p := ek.params

	r, err := p.uniformSmall(rng)
	if err != nil {
		return CipherText{}, errors.Wrap(err, "Encrypt: sampling r")
	}
	e2, err := p.uniformSmall(rng)
	if err != nil {
		return CipherText{}, errors.Wrap(err, "Encrypt: sampling e2")
	}
	e3, err := p.uniformSmall(rng)
	if err != nil {
		return CipherText{}, errors.Wrap(err, "Encrypt: sampling e3")
	}

	ar, err := p.Mul(ek.A, r)
	if err != nil {
		return CipherText{}, errors.Wrap(err, "Encrypt: a*r")
	}
	u := p.ModCoeffs(p.Add(p.ModCoeffs(ar), e2))

	scaledM := p.Scale(p.embed(m.Data()))

	tr, err := p.Mul(ek.T, r)
	if err != nil {
		return CipherText{}, errors.Wrap(err, "Encrypt: t*r")
	}
	trE3 := p.ModCoeffs(p.Add(p.ModCoeffs(tr), e3))
	v := p.ModCoeffs(p.Add(trE3, scaledM))

	return CipherText{U: u, V: v}, nil
}
