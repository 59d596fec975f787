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

import "github.com/AlvinHon/ring-lwe-encryption/data"

// Decrypt recovers a length-N bit vector from c using dk.
//
//	m' ← (v - u*s) mod Q
//	m'' ← round(m')
//	return to_fixed_vec(m'')
//
// Decrypt is total: it never fails, though a badly configured Params
// (one that does not satisfy Params.Valid) can make it return
// arbitrary bits.
func (dk DecryptKey) Decrypt(c CipherText) data.Vector {
	p := dk.params

	us, err := p.Mul(c.U, dk.S)
	if err != nil {
		// u and s are always both length-N ring elements produced by
		// this package; a length mismatch here would be a bug, not a
		// caller error, so Decrypt stays total by not surfacing it.
		panic(err)
	}

	mPrime := p.ModCoeffs(p.Sub(c.V, p.ModCoeffs(us)))
	mBits := p.Round(mPrime)

	return p.ToFixedVec(mBits)
}
