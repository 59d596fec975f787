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

import "math/big"

// Preset3329 returns a ready, pre-validated Params instance for
// N=256, Q=3329, B=1 — a ring degree and modulus pair sized for
// demonstration and test use. Q=3329 is prime and
// 2*256*1 + 1 = 513 < 3329/4 = 832, so the correctness bound holds.
func Preset3329() *Params {
	p, err := NewParams(256, big.NewInt(3329), big.NewInt(1))
	if err != nil {
		// the constants above are fixed and known-valid; a failure
		// here means the validity check itself regressed.
		panic(err)
	}

	return p
}
