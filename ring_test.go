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
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/AlvinHon/ring-lwe-encryption/data"
)

func bigIntComparer() cmp.Option {
	return cmp.Comparer(func(a, b *big.Int) bool {
		return a.Cmp(b) == 0
	})
}

func TestUniformIn_Bounds(t *testing.T) {
	lo := big.NewInt(-5)
	hi := big.NewInt(5)

	r, err := UniformIn(rand.Reader, lo, hi, 64)
	assert.NoError(t, err)
	assert.Len(t, r.Coeffs, 64)

	for _, c := range r.Coeffs {
		assert.True(t, c.Cmp(lo) >= 0)
		assert.True(t, c.Cmp(hi) <= 0)
	}
}

func TestUniformIn_RejectsInvertedRange(t *testing.T) {
	_, err := UniformIn(rand.Reader, big.NewInt(5), big.NewInt(-5), 4)
	assert.Error(t, err)
}

func TestParams_Round_Threshold(t *testing.T) {
	p := Preset3329()
	// ceil(Q/2) = 1665, threshold = 1665/2 = 832 (floor).
	threshold := int64(832)

	r := NewRingElement(data.Vector{
		big.NewInt(threshold),     // not > threshold -> 0
		big.NewInt(threshold + 1), // > threshold -> 1
		big.NewInt(-(threshold + 1)),
		big.NewInt(0),
	})

	rounded := p.Round(r)
	want := data.Vector{big.NewInt(0), big.NewInt(1), big.NewInt(1), big.NewInt(0)}

	if diff := cmp.Diff(want, rounded.Coeffs, bigIntComparer()); diff != "" {
		t.Errorf("Round() mismatch (-want +got):\n%s", diff)
	}
}

func TestParams_ModCoeffs_Idempotent(t *testing.T) {
	p := Preset3329()
	r := NewRingElement(data.Vector{big.NewInt(5000), big.NewInt(-5000), big.NewInt(0)})

	once := p.ModCoeffs(r)
	twice := p.ModCoeffs(once)

	if diff := cmp.Diff(once.Coeffs, twice.Coeffs, bigIntComparer()); diff != "" {
		t.Errorf("ModCoeffs should be idempotent (-once +twice):\n%s", diff)
	}
}

func TestParams_Mul_ReducesModXNPlus1(t *testing.T) {
	p := &Params{N: 3, Q: big.NewInt(97), B: big.NewInt(1)}
	a := NewRingElement(data.Vector{big.NewInt(0), big.NewInt(1), big.NewInt(2)})
	b := NewRingElement(data.Vector{big.NewInt(2), big.NewInt(1), big.NewInt(0)})

	prod, err := p.Mul(a, b)
	assert.NoError(t, err)

	want := data.Vector{big.NewInt(-2), big.NewInt(2), big.NewInt(5)}
	if diff := cmp.Diff(want, prod.Coeffs, bigIntComparer()); diff != "" {
		t.Errorf("Mul() mismatch (-want +got):\n%s", diff)
	}
}

func TestParams_ToFixedVec_PadsWithZeros(t *testing.T) {
	p := &Params{N: 5, Q: big.NewInt(97), B: big.NewInt(1)}
	r := NewRingElement(data.Vector{big.NewInt(1), big.NewInt(2)})

	got := p.ToFixedVec(r)
	want := data.Vector{big.NewInt(1), big.NewInt(2), big.NewInt(0), big.NewInt(0), big.NewInt(0)}

	if diff := cmp.Diff(want, got, bigIntComparer()); diff != "" {
		t.Errorf("ToFixedVec() mismatch (-want +got):\n%s", diff)
	}
}
