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

package rlwe_test

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	rlwe "github.com/AlvinHon/ring-lwe-encryption"
	"github.com/AlvinHon/ring-lwe-encryption/data"
)

func assertDecodesTo(t *testing.T, n int, decoded data.Vector, want ...int64) {
	t.Helper()
	assert.Equal(t, n, len(decoded))
	for i := 0; i < len(want); i++ {
		assert.Equal(t, big.NewInt(want[i]), decoded[i], "bit %d", i)
	}
	for i := len(want); i < n; i++ {
		assert.Equal(t, big.NewInt(0), decoded[i], "padding bit %d", i)
	}
}

// TestRoundTrip_Preset is the literal scenario S3 from the spec:
// with the 3329/1/256 preset, encrypting then decrypting [0,1,0,1]
// recovers those four bits followed by zeros.
func TestRoundTrip_Preset(t *testing.T) {
	p := rlwe.Preset3329()

	ek, dk, err := p.KeyGen(rand.Reader)
	assert.NoError(t, err)

	m, err := rlwe.NewMessage(data.Vector{big.NewInt(0), big.NewInt(1), big.NewInt(0), big.NewInt(1)}, p.N)
	assert.NoError(t, err)

	c, err := ek.Encrypt(rand.Reader, m)
	assert.NoError(t, err)

	decoded := dk.Decrypt(c)
	assertDecodesTo(t, p.N, decoded, 0, 1, 0, 1)
}

// TestRoundTrip_S4 is the literal scenario S4 from the spec: Q =
// 8383489, B = 16, N = 512 satisfies Valid(), and encrypting then
// decrypting [1,0,0,1] recovers those bits followed by 508 zeros.
func TestRoundTrip_S4(t *testing.T) {
	p, err := rlwe.NewParams(512, big.NewInt(8383489), big.NewInt(16))
	assert.NoError(t, err)

	ek, dk, err := p.KeyGen(rand.Reader)
	assert.NoError(t, err)

	m, err := rlwe.NewMessage(data.Vector{big.NewInt(1), big.NewInt(0), big.NewInt(0), big.NewInt(1)}, p.N)
	assert.NoError(t, err)

	c, err := ek.Encrypt(rand.Reader, m)
	assert.NoError(t, err)

	decoded := dk.Decrypt(c)
	assertDecodesTo(t, p.N, decoded, 1, 0, 0, 1)
}

func TestRoundTrip_EmptyMessage(t *testing.T) {
	p := rlwe.Preset3329()
	ek, dk, err := p.KeyGen(rand.Reader)
	assert.NoError(t, err)

	m, err := rlwe.NewMessage(data.Vector{}, p.N)
	assert.NoError(t, err)

	c, err := ek.Encrypt(rand.Reader, m)
	assert.NoError(t, err)

	decoded := dk.Decrypt(c)
	assertDecodesTo(t, p.N, decoded)
}

func TestRoundTrip_FullLengthMessage(t *testing.T) {
	p := rlwe.Preset3329()
	ek, dk, err := p.KeyGen(rand.Reader)
	assert.NoError(t, err)

	m, err := rlwe.RandomMessage(rand.Reader, p.N, p.N)
	assert.NoError(t, err)

	c, err := ek.Encrypt(rand.Reader, m)
	assert.NoError(t, err)

	decoded := dk.Decrypt(c)
	assert.Equal(t, p.N, len(decoded))
	for i, b := range m.Data() {
		assert.Equal(t, b.Int64(), decoded[i].Int64(), "bit %d", i)
	}
}

func TestRoundTrip_ManySeeds(t *testing.T) {
	p := rlwe.Preset3329()

	for trial := 0; trial < 20; trial++ {
		ek, dk, err := p.KeyGen(rand.Reader)
		assert.NoError(t, err)

		m, err := rlwe.RandomMessage(rand.Reader, 16, p.N)
		assert.NoError(t, err)

		c, err := ek.Encrypt(rand.Reader, m)
		assert.NoError(t, err)

		decoded := dk.Decrypt(c)
		for i, b := range m.Data() {
			assert.Equal(t, b.Int64(), decoded[i].Int64(), "trial %d bit %d", trial, i)
		}
		for i := 16; i < p.N; i++ {
			assert.Equal(t, big.NewInt(0), decoded[i], "trial %d padding bit %d", trial, i)
		}
	}
}
