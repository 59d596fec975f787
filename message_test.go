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

	"github.com/stretchr/testify/assert"

	"github.com/AlvinHon/ring-lwe-encryption/data"
)

func bitVec(bits ...int64) data.Vector {
	v := make(data.Vector, len(bits))
	for i, b := range bits {
		v[i] = big.NewInt(b)
	}
	return v
}

func TestNewMessage_Valid(t *testing.T) {
	m, err := NewMessage(bitVec(0, 1, 0, 1), 256)
	assert.NoError(t, err)
	assert.Equal(t, 4, m.Len())
	assert.False(t, m.IsEmpty())
}

// TestNewMessage_RejectsNonBit is the literal scenario S5 from the spec.
func TestNewMessage_RejectsNonBit(t *testing.T) {
	_, err := NewMessage(bitVec(1, 0, 2), 256)
	assert.Error(t, err)
}

func TestNewMessage_RejectsTooLong(t *testing.T) {
	_, err := NewMessage(bitVec(0, 0, 0), 2)
	assert.Error(t, err)
}

func TestNewMessage_EmptyIsValid(t *testing.T) {
	m, err := NewMessage(bitVec(), 256)
	assert.NoError(t, err)
	assert.True(t, m.IsEmpty())
}

func TestRandomMessage_Length(t *testing.T) {
	m, err := RandomMessage(rand.Reader, 10, 256)
	assert.NoError(t, err)
	assert.Equal(t, 10, m.Len())

	for _, b := range m.Data() {
		assert.True(t, b.Cmp(big.NewInt(0)) == 0 || b.Cmp(big.NewInt(1)) == 0)
	}
}

func TestRandomMessage_RejectsTooLong(t *testing.T) {
	_, err := RandomMessage(rand.Reader, 300, 256)
	assert.Error(t, err)
}
