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
	"github.com/AlvinHon/ring-lwe-encryption/internal"
	"github.com/AlvinHon/ring-lwe-encryption/sample"
)

// Message is a validated bit vector of length at most N, the unit of
// plaintext this scheme encrypts and decrypts.
type Message struct {
	data data.Vector
}

// NewMessage validates bits and wraps it as a Message. It returns
// internal.ErrInvalidMessage if bits is longer than n or contains any
// entry other than 0 or 1.
func NewMessage(bits data.Vector, n int) (Message, error) {
	if len(bits) > n {
		return Message{}, errors.Wrap(internal.ErrInvalidMessage, "message longer than N")
	}
	for _, b := range bits {
		if b.Cmp(big.NewInt(0)) != 0 && b.Cmp(big.NewInt(1)) != 0 {
			return Message{}, errors.Wrap(internal.ErrInvalidMessage, "message coordinate is not a bit")
		}
	}

	return Message{data: bits}, nil
}

// RandomMessage generates a fresh Message of length l (l <= n) by fair
// coin flips, reading randomness from rng.
func RandomMessage(rng io.Reader, l, n int) (Message, error) {
	if l > n {
		return Message{}, errors.Wrap(internal.ErrInvalidMessage, "requested length exceeds N")
	}

	bit := sample.NewBit(rng)
	bits, err := data.NewRandomVector(l, bit)
	if err != nil {
		return Message{}, errors.Wrap(err, "RandomMessage")
	}

	return Message{data: bits}, nil
}

// Len returns the number of bits in the message.
func (m Message) Len() int {
	return len(m.data)
}

// IsEmpty reports whether the message has zero bits.
func (m Message) IsEmpty() bool {
	return len(m.data) == 0
}

// Data returns the message's underlying bit vector (not a copy).
func (m Message) Data() data.Vector {
	return m.data
}
