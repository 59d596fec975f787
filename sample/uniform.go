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

package sample

import (
	"crypto/rand"
	"io"
	"math/big"
)

// Sampler is implemented by anything that can produce a single random
// *big.Int from some probability distribution.
type Sampler interface {
	Sample() (*big.Int, error)
}

// UniformRange samples random values from the interval [min, max),
// reading randomness from the caller-supplied source rng.
type UniformRange struct {
	rng      io.Reader
	min, max *big.Int
}

// NewUniformRange returns an instance of the UniformRange sampler.
// It accepts a randomness source and lower/upper bounds on the
// sampled values (upper bound exclusive).
func NewUniformRange(rng io.Reader, min, max *big.Int) *UniformRange {
	return &UniformRange{
		rng: rng,
		min: min,
		max: max,
	}
}

// Sample samples a random value from the interval [min, max).
func (u *UniformRange) Sample() (*big.Int, error) {
	span := new(big.Int).Sub(u.max, u.min)
	res, err := rand.Int(u.rng, span)
	if err != nil {
		return nil, err
	}

	res.Add(res, u.min)

	return res, nil
}

// Uniform samples random values from the interval [0, max).
type Uniform struct {
	UniformRange
}

// NewUniform returns an instance of the Uniform sampler. It accepts a
// randomness source and an upper bound (exclusive) on the sampled
// values.
func NewUniform(rng io.Reader, max *big.Int) *Uniform {
	return &Uniform{UniformRange: *NewUniformRange(rng, big.NewInt(0), max)}
}

// Bit samples a single random bit (value 0 or 1).
type Bit struct {
	Uniform
}

// NewBit returns an instance of the Bit sampler.
func NewBit(rng io.Reader) *Bit {
	return &Bit{Uniform: *NewUniform(rng, big.NewInt(2))}
}

// Symmetric samples random values from the inclusive interval
// [-bound, bound]. It is the sampler shape the ring-LWE scheme uses
// for both its "small" noise/secret distribution (bound = B) and its
// "large" uniform distribution (bound = floor(Q/2)).
type Symmetric struct {
	inner *UniformRange
}

// NewSymmetric returns a Symmetric sampler over [-bound, bound].
// bound must be non-negative.
func NewSymmetric(rng io.Reader, bound *big.Int) *Symmetric {
	negBound := new(big.Int).Neg(bound)
	upper := new(big.Int).Add(bound, big.NewInt(1)) // make it inclusive
	return &Symmetric{inner: NewUniformRange(rng, negBound, upper)}
}

// Sample samples a random value from [-bound, bound].
func (s *Symmetric) Sample() (*big.Int, error) {
	return s.inner.Sample()
}
