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

package internal

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters is returned when a Params value fails the
// 2N*B^2 + B < Q/4 correctness bound, or carries a non-odd modulus
// or a non-positive noise bound.
var ErrInvalidParameters = errors.New("field parameters do not satisfy the noise bound 2N*B^2+B < Q/4")

// ErrInvalidMessage is returned when a message contains a coordinate
// that is not 0 or 1, or exceeds the ring degree N in length.
var ErrInvalidMessage = errors.New("message is not a bit vector of length <= N")

// LengthMismatchError is returned by deserialization when the decoded
// coefficient count does not match what the target type requires.
type LengthMismatchError struct {
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: expected %d coefficients, got %d", e.Expected, e.Actual)
}
