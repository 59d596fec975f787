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

// Package rlwe implements a textbook Ring-Learning-With-Errors public
// key encryption scheme over R_q = Z_q[X]/(X^N+1).
//
// A scheme instance is configured by a Params value (modulus Q, ring
// degree N and noise bound B satisfying 2N*B^2+B < Q/4). KeyGen
// derives an EncryptKey/DecryptKey pair from it; EncryptKey.Encrypt
// turns a bit-vector Message into a CipherText, and
// DecryptKey.Decrypt recovers the original bits.
//
// The scheme offers IND-CPA security under the ring-LWE assumption.
// It is not IND-CCA secure, not constant-time, and does not attempt
// ciphertext packing or homomorphic evaluation.
package rlwe
