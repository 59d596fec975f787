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
	"encoding/binary"
	"math/big"

	"github.com/AlvinHon/ring-lwe-encryption/data"
	"github.com/AlvinHon/ring-lwe-encryption/internal"
)

// Serialize encodes ek as a single length-prefixed sequence of 2*p.N
// coefficients: a‖t, each half padded to N coefficients.
func (ek EncryptKey) Serialize() []byte {
	p := ek.params
	combined := append(p.ToFixedVec(ek.A), p.ToFixedVec(ek.T)...)
	return encodeVector(combined)
}

// DeserializeEncryptKey decodes an EncryptKey previously produced by
// Serialize, validating it against p. It returns
// *internal.LengthMismatchError if the encoded coefficient count does
// not equal 2*p.N.
func DeserializeEncryptKey(p *Params, b []byte) (EncryptKey, error) {
	combined, err := decodeVector(b, 2*p.N)
	if err != nil {
		return EncryptKey{}, err
	}

	return EncryptKey{
		params: p,
		A:      RingElement{Coeffs: combined[:p.N]},
		T:      RingElement{Coeffs: combined[p.N:]},
	}, nil
}

// Serialize encodes dk as a single length-prefixed sequence of p.N
// coefficients.
func (dk DecryptKey) Serialize() []byte {
	return encodeVector(dk.params.ToFixedVec(dk.S))
}

// DeserializeDecryptKey decodes a DecryptKey previously produced by
// Serialize, validating it against p. It returns
// *internal.LengthMismatchError if the encoded coefficient count does
// not equal p.N.
func DeserializeDecryptKey(p *Params, b []byte) (DecryptKey, error) {
	s, err := decodeVector(b, p.N)
	if err != nil {
		return DecryptKey{}, err
	}

	return DecryptKey{params: p, S: RingElement{Coeffs: s}}, nil
}

// Serialize encodes c as a single length-prefixed sequence of 2*p.N
// coefficients: u‖v, each half padded to N coefficients.
func (c CipherText) Serialize(p *Params) []byte {
	combined := append(p.ToFixedVec(c.U), p.ToFixedVec(c.V)...)
	return encodeVector(combined)
}

// DeserializeCipherText decodes a CipherText previously produced by
// Serialize, validating it against p. It returns
// *internal.LengthMismatchError if the encoded coefficient count does
// not equal 2*p.N.
func DeserializeCipherText(p *Params, b []byte) (CipherText, error) {
	combined, err := decodeVector(b, 2*p.N)
	if err != nil {
		return CipherText{}, err
	}

	return CipherText{
		U: RingElement{Coeffs: combined[:p.N]},
		V: RingElement{Coeffs: combined[p.N:]},
	}, nil
}

// encodeVector writes v as a 4-byte big-endian coefficient count
// followed by that many 8-byte big-endian coefficients.
func encodeVector(v data.Vector) []byte {
	buf := make([]byte, 4+8*len(v))
	binary.BigEndian.PutUint32(buf[:4], uint32(len(v)))
	for i, c := range v {
		binary.BigEndian.PutUint64(buf[4+8*i:4+8*(i+1)], uint64(c.Int64()))
	}

	return buf
}

// decodeVector reads a vector encoded by encodeVector and checks it
// has exactly wantLen coefficients.
func decodeVector(b []byte, wantLen int) (data.Vector, error) {
	if len(b) < 4 {
		return nil, &internal.LengthMismatchError{Expected: wantLen, Actual: 0}
	}

	count := int(binary.BigEndian.Uint32(b[:4]))
	if count != wantLen || len(b) != 4+8*count {
		return nil, &internal.LengthMismatchError{Expected: wantLen, Actual: count}
	}

	v := make(data.Vector, count)
	for i := range v {
		raw := binary.BigEndian.Uint64(b[4+8*i : 4+8*(i+1)])
		v[i] = big.NewInt(int64(raw))
	}

	return v, nil
}
