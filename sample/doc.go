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

// Package sample includes samplers for sampling random values
// from the integer intervals the ring-LWE scheme needs.
//
// Package sample provides the Sampler interface along with
// implementations of it: Uniform/UniformRange for a half-open
// interval, Symmetric for the inclusive centred interval
// [-bound, bound] (the shape key generation and encryption draw their
// ring elements from), and Bit for a single coin flip.
//
// Implementations of the Sampler interface can be used to fill a
// data.Vector with random coefficients via data.NewRandomVector.
package sample
