// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package d20

// Raw, un-normalized icosahedron geometry. Consumed only by the canonical
// base-table builder in canonical.go; nothing else in this package reads
// these tables directly.
//
// Vertex 0 is the north pole, vertex 11 the south pole; 1-5 form the upper
// ring and 6-10 the lower ring, offset 36 degrees from each other. The +Y
// axis is the pole axis throughout this package.
var rawVertices = [NumRawVerts]Vec3{
	{X: 0.0, Y: 2.0, Z: 0.0},
	{X: 1.7888543819998317, Y: 0.8944271909999159, Z: 0.0},
	{X: 0.5527864045000421, Y: 0.8944271909999159, Z: 1.7013016167040798},
	{X: -1.4472135954999577, Y: 0.8944271909999159, Z: 1.0514622242382674},
	{X: -1.447213595499958, Y: 0.8944271909999159, Z: -1.051462224238267},
	{X: 0.5527864045000417, Y: 0.8944271909999159, Z: -1.70130161670408},
	{X: 1.4472135954999579, Y: -0.8944271909999159, Z: 1.0514622242382672},
	{X: -0.5527864045000419, Y: -0.8944271909999159, Z: 1.70130161670408},
	{X: -1.7888543819998317, Y: -0.8944271909999159, Z: 2.1907147930568105e-16},
	{X: -0.5527864045000422, Y: -0.8944271909999159, Z: -1.7013016167040798},
	{X: 1.4472135954999577, Y: -0.8944271909999159, Z: -1.0514622242382676},
	{X: 0.0, Y: -2.0, Z: 0.0},
}

// rawFaces lists, for each of the 20 base faces (indexed by d20), the
// vertex indices (apex, v1, v2) in CCW order as viewed from outside the
// sphere, with v1 and v2 sharing the pole-axis coordinate.
var rawFaces = [NumD20Faces][3]int{
	{0, 2, 1}, {0, 1, 5}, {0, 5, 4}, {0, 4, 3}, {0, 3, 2},
	{2, 7, 6}, {6, 1, 2}, {1, 6, 10}, {10, 5, 1}, {5, 10, 9},
	{9, 4, 5}, {4, 9, 8}, {8, 3, 4}, {3, 8, 7}, {7, 2, 3},
	{11, 6, 7}, {11, 7, 8}, {11, 8, 9}, {11, 9, 10}, {11, 10, 6},
}
