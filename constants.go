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

// Subdivision and base-geometry bounds.
const (
	// MinLOD is the coarsest level of detail: a base icosahedron face.
	MinLOD = 0
	// MaxLOD is the finest level of detail a face or vertex ID can encode.
	MaxLOD = 22
	// PathDigits is the number of base-4 digit slots in a 46-bit path.
	// LODs 1..MaxLOD use the first MaxLOD of them; the last slot is unused.
	PathDigits = 23
	// NumD20Faces is the number of triangular faces on the base icosahedron.
	NumD20Faces = 20
	// NumRawVerts is the number of vertices on the base icosahedron.
	NumRawVerts = 12
)

// Bit layout of a packed FaceIdx: lod(5) | d20(5) | path(46) | flags(8).
const (
	FaceLODOffset  = 59
	FaceD20Offset  = 54
	FacePathOffset = 8

	FaceLODMask  = uint64(0b11111) << FaceLODOffset
	FaceD20Mask  = uint64(0b11111) << FaceD20Offset
	FacePathMask = uint64((1<<46)-1) << FacePathOffset
	FaceFlagMask = uint64(0xFF)
	FaceSouthBit = uint64(0b1)

	MaxPathBits = 46
)

// Bit layout of a packed VertexIdx: lod(5) | d20(5) | index(54, low 51 semantic).
const (
	VertexLODOffset = 59
	VertexD20Offset = 54

	VertexLODMask   = uint64(0b11111) << VertexLODOffset
	VertexD20Mask   = uint64(0b11111) << VertexD20Offset
	VertexIndexMask = uint64(1)<<54 - 1

	// VertexSentinelD20 marks a vertex ID whose d20 field does not
	// identify an owning base face (e.g. a raw icosahedron vertex).
	VertexSentinelD20 = 0b11111

	MaxVertexIndexBits = 51

	// baseVertexD20 is the d20 value the canonical builder uses when
	// packing the 12 un-owned base vertices.
	baseVertexD20 = 0
)

// geometryEpsilon bounds floating point noise when asserting the raw
// icosahedron's CCW and apex invariants.
const geometryEpsilon = 1e-9

// directionEpsilon is how close a dot product may get to +-1 before two
// points are considered identical or antipodal.
const directionEpsilon = 1e-15
