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

import "fmt"

// CanonicalVerts, CanonicalFaces, CanonicalNeighbors and
// CanonicalFacesIndexed are the immutable base-geometry tables described in
// the canonical base-table builder: twelve unit vertices, twenty CCW faces
// keyed by their packed LOD-0 FaceIdx, a 20x3 neighbor table keyed the same
// way, and a lookup from base-face number to its packed FaceIdx. They are
// built once, here, from the raw un-normalized geometry in rawgeometry.go.
var (
	CanonicalVerts        map[VertexIdx]Vec3
	CanonicalFaces        map[FaceIdx][3]VertexIdx
	CanonicalNeighbors    map[FaceIdx][3]FaceIdx
	CanonicalFacesIndexed [NumD20Faces]FaceIdx
)

func init() {
	CanonicalVerts, CanonicalFaces, CanonicalNeighbors, CanonicalFacesIndexed = buildCanonical()
}

// BasePolarity reports the stored is_south flag of base face d20.
func BasePolarity(d20 int) bool {
	return uint64(CanonicalFacesIndexed[d20])&FaceSouthBit != 0
}

func isCCW(apex, v1, v2 Vec3) bool {
	cross := v1.Sub(apex).Cross(v2.Sub(apex))
	centroid := apex.Add(v1).Add(v2)
	return cross.Dot(centroid) > 0
}

// buildCanonical runs the base-table builder procedure once: normalize,
// assert CCW and apex invariants, compute polarity, pack LOD-0 face IDs,
// and derive the neighbor table by reversing each directed edge.
func buildCanonical() (
	verts map[VertexIdx]Vec3,
	faces map[FaceIdx][3]VertexIdx,
	neighbors map[FaceIdx][3]FaceIdx,
	facesIndexed [NumD20Faces]FaceIdx,
) {
	verts = make(map[VertexIdx]Vec3, NumRawVerts)
	vertToID := make([]VertexIdx, NumRawVerts)
	for i, raw := range rawVertices {
		id, err := PackVertexIdx(0, baseVertexD20, uint64(i))
		if err != nil {
			panic(fmt.Sprintf("d20: packing base vertex %d: %v", i, err))
		}
		vertToID[i] = id
		verts[id] = raw.Normalize()
	}

	faces = make(map[FaceIdx][3]VertexIdx, NumD20Faces)
	for d20, tri := range rawFaces {
		apexID, v1ID, v2ID := vertToID[tri[0]], vertToID[tri[1]], vertToID[tri[2]]
		apex, v1, v2 := verts[apexID], verts[v1ID], verts[v2ID]

		if !isCCW(apex, v1, v2) {
			panic(fmt.Sprintf("d20: base face %d is not CCW", d20))
		}
		if abs(v1.Y-v2.Y) > geometryEpsilon {
			panic(fmt.Sprintf("d20: base face %d violates the apex invariant", d20))
		}

		south := apex.Y < v1.Y
		id, err := PackFaceIdx(0, d20, 0, &south)
		if err != nil {
			panic(fmt.Sprintf("d20: packing base face %d: %v", d20, err))
		}
		faces[id] = [3]VertexIdx{apexID, v1ID, v2ID}
		facesIndexed[d20] = id
	}

	// Edge k of a face is opposite vertex k; the neighbor across edge k is
	// the face owning the reversed directed edge.
	edgeOwner := make(map[[2]int]int, NumD20Faces*3)
	for d20, tri := range rawFaces {
		edgeOwner[[2]int{tri[0], tri[1]}] = d20
		edgeOwner[[2]int{tri[1], tri[2]}] = d20
		edgeOwner[[2]int{tri[2], tri[0]}] = d20
	}

	neighbors = make(map[FaceIdx][3]FaceIdx, NumD20Faces)
	for d20, tri := range rawFaces {
		n0 := edgeOwner[[2]int{tri[2], tri[1]}]
		n1 := edgeOwner[[2]int{tri[0], tri[2]}]
		n2 := edgeOwner[[2]int{tri[1], tri[0]}]
		neighbors[facesIndexed[d20]] = [3]FaceIdx{
			facesIndexed[n0], facesIndexed[n1], facesIndexed[n2],
		}
	}

	return verts, faces, neighbors, facesIndexed
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
