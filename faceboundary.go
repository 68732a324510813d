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

// MaxFaceBoundaryVerts is the number of vertices in a face boundary: every
// triangle in this mesh has exactly three.
const MaxFaceBoundaryVerts = 3

// GeoBoundary is a face boundary in latitude/longitude, vertices in CCW
// order as viewed from outside the sphere.
type GeoBoundary struct {
	NumVerts int
	Verts    [MaxFaceBoundaryVerts]GeoCoord
}

// FaceBoundary returns the lat/lon boundary of a base (LOD 0) face.
// Subdivided faces have no independently embedded geometry of their own;
// arithmetic on coordinates beyond the canonical base tables is out of
// scope for this package.
func FaceBoundary(id FaceIdx) (GeoBoundary, error) {
	lod, _, _, _ := UnpackFaceIdx(id)
	if lod != 0 {
		return GeoBoundary{}, fmt.Errorf("%w: face boundary is only defined at lod 0, got %d", ErrFieldOutOfRange, lod)
	}
	tri, ok := CanonicalFaces[id]
	if !ok {
		return GeoBoundary{}, fmt.Errorf("%w: %d is not a canonical base face", ErrFieldOutOfRange, id)
	}

	var gb GeoBoundary
	gb.NumVerts = len(tri)
	for i, vid := range tri {
		gb.Verts[i] = VectorToGeoCoord(CanonicalVerts[vid])
	}
	return gb, nil
}
