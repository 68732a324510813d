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

// Command gencanonical prints the canonical base icosahedron tables
// (vertices, faces, neighbors, faces by index) derived by the d20 package's base-table
// builder. It exists purely as inspection tooling: the tables it prints are
// already computed and exposed by the library at import time.
package main

import (
	"fmt"

	d20 "github.com/legalsmeagol15/delta20"
)

func main() {
	fmt.Println("CANONICAL_VERTS:")
	for id, v := range d20.CanonicalVerts {
		fmt.Printf("  %d: (%.17g, %.17g, %.17g)\n", id, v.X, v.Y, v.Z)
	}

	fmt.Println("CANONICAL_FACES:")
	for id, tri := range d20.CanonicalFaces {
		fmt.Printf("  %s: %v\n", d20.FaceIdxToString(id), tri)
	}

	fmt.Println("CANONICAL_NEIGHBORS:")
	for id, nbrs := range d20.CanonicalNeighbors {
		fmt.Printf("  %s: %v\n", d20.FaceIdxToString(id), nbrs)
	}

	fmt.Println("CANONICAL_FACES_INDEXED:")
	for idx, id := range d20.CanonicalFacesIndexed {
		fmt.Printf("  %d: %s\n", idx, d20.FaceIdxToString(id))
	}
}
