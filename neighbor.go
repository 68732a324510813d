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

// nbrChars is the local step rule: given a triangle's polarity, its position
// within its parent, the edge being crossed, and whether the neighbor
// shares its polarity, return the neighbor's polarity, its position, and
// the edge it would cross to return. It excludes the center-child case,
// which find_neighbor handles directly.
func nbrChars(isSouth bool, pos, edge int, copolar bool) (nbrIsSouth bool, nbrPos, returnEdge int) {
	switch edge {
	case 0:
		nbrPos = 1
		if pos == 1 {
			nbrPos = 2
		}
		return !isSouth, nbrPos, 0
	case 1:
		if copolar {
			nbrPos = 1
			if pos == 0 {
				nbrPos = 0
			}
			return isSouth, nbrPos, 2
		}
		nbrPos = 0
		if pos == 0 {
			nbrPos = 2
		}
		return !isSouth, nbrPos, 1
	case 2:
		if copolar {
			nbrPos = 2
			if pos == 0 {
				nbrPos = 0
			}
			return isSouth, nbrPos, 1
		}
		nbrPos = 0
		if pos == 0 {
			nbrPos = 1
		}
		return !isSouth, nbrPos, 2
	}
	return isSouth, pos, edge
}

// baseNeighbor looks up the base face across edge of base face d20, and
// that neighbor's stored polarity.
func baseNeighbor(d20, edge int) (nbrD20 int, nbrIsSouth bool) {
	nbrFace := CanonicalNeighbors[CanonicalFacesIndexed[d20]][edge]
	_, nD20, _, nSouth := UnpackFaceIdx(nbrFace)
	return nD20, nSouth
}

// FindNeighbor returns the triangle across the given edge of id, and the
// edge that triangle would cross to return to id. It is an involution:
// FindNeighbor(FindNeighbor(f, e)) == (f, e). The returned triangle always
// has the same LOD as the input.
func FindNeighbor(id FaceIdx, edge int) (FaceIdx, int, error) {
	if edge < 0 || edge > 2 {
		return 0, 0, fmt.Errorf("%w: edge %d not in {0,1,2}", ErrEdgeOutOfRange, edge)
	}
	origLOD, origD20, origPath, isSouth := UnpackFaceIdx(id)
	if origLOD < MinLOD || origLOD > MaxLOD {
		return 0, 0, fmt.Errorf("%w: lod %d not in [%d,%d]", ErrEdgeOutOfRange, origLOD, MinLOD, MaxLOD)
	}

	if origLOD == 0 {
		nbrD20, nbrIsSouth := baseNeighbor(origD20, edge)
		_, _, returnEdge := nbrChars(isSouth, 0, edge, isSouth == nbrIsSouth)
		south := nbrIsSouth
		nbr, err := PackFaceIdx(0, nbrD20, 0, &south)
		return nbr, returnEdge, err
	}

	lod := origLOD
	d20 := origD20
	path := origPath >> uint((PathDigits-origLOD)*2)

	var nbrIsSouth bool
	var nbrPos, returnEdge int
	var pos int
	pathRev := uint64(0)

	for lod > 0 {
		pos = int(path & 0b11)
		path >>= 2
		pathRev = (pathRev << 2) | uint64(pos)

		if pos == 3 {
			nbrIsSouth, nbrPos, returnEdge = !isSouth, edge, edge
			break
		} else if pos == edge {
			nbrIsSouth, nbrPos, returnEdge = !isSouth, 3, edge
			break
		}
		lod--
	}

	nbrD20 := d20
	if lod == 0 {
		var baseSouth bool
		nbrD20, baseSouth = baseNeighbor(d20, edge)
		nbrIsSouth = baseSouth
		_, nbrPos, returnEdge = nbrChars(isSouth, pos, edge, nbrIsSouth == isSouth)
		lod = 1
	}

	nbrPath := path
	for lod <= origLOD {
		lod++
		nbrPath = (nbrPath << 2) | uint64(nbrPos)
		pathRev >>= 2
		pos = int(pathRev & 0b11)
		_, nbrPos, _ = nbrChars(isSouth, pos, edge, nbrIsSouth == isSouth)
	}

	nbrPath <<= uint((PathDigits - origLOD) * 2)
	south := nbrIsSouth
	nbr, err := PackFaceIdx(origLOD, nbrD20, nbrPath, &south)
	return nbr, returnEdge, err
}
