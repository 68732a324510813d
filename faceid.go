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

import (
	"fmt"
	"strconv"
)

// FaceIdx is a packed 64-bit identifier for a triangle at any level of
// detail in the mesh: lod(5) | d20(5) | path(46) | flags(8), MSB to LSB.
type FaceIdx uint64

// PackFaceIdx validates lod, d20 and path and packs them into a FaceIdx. If
// isSouth is nil, the polarity is derived from the base face's polarity and
// the count of center-child digits in the lod-prefix of path.
func PackFaceIdx(lod, d20 int, path uint64, isSouth *bool) (FaceIdx, error) {
	if lod < MinLOD || lod > MaxLOD {
		return 0, fmt.Errorf("%w: lod %d not in [%d,%d]", ErrFieldOutOfRange, lod, MinLOD, MaxLOD)
	}
	if d20 < 0 || d20 >= NumD20Faces {
		return 0, fmt.Errorf("%w: d20 %d not in [0,%d]", ErrFieldOutOfRange, d20, NumD20Faces-1)
	}
	if path >= uint64(1)<<MaxPathBits {
		return 0, fmt.Errorf("%w: path %d does not fit in %d bits", ErrFieldOutOfRange, path, MaxPathBits)
	}

	south := false
	if isSouth != nil {
		south = *isSouth
	} else {
		south = autoPolarity(d20, path, lod)
	}

	id := uint64(lod)<<FaceLODOffset |
		uint64(d20)<<FaceD20Offset |
		path<<FacePathOffset
	if south {
		id |= FaceSouthBit
	}
	return FaceIdx(id), nil
}

// autoPolarity derives is_south from the base face's stored polarity and
// the parity of center-child (digit 3) descents in the lod-prefix of path.
func autoPolarity(d20 int, path uint64, lod int) bool {
	south := BasePolarity(d20)
	p := path >> uint((PathDigits-lod)*2)
	for l := lod; l > 0; l-- {
		if p&0b11 == 0b11 {
			south = !south
		}
		p >>= 2
	}
	return south
}

// UnpackFaceIdx splits a FaceIdx back into its fields.
func UnpackFaceIdx(id FaceIdx) (lod, d20 int, path uint64, isSouth bool) {
	u := uint64(id)
	lod = int((u & FaceLODMask) >> FaceLODOffset)
	d20 = int((u & FaceD20Mask) >> FaceD20Offset)
	path = (u & FacePathMask) >> FacePathOffset
	isSouth = u&FaceSouthBit != 0
	return lod, d20, path, isSouth
}

// GetPos returns the position digit (0..3) at LOD lod within the given
// left-aligned 46-bit path. LOD is 1-indexed here since LOD 0 has no digit
// of its own.
func GetPos(path uint64, lod int) int {
	return int((path >> uint(2*(PathDigits-lod))) & 0b11)
}

// BuildPath assembles a left-aligned 46-bit path from a sequence of base-4
// digits; digits beyond the given sequence are zero.
func BuildPath(digits ...int) (uint64, error) {
	if len(digits) > PathDigits {
		return 0, fmt.Errorf("%w: %d digits exceeds the %d available LODs", ErrFieldOutOfRange, len(digits), PathDigits)
	}
	var result uint64
	for _, d := range digits {
		if d < 0 || d > 3 {
			return 0, fmt.Errorf("%w: path digit %d not in [0,3]", ErrFieldOutOfRange, d)
		}
		result = (result << 2) | uint64(d)
	}
	result <<= uint((PathDigits - len(digits)) * 2)
	return result, nil
}

// BuildPathFromRoute is the single-integer convenience form of BuildPath: a
// decimal integer whose digits spell the route, e.g. 1203 for (1,2,0,3).
// Values 0..3 are treated as a single digit.
func BuildPathFromRoute(route int) (uint64, error) {
	if route < 0 {
		return 0, fmt.Errorf("%w: route %d is negative", ErrFieldOutOfRange, route)
	}
	return BuildPathFromString(strconv.Itoa(route))
}

// BuildPathFromString is the string convenience form of BuildPath: each
// character must be a digit in 0..3.
func BuildPathFromString(route string) (uint64, error) {
	digits := make([]int, 0, len(route))
	for _, r := range route {
		d := int(r - '0')
		if d < 0 || d > 3 {
			return 0, fmt.Errorf("%w: route character %q is not a digit in [0,3]", ErrFieldOutOfRange, r)
		}
		digits = append(digits, d)
	}
	return BuildPath(digits...)
}

// FaceIdxToString formats a FaceIdx as "lod=L, d20=D, path=<digits>, flags=<bit>".
func FaceIdxToString(id FaceIdx) string {
	lod, d20, path, isSouth := UnpackFaceIdx(id)
	digits := make([]byte, lod)
	for l := 0; l < lod; l++ {
		digits[l] = byte('0' + GetPos(path, l+1))
	}
	flag := 0
	if isSouth {
		flag = 1
	}
	return fmt.Sprintf("lod=%d, d20=%d, path=%s, flags=0b%d", lod, d20, string(digits), flag)
}
