package d20

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpackFaceIdxRoundTrip(t *testing.T) {
	south := true
	path, err := BuildPath(1, 2, 3, 0)
	require.NoError(t, err)

	id, err := PackFaceIdx(4, 7, path, &south)
	require.NoError(t, err)

	lod, d20, gotPath, isSouth := UnpackFaceIdx(id)
	require.Equal(t, 4, lod)
	require.Equal(t, 7, d20)
	require.Equal(t, path, gotPath)
	require.True(t, isSouth)
}

func TestPackFaceIdxFieldRanges(t *testing.T) {
	south := false

	_, err := PackFaceIdx(MinLOD-1, 0, 0, &south)
	require.ErrorIs(t, err, ErrFieldOutOfRange)

	_, err = PackFaceIdx(MaxLOD+1, 0, 0, &south)
	require.ErrorIs(t, err, ErrFieldOutOfRange)

	_, err = PackFaceIdx(0, -1, 0, &south)
	require.ErrorIs(t, err, ErrFieldOutOfRange)

	_, err = PackFaceIdx(0, NumD20Faces, 0, &south)
	require.ErrorIs(t, err, ErrFieldOutOfRange)

	_, err = PackFaceIdx(0, 0, uint64(1)<<MaxPathBits, &south)
	require.ErrorIs(t, err, ErrFieldOutOfRange)
}

func TestAutoPolarityMatchesBaseWhenNoCenterDigits(t *testing.T) {
	path, err := BuildPath(0, 1, 2)
	require.NoError(t, err)

	id, err := PackFaceIdx(3, 0, path, nil)
	require.NoError(t, err)

	_, _, _, isSouth := UnpackFaceIdx(id)
	require.Equal(t, BasePolarity(0), isSouth)
}

func TestAutoPolarityFlipsOnEachCenterDigit(t *testing.T) {
	path1, err := BuildPath(3)
	require.NoError(t, err)
	id1, err := PackFaceIdx(1, 2, path1, nil)
	require.NoError(t, err)
	_, _, _, south1 := UnpackFaceIdx(id1)
	require.Equal(t, !BasePolarity(2), south1)

	path2, err := BuildPath(3, 3)
	require.NoError(t, err)
	id2, err := PackFaceIdx(2, 2, path2, nil)
	require.NoError(t, err)
	_, _, _, south2 := UnpackFaceIdx(id2)
	require.Equal(t, BasePolarity(2), south2)
}

func TestGetPos(t *testing.T) {
	path, err := BuildPath(1, 2, 3)
	require.NoError(t, err)

	require.Equal(t, 1, GetPos(path, 1))
	require.Equal(t, 2, GetPos(path, 2))
	require.Equal(t, 3, GetPos(path, 3))
	require.Equal(t, 0, GetPos(path, 4))
}

func TestBuildPathRejectsBadDigits(t *testing.T) {
	_, err := BuildPath(0, 4, 0)
	require.ErrorIs(t, err, ErrFieldOutOfRange)

	tooMany := make([]int, PathDigits+1)
	_, err = BuildPath(tooMany...)
	require.ErrorIs(t, err, ErrFieldOutOfRange)
}

func TestBuildPathFromStringAndRoute(t *testing.T) {
	fromDigits, err := BuildPath(1, 2, 0, 3)
	require.NoError(t, err)

	fromString, err := BuildPathFromString("1203")
	require.NoError(t, err)
	require.Equal(t, fromDigits, fromString)

	fromRoute, err := BuildPathFromRoute(1203)
	require.NoError(t, err)
	require.Equal(t, fromDigits, fromRoute)

	_, err = BuildPathFromRoute(-1)
	require.ErrorIs(t, err, ErrFieldOutOfRange)

	_, err = BuildPathFromString("129")
	require.ErrorIs(t, err, ErrFieldOutOfRange)
}

func TestFaceIdxToStringPathLengthMatchesLOD(t *testing.T) {
	path, err := BuildPath(2, 1, 3)
	require.NoError(t, err)
	south := false

	id, err := PackFaceIdx(3, 5, path, &south)
	require.NoError(t, err)

	s := FaceIdxToString(id)
	require.Equal(t, "lod=3, d20=5, path=213, flags=0b0", s)
}

func TestFaceIdxToStringAtLODZeroHasEmptyPath(t *testing.T) {
	south := true
	id, err := PackFaceIdx(0, 9, 0, &south)
	require.NoError(t, err)

	s := FaceIdxToString(id)
	require.Equal(t, "lod=0, d20=9, path=, flags=0b1", s)
}
