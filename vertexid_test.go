package d20

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpackVertexIdxRoundTrip(t *testing.T) {
	id, err := PackVertexIdx(5, 3, 12345)
	require.NoError(t, err)

	lod, d20, index := UnpackVertexIdx(id)
	require.Equal(t, 5, lod)
	require.Equal(t, 3, d20)
	require.Equal(t, uint64(12345), index)
}

func TestPackVertexIdxAcceptsSentinelD20(t *testing.T) {
	id, err := PackVertexIdx(0, VertexSentinelD20, 7)
	require.NoError(t, err)

	_, d20, index := UnpackVertexIdx(id)
	require.Equal(t, VertexSentinelD20, d20)
	require.Equal(t, uint64(7), index)
}

func TestPackVertexIdxFieldRanges(t *testing.T) {
	_, err := PackVertexIdx(MinLOD-1, 0, 0)
	require.ErrorIs(t, err, ErrFieldOutOfRange)

	_, err = PackVertexIdx(MaxLOD+1, 0, 0)
	require.ErrorIs(t, err, ErrFieldOutOfRange)

	_, err = PackVertexIdx(0, NumD20Faces, 0)
	require.ErrorIs(t, err, ErrFieldOutOfRange)

	_, err = PackVertexIdx(0, 0, uint64(1)<<MaxVertexIndexBits)
	require.ErrorIs(t, err, ErrFieldOutOfRange)
}

func TestBaseVerticesUseZeroD20(t *testing.T) {
	for id := range CanonicalVerts {
		lod, d20, index := UnpackVertexIdx(id)
		require.Equal(t, 0, lod)
		require.Equal(t, baseVertexD20, d20)
		require.Less(t, index, uint64(NumRawVerts))
	}
}
