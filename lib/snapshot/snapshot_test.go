package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GivenChen/WarpX/lib/particles"
)

func testTile(n int) *particles.Tile[float64] {
	tile := particles.NewTile[float64](0)
	tile.AddRealComp("phi")
	tile.AddIntComp("cpu")
	for i := 0; i < n; i++ {
		f := float64(i)
		tile.Append(uint64(i), f, -f, 2*f, f*1e4, 0, -f*1e4, 1)
		tile.RealComp("phi")[i] = 0.5 * f
		tile.IntComp("cpu")[i] = int32(i % 3)
	}
	return tile
}

func TestRoundTrip(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "tile.wxs")
	tile := testTile(1000)

	require.NoError(t, Write(fname, tile))

	got, err := Read[float64](fname)
	require.NoError(t, err)

	assert.Equal(t, tile.Len(), got.Len())
	assert.Equal(t, tile.ID(), got.ID())
	assert.Equal(t, tile.X(), got.X())
	assert.Equal(t, tile.Y(), got.Y())
	assert.Equal(t, tile.Z(), got.Z())
	assert.Equal(t, tile.UX(), got.UX())
	assert.Equal(t, tile.UY(), got.UY())
	assert.Equal(t, tile.UZ(), got.UZ())
	assert.Equal(t, tile.W(), got.W())

	assert.Equal(t, tile.RealNames(), got.RealNames())
	assert.Equal(t, tile.IntNames(), got.IntNames())
	assert.Equal(t, tile.RealComp("phi"), got.RealComp("phi"))
	assert.Equal(t, tile.IntComp("cpu"), got.IntComp("cpu"))
}

func TestRoundTripEmpty(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "empty.wxs")
	tile := particles.NewTile[float64](0)

	require.NoError(t, Write(fname, tile))
	got, err := Read[float64](fname)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}

func TestRoundTripSingle(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "single.wxs")
	tile := particles.NewTile[float32](0)
	tile.Append(7, 1, 2, 3, 4, 5, 6, 0.5)

	require.NoError(t, Write(fname, tile))
	got, err := Read[float32](fname)
	require.NoError(t, err)
	assert.Equal(t, tile.X(), got.X())
	assert.Equal(t, tile.W(), got.W())
}

func TestReadPrecisionMismatch(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "tile.wxs")
	require.NoError(t, Write(fname, testTile(10)))

	_, err := Read[float32](fname)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reals")
}

func TestReadBadMagic(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "junk.wxs")
	require.NoError(t, os.WriteFile(fname, []byte("definitely not a snapshot"), 0644))

	_, err := Read[float64](fname)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "magic")
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read[float64](filepath.Join(t.TempDir(), "no-such.wxs"))
	assert.Error(t, err)
}
