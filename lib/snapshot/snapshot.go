/*package snapshot writes diagnostic dumps of particle tiles. Each attribute
array is compressed independently with zstd and framed with a magic number
so stray files are caught early. Snapshots are a debugging aid, not a
checkpoint format: the owning container's restart path is elsewhere.*/
package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/DataDog/zstd"

	"github.com/GivenChen/WarpX/lib/particles"
)

const (
	// MagicNumber is an arbitrary number at the start of all snapshot
	// files which should help identify when the code is run on something
	// else by accident.
	MagicNumber = 0x0aa90770
	Version     = 1
)

const (
	blockUint64 uint32 = iota
	blockReal
	blockInt32
)

var order = binary.LittleEndian

// Write dumps every attribute array of the tile to fname.
func Write[T particles.Real](fname string, tile *particles.Tile[T]) error {
	buf := &bytes.Buffer{}

	var t T
	realWidth := uint32(binary.Size(t))
	nBlocks := uint32(8 + len(tile.RealNames()) + len(tile.IntNames()))

	for _, x := range []interface{}{
		uint32(MagicNumber), uint32(Version), realWidth,
		int64(tile.Len()), nBlocks,
	} {
		if err := binary.Write(buf, order, x); err != nil {
			return err
		}
	}

	if err := writeBlock(buf, "id", blockUint64, tile.ID()); err != nil {
		return err
	}
	core := []struct {
		name string
		data []T
	}{
		{"x", tile.X()}, {"y", tile.Y()}, {"z", tile.Z()},
		{"ux", tile.UX()}, {"uy", tile.UY()}, {"uz", tile.UZ()},
		{"w", tile.W()},
	}
	for _, c := range core {
		if err := writeBlock(buf, c.name, blockReal, c.data); err != nil {
			return err
		}
	}
	for _, name := range tile.RealNames() {
		if err := writeBlock(buf, name, blockReal, tile.RealComp(name)); err != nil {
			return err
		}
	}
	for _, name := range tile.IntNames() {
		if err := writeBlock(buf, name, blockInt32, tile.IntComp(name)); err != nil {
			return err
		}
	}

	return os.WriteFile(fname, buf.Bytes(), 0644)
}

func writeBlock(buf *bytes.Buffer, name string, kind uint32, data interface{}) error {
	raw := &bytes.Buffer{}
	if err := binary.Write(raw, order, data); err != nil {
		return err
	}
	comp, err := zstd.CompressLevel(nil, raw.Bytes(), 1)
	if err != nil {
		return err
	}

	if err := binary.Write(buf, order, uint32(len(name))); err != nil {
		return err
	}
	if _, err := buf.WriteString(name); err != nil {
		return err
	}
	for _, x := range []interface{}{ kind, uint32(len(comp)) } {
		if err := binary.Write(buf, order, x); err != nil {
			return err
		}
	}
	_, err = buf.Write(comp)
	return err
}

// Read loads a snapshot written by Write into a fresh tile. The stored
// floating-point width must match T.
func Read[T particles.Real](fname string) (*particles.Tile[T], error) {
	b, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewReader(b)

	var magic, version, realWidth, nBlocks uint32
	var np int64
	for _, x := range []interface{}{ &magic, &version, &realWidth } {
		if err := binary.Read(buf, order, x); err != nil {
			return nil, err
		}
	}
	if magic != MagicNumber {
		return nil, fmt.Errorf("%s is not a WarpX snapshot: magic number is %#x, not %#x.",
			fname, magic, MagicNumber)
	}
	if version != Version {
		return nil, fmt.Errorf("%s has snapshot version %d, but this build reads version %d.",
			fname, version, Version)
	}
	var t T
	if realWidth != uint32(binary.Size(t)) {
		return nil, fmt.Errorf("%s stores %d-byte reals, but the configured precision uses %d-byte reals.",
			fname, realWidth, binary.Size(t))
	}
	for _, x := range []interface{}{ &np, &nBlocks } {
		if err := binary.Read(buf, order, x); err != nil {
			return nil, err
		}
	}

	tile := particles.NewTile[T](int(np))
	for i := uint32(0); i < nBlocks; i++ {
		name, kind, raw, err := readBlock(buf)
		if err != nil {
			return nil, err
		}
		if err := fillArray(tile, name, kind, raw, int(np)); err != nil {
			return nil, err
		}
	}
	return tile, nil
}

func readBlock(buf *bytes.Reader) (name string, kind uint32, raw []byte, err error) {
	var nameLen uint32
	if err := binary.Read(buf, order, &nameLen); err != nil {
		return "", 0, nil, err
	}
	nameBytes := make([]byte, nameLen)
	if _, err := buf.Read(nameBytes); err != nil {
		return "", 0, nil, err
	}
	var compLen uint32
	if err := binary.Read(buf, order, &kind); err != nil {
		return "", 0, nil, err
	}
	if err := binary.Read(buf, order, &compLen); err != nil {
		return "", 0, nil, err
	}
	comp := make([]byte, compLen)
	if _, err := buf.Read(comp); err != nil {
		return "", 0, nil, err
	}
	raw, err = zstd.Decompress(nil, comp)
	return string(nameBytes), kind, raw, err
}

func fillArray[T particles.Real](tile *particles.Tile[T], name string, kind uint32, raw []byte, np int) error {
	r := bytes.NewReader(raw)
	switch kind {
	case blockUint64:
		return binary.Read(r, order, tile.ID())
	case blockInt32:
		tile.AddIntComp(name)
		return binary.Read(r, order, tile.IntComp(name))
	}

	var dst []T
	switch name {
	case "x":
		dst = tile.X()
	case "y":
		dst = tile.Y()
	case "z":
		dst = tile.Z()
	case "ux":
		dst = tile.UX()
	case "uy":
		dst = tile.UY()
	case "uz":
		dst = tile.UZ()
	case "w":
		dst = tile.W()
	default:
		tile.AddRealComp(name)
		dst = tile.RealComp(name)
	}
	return binary.Read(r, order, dst)
}
