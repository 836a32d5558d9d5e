package sphere

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Binary geometry codec. The encoding carries the geometry fields only:
// brightness is transient per-reconstruction state and is deliberately
// re-zeroed on decode. Layout is little-endian: magic, version, nside,
// pixel count, then the parallel arrays in order.

var codecMagic = [4]byte{'T', 'A', 'R', 'T'}

const codecVersion uint8 = 1

// MarshalBinary encodes the hemisphere geometry.
func (h *Hemisphere) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer

	buf.Write(codecMagic[:])
	buf.WriteByte(codecVersion)

	count := uint64(len(h.Pixels))
	if err := binary.Write(&buf, binary.LittleEndian, uint64(h.Nside)); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.LittleEndian, count); err != nil {
		return nil, err
	}

	indices := make([]uint64, len(h.VisibleIndices))
	for i, p := range h.VisibleIndices {
		indices[i] = uint64(p)
	}

	for _, field := range []any{indices, h.El, h.Az, h.L, h.M, h.N} {
		if err := binary.Write(&buf, binary.LittleEndian, field); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary decodes geometry produced by MarshalBinary. The
// brightness array comes back zeroed regardless of the state of the
// hemisphere that was encoded.
func (h *Hemisphere) UnmarshalBinary(data []byte) error {
	buf := bytes.NewReader(data)

	var magic [4]byte
	if _, err := io.ReadFull(buf, magic[:]); err != nil {
		return fmt.Errorf("reading hemisphere header: %w", err)
	}
	if magic != codecMagic {
		return fmt.Errorf("not hemisphere data: bad magic %q", magic[:])
	}

	version, err := buf.ReadByte()
	if err != nil {
		return fmt.Errorf("reading hemisphere version: %w", err)
	}
	if version != codecVersion {
		return fmt.Errorf("unsupported hemisphere encoding version %d", version)
	}

	var nside, count uint64
	if err := binary.Read(buf, binary.LittleEndian, &nside); err != nil {
		return fmt.Errorf("reading nside: %w", err)
	}
	if err := binary.Read(buf, binary.LittleEndian, &count); err != nil {
		return fmt.Errorf("reading pixel count: %w", err)
	}
	if !ValidNside(int(nside)) {
		return fmt.Errorf("%w: got %d", ErrInvalidNside, nside)
	}
	if count > uint64(Npix(int(nside))) {
		return fmt.Errorf("pixel count %d exceeds tessellation size for nside %d", count, nside)
	}

	indices := make([]uint64, count)
	el := make([]float64, count)
	az := make([]float64, count)
	l := make([]float64, count)
	m := make([]float64, count)
	n := make([]float64, count)

	for _, field := range []any{indices, el, az, l, m, n} {
		if err := binary.Read(buf, binary.LittleEndian, field); err != nil {
			return fmt.Errorf("reading hemisphere arrays: %w", err)
		}
	}

	h.Nside = int(nside)
	h.VisibleIndices = make([]int, count)
	for i, p := range indices {
		h.VisibleIndices[i] = int(p)
	}
	h.El = el
	h.Az = az
	h.L = l
	h.M = m
	h.N = n
	h.Pixels = make([]float64, count)

	return nil
}
