package geowords

import "math"

// The quantizer maps coordinates onto a regular grid of 2^bitPrecision cells.
// Each axis is scaled into [0, 1), truncated to its bit budget, and the two
// axis values are interleaved into a single cell index, so nearby coordinates
// usually share high-order bits (the same locality property geohash has).

// axisBits splits the total bit precision between the two axes. Longitude,
// the wider axis, receives the extra bit when the precision is odd.
func axisBits(bitPrecision int) (latBits, lonBits int) {
	latBits = bitPrecision / 2
	lonBits = bitPrecision - latBits
	return latBits, lonBits
}

// quantizeAxis maps v from [lo, hi] onto [0, 2^bits - 1]. The clamp only
// catches the exact upper boundary (v == hi scales to 2^bits); out-of-range
// inputs are rejected before quantization, never clamped.
func quantizeAxis(v, lo, hi float64, bits int) uint64 {
	norm := (v - lo) / (hi - lo)
	cells := uint64(1) << uint(bits)
	q := uint64(math.Trunc(norm * float64(cells)))
	if q >= cells {
		q = cells - 1
	}
	return q
}

// dequantizeAxis returns the midpoint of cell q on the [lo, hi] axis.
func dequantizeAxis(q uint64, lo, hi float64, bits int) float64 {
	cells := float64(uint64(1) << uint(bits))
	return lo + (float64(q)+0.5)/cells*(hi-lo)
}

// interleave merges the per-axis cell numbers bit by bit, most significant
// first, longitude bit leading. When lonBits == latBits+1 the extra
// longitude bit comes first and the remaining bits alternate.
func interleave(lat uint64, latBits int, lon uint64, lonBits int) uint64 {
	var cell uint64
	for i := lonBits - 1; i >= 0; i-- {
		cell = cell<<1 | (lon>>uint(i))&1
		if i < latBits {
			cell = cell<<1 | (lat>>uint(i))&1
		}
	}
	return cell
}

// deinterleave is the exact inverse of interleave.
func deinterleave(cell uint64, latBits, lonBits int) (lat, lon uint64) {
	pos := latBits + lonBits
	for i := lonBits - 1; i >= 0; i-- {
		pos--
		lon = lon<<1 | (cell>>uint(pos))&1
		if i < latBits {
			pos--
			lat = lat<<1 | (cell>>uint(pos))&1
		}
	}
	return lat, lon
}

// toCell quantizes a coordinate to its cell index at the given precision.
func toCell(c Coordinate, bitPrecision int) (uint64, error) {
	if err := c.validate(); err != nil {
		return 0, err
	}
	latBits, lonBits := axisBits(bitPrecision)
	lat := quantizeAxis(c.Lat, -90, 90, latBits)
	lon := quantizeAxis(c.Lon, -180, 180, lonBits)
	return interleave(lat, latBits, lon, lonBits), nil
}

// fromCell returns the center of the cell, not any original input point;
// quantization error is bounded by half the cell size on each axis.
func fromCell(cell uint64, bitPrecision int) Coordinate {
	latBits, lonBits := axisBits(bitPrecision)
	latQ, lonQ := deinterleave(cell, latBits, lonBits)
	return Coordinate{
		Lat: dequantizeAxis(latQ, -90, 90, latBits),
		Lon: dequantizeAxis(lonQ, -180, 180, lonBits),
	}
}
