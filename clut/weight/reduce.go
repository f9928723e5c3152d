package weight

import "math"

// Input samples are reduced to a table index before lookup. The reductions
// below follow the sample depth: 8-bit samples index a RangedBins table
// directly, deeper samples are rescaled onto the table's bin count.

// ReduceU8 returns the table index of an 8-bit sample for a RangedBins table.
func ReduceU8(v uint8) int { return int(v) }

// ReduceU16 maps a sample of bitDepth significant bits (8..16) onto a table
// of bins entries, rounding to the nearest bin. When bins is RangedBins the
// sample is shifted instead, matching the 8-bit path bit for bit.
func ReduceU16(v uint16, bitDepth, bins int) int {
	if bins == RangedBins && bitDepth >= 8 {
		return int(v >> (bitDepth - 8))
	}
	maxIn := float64(int(1)<<bitDepth - 1)
	idx := int(math.Round(float64(v) / maxIn * float64(bins-1)))
	return min(max(idx, 0), bins-1)
}

// ReduceF32 maps a normalized sample onto a table of bins entries. Inputs
// outside [0,1] and NaN clamp to the ends.
func ReduceF32(v float32, bins int) int {
	if !(v > 0) {
		return 0
	}
	idx := int(math.Round(float64(v) * float64(bins-1)))
	return min(idx, bins-1)
}

// ExpandU8 returns the index of an 8-bit sample in a table of bins entries.
// Tables of MaxBins entries use the 0x0101 byte replication of the sample.
func ExpandU8(v uint8, bins int) int {
	if bins == RangedBins {
		return int(v)
	}
	return ReduceU16(uint16(v)<<8|uint16(v), 16, bins)
}
