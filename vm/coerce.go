package vm

import "math"

const twoPow32 = 4294967296.0

// toUint32Bits computes the common modular-reduction step behind both
// ToInt32 and ToUint32 (ECMA-262 9.5/9.6 share everything up to the
// final reinterpretation as signed or unsigned).
func toUint32Bits(n float64) uint32 {
	if math.IsNaN(n) || math.IsInf(n, 0) || n == 0 {
		return 0
	}
	truncated := math.Trunc(n)
	m := math.Mod(truncated, twoPow32)
	if m < 0 {
		m += twoPow32
	}
	return uint32(m)
}
