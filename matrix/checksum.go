package matrix

// ChecksumMax bounds how many elements Checksum reads, so large sizes pay a
// fixed, negligible verification cost.
const ChecksumMax = 10000

// Checksum returns the sum of the first min(ChecksumMax, n²) elements in
// storage (row-major) order.
//
// This is a cheap, deterministic proxy for output correctness, NOT a full
// equality check: it only needs to agree across loop orders for the same
// inputs, proving that the orders compute the same product. A zero-size
// matrix checksums to 0.
//
// Complexity: O(min(ChecksumMax, n²)).
func (m *Dense) Checksum() int64 {
	limit := len(m.data)
	if limit > ChecksumMax {
		limit = ChecksumMax
	}

	var sum int64
	var i int
	for i = 0; i < limit; i++ {
		sum += m.data[i]
	}

	return sum
}
