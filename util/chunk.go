package util

// Chunks splits data into consecutive slices of at most size bytes. The
// returned slices alias data. A size below 1 yields the whole buffer as
// a single chunk; empty data yields no chunks.
func Chunks(data []byte, size int) [][]byte {
	if len(data) == 0 {
		return nil
	}
	if size < 1 {
		return [][]byte{data}
	}

	out := make([][]byte, 0, (len(data)+size-1)/size)
	for i := 0; i < len(data); i += size {
		end := i + size
		if end > len(data) {
			end = len(data)
		}
		out = append(out, data[i:end])
	}
	return out
}
