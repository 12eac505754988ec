package stream

// WindowSize is the capacity of the capture window kept by Reader and
// Writer: the number of most-recently processed bytes available for error
// diagnostics.
const WindowSize = 32

// window is a fixed-capacity ring over the most recently pushed bytes,
// oldest evicted first.
type window struct {
	buf   [WindowSize]byte
	start int
	n     int
}

func (cw *window) push(b byte) {
	if cw.n < len(cw.buf) {
		cw.buf[(cw.start+cw.n)%len(cw.buf)] = b
		cw.n++
		return
	}
	cw.buf[cw.start] = b
	cw.start = (cw.start + 1) % len(cw.buf)
}

// snapshot returns the window contents oldest-first as a fresh slice.
func (cw *window) snapshot() []byte {
	out := make([]byte, cw.n)
	for i := 0; i < cw.n; i++ {
		out[i] = cw.buf[(cw.start+i)%len(cw.buf)]
	}
	return out
}
