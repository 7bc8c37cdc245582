package fastscan

// ioData accounts for the traffic between the buffered source and the
// underlying stream: how many refill calls delivered data and how many
// bytes came in overall.
type ioData struct {
	bytes int
	calls int
}

func (i *ioData) add(bytes int) {
	i.bytes += bytes
	if bytes > 0 {
		i.calls++
	}
}

func (i *ioData) getCalls() int {
	return i.calls
}

func (i *ioData) getByteCount() int {
	return i.bytes
}
