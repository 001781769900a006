package rin

// IoStats is a snapshot of the traffic between a stream and its source, or
// between the console and its two ends.
type IoStats struct {
	In     int `json:"in"`
	Out    int `json:"out"`
	Reads  int `json:"reads"`
	Writes int `json:"writes"`
}

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

func (i *ioData) merge(in *ioData) {
	i.bytes += in.bytes
	i.calls += in.calls
}

func (i *ioData) getCalls() int {
	return i.calls
}

func (i *ioData) getByteCount() int {
	return i.bytes
}

func newIoData() *ioData {
	return &ioData{}
}
