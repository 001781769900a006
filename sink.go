package rin

import (
	"fmt"
)

type outputStream interface {
	Write(b []byte) (n int, err error)
}

// sink buffers prompt text so a program can print piecemeal without a
// syscall per fragment. The console drains it before every blocking read,
// which is what guarantees a prompt shows up before the terminal waits.
type sink struct {
	output    outputStream
	buffer    []byte
	threshold int
	tally     ioData
}

const promptThreshold = 1024 * 4

func newSink(output outputStream, writeThreshold int) *sink {
	return &sink{
		output:    output,
		threshold: writeThreshold,
		buffer:    make([]byte, 0),
	}
}

func (s *sink) write(chunks ...[]byte) {
	for _, chunk := range chunks {
		s.buffer = append(s.buffer, chunk...)
	}
}

func (s *sink) printf(format string, a ...any) {
	s.write([]byte(fmt.Sprintf(format, a...)))
}

func (s *sink) flush() (*ioData, error) {
	if s.empty() {
		return newIoData(), nil
	}
	data := newIoData()
	count, err := s.output.Write(s.buffer)
	data.add(count)
	s.tally.merge(data)
	if err != nil {
		return data, err
	}
	defer s.resetBuffer()
	return data, nil
}

func (s *sink) getBytesWritten() int {
	return s.tally.getByteCount()
}

func (s *sink) getNumberOfWrites() int {
	return s.tally.getCalls()
}

func (s *sink) full() bool {
	return len(s.buffer) >= s.threshold
}

func (s *sink) empty() bool {
	return len(s.buffer) == 0
}

func (s *sink) resetBuffer() {
	s.buffer = make([]byte, 0)
}
