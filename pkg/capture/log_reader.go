package capture

import (
	"bufio"
	"io"
	"os"

	"github.com/sameteraslan/minibit/pkg/codec"
)

// LogReader provides sequential access to frames in a capture file
type LogReader struct {
	file   *os.File
	reader *bufio.Reader
	offset int64
	config LogReaderConfig
}

// NewLogReader creates a new log reader for the specified file
func NewLogReader(config LogReaderConfig) (*LogReader, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, err
	}

	// Seek to start offset if specified
	if config.StartOffset > 0 {
		if _, err := file.Seek(config.StartOffset, 0); err != nil {
			file.Close()
			return nil, err
		}
	}

	return &LogReader{
		file:   file,
		reader: bufio.NewReader(file),
		offset: config.StartOffset,
		config: config,
	}, nil
}

// ReadNext reads the next frame from the current offset. Returns
// io.EOF at a clean end of file and ErrCorruption when the bytes at
// the offset do not form a verified frame.
func (r *LogReader) ReadNext() (*Frame, error) {
	frameOffset := r.offset

	// Read the fixed-size header first to learn the body length.
	header := make([]byte, codec.HeaderSize)
	n, err := io.ReadFull(r.reader, header)
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		if err == io.ErrUnexpectedEOF {
			return nil, ErrCorruption
		}
		return nil, err
	}
	r.offset += int64(n)

	parsed, err := codec.DecodeFrameHeader(header)
	if err != nil {
		return nil, ErrCorruption
	}

	// Read body and trailer, then verify the whole frame.
	rest := make([]byte, int(parsed.Len)+codec.TrailerSize)
	n, err = io.ReadFull(r.reader, rest)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrCorruption
		}
		return nil, err
	}
	r.offset += int64(n)

	data := make([]byte, parsed.TotalSize())
	copy(data, header)
	copy(data[codec.HeaderSize:], rest)

	if err := codec.NewFrameDecoder(data).VerifyCRC32C(); err != nil {
		return nil, ErrCorruption
	}

	return &Frame{
		Seq:    parsed.Seq,
		Offset: frameOffset,
		Data:   data,
	}, nil
}

// ReadAt reads a frame at a specific offset. The file is reopened so
// the read sees data flushed after this reader was created.
func (r *LogReader) ReadAt(offset int64) (*Frame, error) {
	file, err := os.Open(r.config.FilePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if _, err := file.Seek(offset, 0); err != nil {
		return nil, err
	}

	header := make([]byte, codec.HeaderSize)
	if _, err := io.ReadFull(file, header); err != nil {
		return nil, ErrCorruption
	}

	parsed, err := codec.DecodeFrameHeader(header)
	if err != nil {
		return nil, ErrCorruption
	}

	rest := make([]byte, int(parsed.Len)+codec.TrailerSize)
	if _, err := io.ReadFull(file, rest); err != nil {
		return nil, ErrCorruption
	}

	data := make([]byte, parsed.TotalSize())
	copy(data, header)
	copy(data[codec.HeaderSize:], rest)

	if err := codec.NewFrameDecoder(data).VerifyCRC32C(); err != nil {
		return nil, ErrCorruption
	}

	return &Frame{
		Seq:    parsed.Seq,
		Offset: offset,
		Data:   data,
	}, nil
}

// Seek sets the read offset
func (r *LogReader) Seek(offset int64) error {
	if _, err := r.file.Seek(offset, 0); err != nil {
		return err
	}

	r.reader = bufio.NewReader(r.file) // Recreate reader to clear buffer
	r.offset = offset
	return nil
}

// Offset returns the current read offset
func (r *LogReader) Offset() int64 {
	return r.offset
}

// Iterator returns a streaming iterator for frames
func (r *LogReader) Iterator() FrameIterator {
	return &logFrameIterator{reader: r}
}

// Close closes the log reader
func (r *LogReader) Close() error {
	return r.file.Close()
}

// logFrameIterator implements FrameIterator for streaming access
type logFrameIterator struct {
	reader *LogReader
	frame  *Frame
	err    error
}

func (it *logFrameIterator) Next() bool {
	it.frame, it.err = it.reader.ReadNext()
	return it.err == nil
}

func (it *logFrameIterator) Frame() *Frame {
	return it.frame
}

func (it *logFrameIterator) Close() error {
	// Don't close the underlying reader as it's owned by the caller
	return nil
}
