package capture

import "time"

// Frame is one captured frame together with its location in the log.
// Data holds the complete header+body+trailer bytes.
type Frame struct {
	Seq    uint32
	Offset int64
	Data   []byte
}

// LogWriterConfig holds configuration for the capture log writer
type LogWriterConfig struct {
	FilePath      string        // Path to the active capture file
	FsyncInterval time.Duration // How often to fsync (0 = every write)
	BufferSize    int           // Write buffer size
}

// LogReaderConfig holds configuration for the capture log reader
type LogReaderConfig struct {
	FilePath    string // Path to the capture file
	StartOffset int64  // Offset to start reading from
}

// FrameIterator provides streaming access to captured frames
type FrameIterator interface {
	Next() bool
	Frame() *Frame
	Close() error
}

// Errors
var (
	ErrSeqNotFound  = &CaptureError{"sequence number not found"}
	ErrCorruption   = &CaptureError{"capture log corruption detected"}
	ErrInvalidFrame = &CaptureError{"frame failed validation"}
)

// CaptureError represents a capture log error
type CaptureError struct {
	Message string
}

func (e *CaptureError) Error() string {
	return e.Message
}
