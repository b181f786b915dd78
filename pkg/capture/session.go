package capture

import (
	"io"
	"path/filepath"
	"time"

	"github.com/sameteraslan/minibit/pkg/codec"
	"github.com/segmentio/ksuid"
)

// SessionConfig holds configuration for a capture session
type SessionConfig struct {
	DataDir       string        // Directory for capture files
	FsyncInterval time.Duration // Fsync interval for durability
	BufferSize    int           // Write buffer size
}

// Session ties a capture log and its sequence index together. Each
// session gets a fresh KSUID so concurrent sessions in the same data
// directory never collide.
type Session struct {
	id     ksuid.KSUID
	writer *LogWriter
	index  *SeqIndex
	config SessionConfig
}

// NewSession creates a new capture session in the configured data
// directory.
func NewSession(config SessionConfig) (*Session, error) {
	id := ksuid.New()

	writer, err := NewLogWriter(LogWriterConfig{
		FilePath:      filepath.Join(config.DataDir, id.String()+".frames"),
		FsyncInterval: config.FsyncInterval,
		BufferSize:    config.BufferSize,
	})
	if err != nil {
		return nil, err
	}

	index, err := OpenSeqIndex(filepath.Join(config.DataDir, id.String()+".idx"))
	if err != nil {
		writer.Close()
		return nil, err
	}

	return &Session{
		id:     id,
		writer: writer,
		index:  index,
		config: config,
	}, nil
}

// OpenSession reopens an existing session by id for recording or
// replay.
func OpenSession(config SessionConfig, id ksuid.KSUID) (*Session, error) {
	writer, err := NewLogWriter(LogWriterConfig{
		FilePath:      filepath.Join(config.DataDir, id.String()+".frames"),
		FsyncInterval: config.FsyncInterval,
		BufferSize:    config.BufferSize,
	})
	if err != nil {
		return nil, err
	}

	index, err := OpenSeqIndex(filepath.Join(config.DataDir, id.String()+".idx"))
	if err != nil {
		writer.Close()
		return nil, err
	}

	return &Session{
		id:     id,
		writer: writer,
		index:  index,
		config: config,
	}, nil
}

// ID returns the session identifier.
func (s *Session) ID() ksuid.KSUID {
	return s.id
}

// Record appends one verified frame to the session log and indexes it
// by sequence number. Returns the offset the frame was written at.
func (s *Session) Record(frame []byte) (int64, error) {
	header, err := codec.DecodeFrameHeader(frame)
	if err != nil {
		return 0, ErrInvalidFrame
	}

	offset, err := s.writer.Append(frame)
	if err != nil {
		return 0, err
	}

	if err := s.index.Put(header.Seq, offset); err != nil {
		return 0, err
	}
	return offset, nil
}

// ReadSeq looks up a frame by sequence number. The log writer is
// flushed first so the read sees every recorded frame.
func (s *Session) ReadSeq(seq uint32) (*Frame, error) {
	offset, err := s.index.Get(seq)
	if err != nil {
		return nil, err
	}

	if err := s.writer.Sync(); err != nil {
		return nil, err
	}

	reader, err := NewLogReader(LogReaderConfig{FilePath: s.writer.Path()})
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return reader.ReadAt(offset)
}

// Replay streams every frame in the session log in write order,
// calling fn for each. Replay stops early when fn returns an error.
func (s *Session) Replay(fn func(*Frame) error) error {
	if err := s.writer.Sync(); err != nil {
		return err
	}

	reader, err := NewLogReader(LogReaderConfig{FilePath: s.writer.Path()})
	if err != nil {
		return err
	}
	defer reader.Close()

	for {
		frame, err := reader.ReadNext()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(frame); err != nil {
			return err
		}
	}
}

// Size returns the current capture log size in bytes.
func (s *Session) Size() int64 {
	return s.writer.Size()
}

// Close flushes and closes the session log and index.
func (s *Session) Close() error {
	werr := s.writer.Close()
	ierr := s.index.Close()
	if werr != nil {
		return werr
	}
	return ierr
}
