package api

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// TradeRequest represents a trade encode request. Nil optional fields
// are left absent on the wire.
type TradeRequest struct {
	Seq    uint32  `json:"seq"`
	TsNs   uint64  `json:"ts_ns"`
	Price  int64   `json:"price"`
	Qty    uint32  `json:"qty"`
	Symbol *string `json:"symbol,omitempty"`
	Note   *string `json:"note,omitempty"`
}

// QuoteRequest represents a quote encode request
type QuoteRequest struct {
	Seq    uint32  `json:"seq"`
	TsNs   uint64  `json:"ts_ns"`
	Bid    int64   `json:"bid"`
	Ask    int64   `json:"ask"`
	Level  uint8   `json:"level"`
	Symbol *string `json:"symbol,omitempty"`
}

// EncodeResponse carries an encoded frame back to the client
type EncodeResponse struct {
	Frame string `json:"frame"` // base64-encoded frame bytes
	Size  int    `json:"size"`
}

// FrameRequest carries a frame for decoding, inspection or capture
type FrameRequest struct {
	Frame string `json:"frame"` // base64-encoded frame bytes
}

// DecodeResponse is the decoded view of a frame
type DecodeResponse struct {
	MsgType uint16        `json:"msg_type"`
	Seq     uint32        `json:"seq"`
	BodyLen uint32        `json:"body_len"`
	Trade   *TradeRequest `json:"trade,omitempty"`
	Quote   *QuoteRequest `json:"quote,omitempty"`
}

// InspectResponse reports header and checksum state without decoding
// the body. Verdict carries the combined result: checksum failures are
// reported even when the header is also broken.
type InspectResponse struct {
	HeaderValid bool   `json:"header_valid"`
	HeaderError string `json:"header_error,omitempty"`
	CrcValid    bool   `json:"crc_valid"`
	Verdict     string `json:"verdict"`
	MsgType     uint16 `json:"msg_type,omitempty"`
	Seq         uint32 `json:"seq,omitempty"`
	BodyLen     uint32 `json:"body_len,omitempty"`
	Flags       uint8  `json:"flags,omitempty"`
	TotalSize   int    `json:"total_size,omitempty"`
}

// CaptureResponse reports where a frame was recorded
type CaptureResponse struct {
	SessionID string `json:"session_id"`
	Seq       uint32 `json:"seq"`
	Offset    int64  `json:"offset"`
}

// CaptureFrameResponse returns a recorded frame
type CaptureFrameResponse struct {
	Seq    uint32 `json:"seq"`
	Offset int64  `json:"offset"`
	Frame  string `json:"frame"` // base64-encoded frame bytes
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port    int
	APIKey  string
	DataDir string
}
