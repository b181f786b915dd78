package api

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sameteraslan/minibit/pkg/capture"
	"github.com/sameteraslan/minibit/pkg/codec"
	"github.com/sameteraslan/minibit/pkg/messages"
)

// Server holds the API server state
type Server struct {
	session *capture.Session
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server
func NewServer(session *capture.Session, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		session: session,
		config:  config,
		metrics: metrics,
	}
}

// handleHealth reports service health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleEncodeTrade encodes a trade message into a frame
func (s *Server) handleEncodeTrade(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req TradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.RecordEncode(messages.MsgTypeTrade, false, 0, time.Since(start))
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}

	trade := messages.Trade{
		TsNs:  req.TsNs,
		Price: req.Price,
		Qty:   req.Qty,
	}
	if req.Symbol != nil {
		trade.Symbol = []byte(*req.Symbol)
	}
	if req.Note != nil {
		trade.Note = []byte(*req.Note)
	}

	buf := make([]byte, codec.MinFrameSize+64+len(trade.Symbol)+len(trade.Note))
	total, err := messages.EncodeTrade(buf, req.Seq, trade)
	if err != nil {
		s.metrics.RecordEncode(messages.MsgTypeTrade, false, 0, time.Since(start))
		sendError(w, "Failed to encode trade: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	s.metrics.RecordEncode(messages.MsgTypeTrade, true, total, time.Since(start))
	sendSuccess(w, EncodeResponse{
		Frame: base64.StdEncoding.EncodeToString(buf[:total]),
		Size:  total,
	})
}

// handleEncodeQuote encodes a quote message into a frame
func (s *Server) handleEncodeQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.metrics.RecordEncode(messages.MsgTypeQuote, false, 0, time.Since(start))
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}

	quote := messages.Quote{
		TsNs:  req.TsNs,
		Bid:   req.Bid,
		Ask:   req.Ask,
		Level: req.Level,
	}
	if req.Symbol != nil {
		quote.Symbol = []byte(*req.Symbol)
	}

	buf := make([]byte, codec.MinFrameSize+64+len(quote.Symbol))
	total, err := messages.EncodeQuote(buf, req.Seq, quote)
	if err != nil {
		s.metrics.RecordEncode(messages.MsgTypeQuote, false, 0, time.Since(start))
		sendError(w, "Failed to encode quote: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	s.metrics.RecordEncode(messages.MsgTypeQuote, true, total, time.Since(start))
	sendSuccess(w, EncodeResponse{
		Frame: base64.StdEncoding.EncodeToString(buf[:total]),
		Size:  total,
	})
}

// handleDecode checksum-verifies a frame and decodes its message
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	frame, ok := readFrameRequest(w, r)
	if !ok {
		s.metrics.RecordDecode(0, false, 0, time.Since(start))
		return
	}

	header, err := codec.DecodeFrameHeader(frame)
	if err != nil {
		s.metrics.RecordDecode(0, false, 0, time.Since(start))
		sendError(w, "Invalid frame header: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	resp := DecodeResponse{
		MsgType: header.MsgType,
		Seq:     header.Seq,
		BodyLen: header.Len,
	}

	switch header.MsgType {
	case messages.MsgTypeTrade:
		_, trade, err := messages.DecodeTrade(frame)
		if err != nil {
			s.metrics.RecordDecode(header.MsgType, false, 0, time.Since(start))
			sendError(w, "Failed to decode trade: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}
		t := &TradeRequest{Seq: header.Seq, TsNs: trade.TsNs, Price: trade.Price, Qty: trade.Qty}
		if trade.Symbol != nil {
			symbol := string(trade.Symbol)
			t.Symbol = &symbol
		}
		if trade.Note != nil {
			note := string(trade.Note)
			t.Note = &note
		}
		resp.Trade = t

	case messages.MsgTypeQuote:
		_, quote, err := messages.DecodeQuote(frame)
		if err != nil {
			s.metrics.RecordDecode(header.MsgType, false, 0, time.Since(start))
			sendError(w, "Failed to decode quote: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}
		q := &QuoteRequest{Seq: header.Seq, TsNs: quote.TsNs, Bid: quote.Bid, Ask: quote.Ask, Level: quote.Level}
		if quote.Symbol != nil {
			symbol := string(quote.Symbol)
			q.Symbol = &symbol
		}
		resp.Quote = q

	default:
		s.metrics.RecordDecode(header.MsgType, false, 0, time.Since(start))
		sendError(w, "Unsupported message type", http.StatusUnprocessableEntity)
		return
	}

	s.metrics.RecordDecode(header.MsgType, true, len(frame), time.Since(start))
	sendSuccess(w, resp)
}

// handleInspect reports header and checksum state without decoding
// the body.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	frame, ok := readFrameRequest(w, r)
	if !ok {
		return
	}

	dec := codec.NewFrameDecoder(frame)
	header, headerErr := dec.Header()
	verifyErr := dec.VerifyCRC32C()

	resp := InspectResponse{
		HeaderValid: headerErr == nil,
		CrcValid:    verifyErr != codec.ErrCrcMismatch && verifyErr != codec.ErrUnexpectedEOF,
	}
	if headerErr != nil {
		resp.HeaderError = headerErr.Error()
	}
	if verifyErr == nil {
		resp.Verdict = "ok"
	} else {
		resp.Verdict = verifyErr.Error()
	}
	if headerErr == nil {
		resp.MsgType = header.MsgType
		resp.Seq = header.Seq
		resp.BodyLen = header.Len
		resp.Flags = header.Flags
		resp.TotalSize = header.TotalSize()
	}

	sendSuccess(w, resp)
}

// handleCaptureRecord appends a verified frame to the capture log
func (s *Server) handleCaptureRecord(w http.ResponseWriter, r *http.Request) {
	frame, ok := readFrameRequest(w, r)
	if !ok {
		s.metrics.RecordCaptureOperation("record", false)
		return
	}

	header, err := codec.DecodeFrameHeader(frame)
	if err != nil {
		s.metrics.RecordCaptureOperation("record", false)
		sendError(w, "Invalid frame header: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	offset, err := s.session.Record(frame)
	if err != nil {
		s.metrics.RecordCaptureOperation("record", false)
		sendError(w, "Failed to record frame: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	s.metrics.RecordCaptureOperation("record", true)
	s.metrics.UpdateCaptureLogSize(s.session.Size())
	sendSuccess(w, CaptureResponse{
		SessionID: s.session.ID().String(),
		Seq:       header.Seq,
		Offset:    offset,
	})
}

// handleCaptureGet looks up a recorded frame by sequence number
func (s *Server) handleCaptureGet(w http.ResponseWriter, r *http.Request) {
	seqParam := chi.URLParam(r, "seq")
	seq, err := strconv.ParseUint(seqParam, 10, 32)
	if err != nil {
		s.metrics.RecordCaptureOperation("get", false)
		sendError(w, "Invalid sequence number", http.StatusBadRequest)
		return
	}

	frame, err := s.session.ReadSeq(uint32(seq))
	if err != nil {
		s.metrics.RecordCaptureOperation("get", false)
		if err == capture.ErrSeqNotFound {
			sendError(w, "Sequence number not found", http.StatusNotFound)
			return
		}
		sendError(w, "Failed to read frame: "+err.Error(), http.StatusInternalServerError)
		return
	}

	s.metrics.RecordCaptureOperation("get", true)
	sendSuccess(w, CaptureFrameResponse{
		Seq:    frame.Seq,
		Offset: frame.Offset,
		Frame:  base64.StdEncoding.EncodeToString(frame.Data),
	})
}

// readFrameRequest parses a FrameRequest body and base64-decodes the
// frame. It writes the error response itself and reports success.
func readFrameRequest(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	var req FrameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return nil, false
	}
	if req.Frame == "" {
		sendError(w, "Frame is required", http.StatusBadRequest)
		return nil, false
	}
	frame, err := base64.StdEncoding.DecodeString(req.Frame)
	if err != nil {
		sendError(w, "Frame must be valid base64", http.StatusBadRequest)
		return nil, false
	}
	return frame, true
}

// startMetricsUpdater periodically refreshes capture log gauges
func (s *Server) startMetricsUpdater() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		s.metrics.UpdateCaptureLogSize(s.session.Size())
	}
}
