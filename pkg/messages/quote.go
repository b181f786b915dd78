package messages

import "github.com/sameteraslan/minibit/pkg/codec"

// Quote presence bitmap field indices.
const (
	QuoteFieldSymbol = 0
)

// Quote is a top-of-book or depth-level quote. Symbol is optional;
// nil means absent on the wire.
type Quote struct {
	TsNs   uint64
	Bid    int64
	Ask    int64
	Level  uint8
	Symbol []byte
}

// EncodeQuote writes a complete Quote v1 frame into buf and returns
// the frame size.
func EncodeQuote(buf []byte, seq uint32, q Quote) (int, error) {
	enc := codec.NewFrameEncoder(buf)

	header := codec.NewFrameHeader(MsgTypeQuote, seq, 0)
	if q.Symbol != nil {
		header.SetFlag(codec.FlagPresenceBitmap)
	}

	if err := enc.Begin(header); err != nil {
		return 0, err
	}
	if err := enc.PutU64(q.TsNs); err != nil {
		return 0, err
	}
	if err := enc.PutI64(q.Bid); err != nil {
		return 0, err
	}
	if err := enc.PutI64(q.Ask); err != nil {
		return 0, err
	}
	if err := enc.PutU8(q.Level); err != nil {
		return 0, err
	}

	if q.Symbol != nil {
		var bitmap uint16 = 1 << QuoteFieldSymbol
		if err := enc.PutBitmap(bitmap); err != nil {
			return 0, err
		}
		if err := enc.PutVarBytes(q.Symbol); err != nil {
			return 0, err
		}
	}

	return enc.FinishCRC32C()
}

// DecodeQuote parses and checksum-verifies a Quote v1 frame. Byte
// fields alias buf.
func DecodeQuote(buf []byte) (codec.FrameHeader, Quote, error) {
	dec := codec.NewFrameDecoder(buf)

	header, err := dec.Header()
	if err != nil {
		return codec.FrameHeader{}, Quote{}, err
	}
	if header.MsgType != MsgTypeQuote {
		return codec.FrameHeader{}, Quote{}, codec.ErrUnsupportedMsgType
	}
	if err := dec.VerifyCRC32C(); err != nil {
		return codec.FrameHeader{}, Quote{}, err
	}

	body, err := dec.Body()
	if err != nil {
		return codec.FrameHeader{}, Quote{}, err
	}

	var q Quote
	if q.TsNs, err = body.GetU64(); err != nil {
		return codec.FrameHeader{}, Quote{}, err
	}
	if q.Bid, err = body.GetI64(); err != nil {
		return codec.FrameHeader{}, Quote{}, err
	}
	if q.Ask, err = body.GetI64(); err != nil {
		return codec.FrameHeader{}, Quote{}, err
	}
	if q.Level, err = body.GetU8(); err != nil {
		return codec.FrameHeader{}, Quote{}, err
	}

	if header.HasFlag(codec.FlagPresenceBitmap) {
		bitmap, err := body.GetBitmap()
		if err != nil {
			return codec.FrameHeader{}, Quote{}, err
		}
		if bitmap&(1<<QuoteFieldSymbol) != 0 {
			if q.Symbol, err = body.GetVarBytes(); err != nil {
				return codec.FrameHeader{}, Quote{}, err
			}
		}
	}

	return header, q, nil
}
