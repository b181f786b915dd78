package messages

import "github.com/sameteraslan/minibit/pkg/codec"

// Message type identifiers.
const (
	// MsgTypeTrade is the Trade v1 message type.
	MsgTypeTrade uint16 = 1

	// MsgTypeQuote is the Quote v1 message type.
	MsgTypeQuote uint16 = 2
)

// Trade presence bitmap field indices.
const (
	TradeFieldSymbol = 0
	TradeFieldNote   = 1
)

// Trade is an executed trade. Symbol and Note are optional; nil means
// absent on the wire.
type Trade struct {
	TsNs   uint64
	Price  int64
	Qty    uint32
	Symbol []byte
	Note   []byte
}

// EncodeTrade writes a complete Trade v1 frame into buf and returns
// the frame size. The presence bitmap flag is set only when at least
// one optional field is present.
func EncodeTrade(buf []byte, seq uint32, t Trade) (int, error) {
	enc := codec.NewFrameEncoder(buf)

	header := codec.NewFrameHeader(MsgTypeTrade, seq, 0)
	hasOptional := t.Symbol != nil || t.Note != nil
	if hasOptional {
		header.SetFlag(codec.FlagPresenceBitmap)
	}

	if err := enc.Begin(header); err != nil {
		return 0, err
	}
	if err := enc.PutU64(t.TsNs); err != nil {
		return 0, err
	}
	if err := enc.PutI64(t.Price); err != nil {
		return 0, err
	}
	if err := enc.PutU32(t.Qty); err != nil {
		return 0, err
	}

	if hasOptional {
		var bitmap uint16
		if t.Symbol != nil {
			bitmap |= 1 << TradeFieldSymbol
		}
		if t.Note != nil {
			bitmap |= 1 << TradeFieldNote
		}
		if err := enc.PutBitmap(bitmap); err != nil {
			return 0, err
		}
		if t.Symbol != nil {
			if err := enc.PutVarBytes(t.Symbol); err != nil {
				return 0, err
			}
		}
		if t.Note != nil {
			if err := enc.PutVarBytes(t.Note); err != nil {
				return 0, err
			}
		}
	}

	return enc.FinishCRC32C()
}

// DecodeTrade parses and checksum-verifies a Trade v1 frame. A frame
// of any other message type fails with ErrUnsupportedMsgType before
// the checksum is computed. Byte fields alias buf.
func DecodeTrade(buf []byte) (codec.FrameHeader, Trade, error) {
	dec := codec.NewFrameDecoder(buf)

	header, err := dec.Header()
	if err != nil {
		return codec.FrameHeader{}, Trade{}, err
	}
	if header.MsgType != MsgTypeTrade {
		return codec.FrameHeader{}, Trade{}, codec.ErrUnsupportedMsgType
	}
	if err := dec.VerifyCRC32C(); err != nil {
		return codec.FrameHeader{}, Trade{}, err
	}

	body, err := dec.Body()
	if err != nil {
		return codec.FrameHeader{}, Trade{}, err
	}

	var t Trade
	if t.TsNs, err = body.GetU64(); err != nil {
		return codec.FrameHeader{}, Trade{}, err
	}
	if t.Price, err = body.GetI64(); err != nil {
		return codec.FrameHeader{}, Trade{}, err
	}
	if t.Qty, err = body.GetU32(); err != nil {
		return codec.FrameHeader{}, Trade{}, err
	}

	if header.HasFlag(codec.FlagPresenceBitmap) {
		bitmap, err := body.GetBitmap()
		if err != nil {
			return codec.FrameHeader{}, Trade{}, err
		}
		if bitmap&(1<<TradeFieldSymbol) != 0 {
			if t.Symbol, err = body.GetVarBytes(); err != nil {
				return codec.FrameHeader{}, Trade{}, err
			}
		}
		if bitmap&(1<<TradeFieldNote) != 0 {
			if t.Note, err = body.GetVarBytes(); err != nil {
				return codec.FrameHeader{}, Trade{}, err
			}
		}
	}

	return header, t, nil
}
