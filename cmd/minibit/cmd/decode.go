package cmd

import (
	"encoding/base64"
	"fmt"

	"github.com/sameteraslan/minibit/pkg/codec"
	"github.com/sameteraslan/minibit/pkg/messages"
	"github.com/spf13/cobra"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <frame-base64>",
	Short: "Decode a frame",
	Long: `Checksum-verify a base64-encoded frame and print its decoded
message fields.

Example:
  minibit decode "$(minibit encode trade --seq 1 --qty 100 | head -1)"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		frame, err := base64.StdEncoding.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("frame must be valid base64: %w", err)
		}

		header, err := codec.DecodeFrameHeader(frame)
		if err != nil {
			return fmt.Errorf("invalid frame header: %w", err)
		}

		switch header.MsgType {
		case messages.MsgTypeTrade:
			_, trade, err := messages.DecodeTrade(frame)
			if err != nil {
				return fmt.Errorf("failed to decode trade: %w", err)
			}
			cmd.Printf("Trade seq=%d\n", header.Seq)
			cmd.Printf("  ts_ns: %d\n", trade.TsNs)
			cmd.Printf("  price: %d\n", trade.Price)
			cmd.Printf("  qty:   %d\n", trade.Qty)
			if trade.Symbol != nil {
				cmd.Printf("  symbol: %s\n", trade.Symbol)
			}
			if trade.Note != nil {
				cmd.Printf("  note:   %s\n", trade.Note)
			}

		case messages.MsgTypeQuote:
			_, quote, err := messages.DecodeQuote(frame)
			if err != nil {
				return fmt.Errorf("failed to decode quote: %w", err)
			}
			cmd.Printf("Quote seq=%d\n", header.Seq)
			cmd.Printf("  ts_ns: %d\n", quote.TsNs)
			cmd.Printf("  bid:   %d\n", quote.Bid)
			cmd.Printf("  ask:   %d\n", quote.Ask)
			cmd.Printf("  level: %d\n", quote.Level)
			if quote.Symbol != nil {
				cmd.Printf("  symbol: %s\n", quote.Symbol)
			}

		default:
			return fmt.Errorf("unsupported message type %d", header.MsgType)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
