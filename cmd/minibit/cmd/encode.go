package cmd

import (
	"encoding/base64"
	"fmt"

	"github.com/sameteraslan/minibit/pkg/messages"
	"github.com/spf13/cobra"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a message into a frame",
}

// encodeTradeCmd represents the encode trade command
var encodeTradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Encode a trade message",
	Long: `Encode a trade message into a checksummed frame and print it
as base64.

Example:
  minibit encode trade --seq 1 --ts-ns 1700000000000000000 --price 50000000 --qty 100 --symbol AAPL`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, _ := cmd.Flags().GetUint32("seq")
		tsNs, _ := cmd.Flags().GetUint64("ts-ns")
		price, _ := cmd.Flags().GetInt64("price")
		qty, _ := cmd.Flags().GetUint32("qty")

		trade := messages.Trade{TsNs: tsNs, Price: price, Qty: qty}
		if cmd.Flags().Changed("symbol") {
			symbol, _ := cmd.Flags().GetString("symbol")
			trade.Symbol = []byte(symbol)
		}
		if cmd.Flags().Changed("note") {
			note, _ := cmd.Flags().GetString("note")
			trade.Note = []byte(note)
		}

		buf := make([]byte, 1024+len(trade.Symbol)+len(trade.Note))
		total, err := messages.EncodeTrade(buf, seq, trade)
		if err != nil {
			return fmt.Errorf("failed to encode trade: %w", err)
		}

		cmd.Printf("%s\n", base64.StdEncoding.EncodeToString(buf[:total]))
		cmd.Printf("Frame size: %d bytes\n", total)
		return nil
	},
}

// encodeQuoteCmd represents the encode quote command
var encodeQuoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Encode a quote message",
	Long: `Encode a quote message into a checksummed frame and print it
as base64.

Example:
  minibit encode quote --seq 1 --ts-ns 1700000000000000000 --bid 49990000 --ask 50010000 --symbol BTC/USD`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, _ := cmd.Flags().GetUint32("seq")
		tsNs, _ := cmd.Flags().GetUint64("ts-ns")
		bid, _ := cmd.Flags().GetInt64("bid")
		ask, _ := cmd.Flags().GetInt64("ask")
		level, _ := cmd.Flags().GetUint8("level")

		quote := messages.Quote{TsNs: tsNs, Bid: bid, Ask: ask, Level: level}
		if cmd.Flags().Changed("symbol") {
			symbol, _ := cmd.Flags().GetString("symbol")
			quote.Symbol = []byte(symbol)
		}

		buf := make([]byte, 1024+len(quote.Symbol))
		total, err := messages.EncodeQuote(buf, seq, quote)
		if err != nil {
			return fmt.Errorf("failed to encode quote: %w", err)
		}

		cmd.Printf("%s\n", base64.StdEncoding.EncodeToString(buf[:total]))
		cmd.Printf("Frame size: %d bytes\n", total)
		return nil
	},
}

func init() {
	encodeTradeCmd.Flags().Uint32("seq", 0, "Sequence number")
	encodeTradeCmd.Flags().Uint64("ts-ns", 0, "Timestamp in nanoseconds")
	encodeTradeCmd.Flags().Int64("price", 0, "Price in fixed-point ticks")
	encodeTradeCmd.Flags().Uint32("qty", 0, "Quantity")
	encodeTradeCmd.Flags().String("symbol", "", "Optional instrument symbol")
	encodeTradeCmd.Flags().String("note", "", "Optional free-form note")

	encodeQuoteCmd.Flags().Uint32("seq", 0, "Sequence number")
	encodeQuoteCmd.Flags().Uint64("ts-ns", 0, "Timestamp in nanoseconds")
	encodeQuoteCmd.Flags().Int64("bid", 0, "Bid price in fixed-point ticks")
	encodeQuoteCmd.Flags().Int64("ask", 0, "Ask price in fixed-point ticks")
	encodeQuoteCmd.Flags().Uint8("level", 0, "Book depth level")
	encodeQuoteCmd.Flags().String("symbol", "", "Optional instrument symbol")

	encodeCmd.AddCommand(encodeTradeCmd)
	encodeCmd.AddCommand(encodeQuoteCmd)
	rootCmd.AddCommand(encodeCmd)
}
