package cmd

import (
	"encoding/base64"
	"fmt"

	"github.com/sameteraslan/minibit/pkg/codec"
	"github.com/spf13/cobra"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <frame-base64>",
	Short: "Inspect a frame header and checksum",
	Long: `Report header fields and checksum state of a base64-encoded
frame without decoding the body. Checksum failures are reported even
when the header itself is broken.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		frame, err := base64.StdEncoding.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("frame must be valid base64: %w", err)
		}

		dec := codec.NewFrameDecoder(frame)
		header, headerErr := dec.Header()
		verifyErr := dec.VerifyCRC32C()

		if headerErr == nil {
			cmd.Printf("Header: valid\n")
			cmd.Printf("  magic:    0x%04X\n", header.Magic)
			cmd.Printf("  version:  %d\n", header.Ver)
			cmd.Printf("  flags:    0x%02X\n", header.Flags)
			cmd.Printf("  msg_type: %d\n", header.MsgType)
			cmd.Printf("  seq:      %d\n", header.Seq)
			cmd.Printf("  body_len: %d\n", header.Len)
			cmd.Printf("  total:    %d bytes\n", header.TotalSize())
		} else {
			cmd.Printf("Header: invalid (%v)\n", headerErr)
		}

		if verifyErr == nil {
			cmd.Printf("Checksum: ok\n")
			return nil
		}
		cmd.Printf("Checksum: %v\n", verifyErr)
		return fmt.Errorf("frame verification failed: %w", verifyErr)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
