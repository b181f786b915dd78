package cmd

import (
	"encoding/base64"
	"fmt"

	"github.com/sameteraslan/minibit/pkg/capture"
	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
)

// captureCmd represents the capture command
var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Record and replay frames in a capture log",
}

// captureRecordCmd represents the capture record command
var captureRecordCmd = &cobra.Command{
	Use:   "record <frame-base64>",
	Short: "Append a frame to a capture session",
	Long: `Verify a frame and append it to a capture session, indexing
it by sequence number. Without --session a new session is created and
its id is printed.

Examples:
  minibit capture record "$FRAME"
  minibit capture record --session 2OPxlHSO4wV9y34felsMJ9PJGQA "$FRAME"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		frame, err := base64.StdEncoding.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("frame must be valid base64: %w", err)
		}

		session, err := openSessionFromFlags(cmd)
		if err != nil {
			return err
		}
		defer session.Close()

		offset, err := session.Record(frame)
		if err != nil {
			return fmt.Errorf("failed to record frame: %w", err)
		}

		cmd.Printf("Session: %s\n", session.ID())
		cmd.Printf("Recorded at offset %d\n", offset)
		return nil
	},
}

// captureGetCmd represents the capture get command
var captureGetCmd = &cobra.Command{
	Use:   "get <seq>",
	Short: "Look up a recorded frame by sequence number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var seq uint32
		if _, err := fmt.Sscanf(args[0], "%d", &seq); err != nil {
			return fmt.Errorf("invalid sequence number %q", args[0])
		}

		session, err := openSessionFromFlags(cmd)
		if err != nil {
			return err
		}
		defer session.Close()

		frame, err := session.ReadSeq(seq)
		if err != nil {
			return fmt.Errorf("failed to read seq %d: %w", seq, err)
		}

		cmd.Printf("%s\n", base64.StdEncoding.EncodeToString(frame.Data))
		cmd.Printf("Offset: %d, size: %d bytes\n", frame.Offset, len(frame.Data))
		return nil
	},
}

// captureReplayCmd represents the capture replay command
var captureReplayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay every frame in a capture session",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := openSessionFromFlags(cmd)
		if err != nil {
			return err
		}
		defer session.Close()

		count := 0
		err = session.Replay(func(f *capture.Frame) error {
			cmd.Printf("seq=%d offset=%d size=%d %s\n",
				f.Seq, f.Offset, len(f.Data),
				base64.StdEncoding.EncodeToString(f.Data))
			count++
			return nil
		})
		if err != nil {
			return fmt.Errorf("replay failed: %w", err)
		}

		cmd.Printf("Replayed %d frames\n", count)
		return nil
	},
}

// openSessionFromFlags opens the session named by --session, or
// creates a fresh one when the flag is absent.
func openSessionFromFlags(cmd *cobra.Command) (*capture.Session, error) {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	config := capture.SessionConfig{DataDir: dataDir}

	sessionID, _ := cmd.Flags().GetString("session")
	if sessionID == "" {
		return capture.NewSession(config)
	}

	id, err := ksuid.Parse(sessionID)
	if err != nil {
		return nil, fmt.Errorf("invalid session id %q: %w", sessionID, err)
	}
	return capture.OpenSession(config, id)
}

func init() {
	captureCmd.PersistentFlags().String("session", "", "Capture session id (created if empty)")

	captureCmd.AddCommand(captureRecordCmd)
	captureCmd.AddCommand(captureGetCmd)
	captureCmd.AddCommand(captureReplayCmd)
	rootCmd.AddCommand(captureCmd)
}
