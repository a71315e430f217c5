package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/soundctl/oscd/osc"
)

var (
	sendWait    bool
	sendTimeout time.Duration
)

var sendCmd = &cobra.Command{
	Use:   "send <host:port> <address> [arg...]",
	Short: "Send a one-shot OSC message",
	Long: `Send encodes a single OSC message and sends it to the given server.

Arguments may be typed with a prefix:

  i:42        int32
  f:3.14      float32
  s:text      string
  b:deadbeef  blob (hex)

Untyped arguments are guessed: integers become int32, decimals float32,
everything else a string.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSend,
}

func init() {
	sendCmd.Flags().BoolVarP(&sendWait, "wait", "w", false, "wait for a reply and print it")
	sendCmd.Flags().DurationVar(&sendTimeout, "timeout", 2*time.Second, "reply wait timeout")
}

func runSend(cmd *cobra.Command, args []string) error {
	msg := osc.NewMessage(args[1])
	for _, raw := range args[2:] {
		arg, err := parseArg(raw)
		if err != nil {
			return err
		}
		msg.Append(arg)
	}

	client, err := osc.Dial(args[0])
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Send(msg); err != nil {
		return err
	}

	if !sendWait {
		return nil
	}

	if err := client.SetReadDeadline(time.Now().Add(sendTimeout)); err != nil {
		return err
	}
	buf := make([]byte, osc.MaxPacketSize)
	for {
		n, err := client.Receive(buf)
		if err != nil {
			return fmt.Errorf("waiting for reply: %w", err)
		}
		reply, err := osc.Parse(buf[:n])
		if reply == nil {
			cmd.PrintErrf("dropping unparseable reply: %v\n", err)
			continue
		}
		cmd.Println(reply.String())
		return nil
	}
}

// parseArg converts a command line literal into an OSC argument.
func parseArg(s string) (osc.Argument, error) {
	if len(s) >= 2 && s[1] == ':' {
		switch s[0] {
		case 'i':
			v, err := strconv.ParseInt(s[2:], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("bad int32 literal %q: %w", s, err)
			}
			return osc.Int32(v), nil
		case 'f':
			v, err := strconv.ParseFloat(s[2:], 32)
			if err != nil {
				return nil, fmt.Errorf("bad float32 literal %q: %w", s, err)
			}
			return osc.Float32(v), nil
		case 's':
			return osc.String(s[2:]), nil
		case 'b':
			v, err := hex.DecodeString(s[2:])
			if err != nil {
				return nil, fmt.Errorf("bad blob literal %q: %w", s, err)
			}
			return osc.Blob(v), nil
		}
	}

	if v, err := strconv.ParseInt(s, 10, 32); err == nil {
		return osc.Int32(v), nil
	}
	if v, err := strconv.ParseFloat(s, 32); err == nil {
		return osc.Float32(v), nil
	}
	return osc.String(s), nil
}
