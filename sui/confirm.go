package sui

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Confirmer decides whether a simulated transfer may be signed
type Confirmer interface {
	Confirm(ctx context.Context, preview *Preview) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(ctx context.Context, preview *Preview) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, preview *Preview) (bool, error) {
	return f(ctx, preview)
}

// AutoConfirm approves without prompting. The simulation still has to succeed
// before the gate asks.
type AutoConfirm struct{}

func (AutoConfirm) Confirm(context.Context, *Preview) (bool, error) {
	return true, nil
}

// PromptConfirmer prints the preview to Out and reads one answer line from In.
// Nothing past the answer line is consumed. If ctx ends first, the pending
// read keeps its goroutine until In yields a line or fails, so In should be
// a terminal or another reader that is closed with the process.
type PromptConfirmer struct {
	In  io.Reader
	Out io.Writer
}

func (p PromptConfirmer) Confirm(ctx context.Context, preview *Preview) (bool, error) {
	if err := preview.Write(p.Out); err != nil {
		return false, err
	}
	fmt.Fprint(p.Out, "Send this transaction? [y/N]: ")

	answer := make(chan string, 1)
	go func() {
		answer <- readLine(p.In)
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.Out)
		return false, ctx.Err()
	case line := <-answer:
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		default:
			return false, nil
		}
	}
}

// readLine reads one line from r and stops right after the '\n'
func readLine(r io.Reader) string {
	var (
		sb  strings.Builder
		buf [1]byte
	)
	for {
		n, err := r.Read(buf[:])
		if n == 1 {
			if buf[0] == '\n' {
				return sb.String()
			}
			sb.WriteByte(buf[0])
		}
		if err != nil {
			return sb.String()
		}
	}
}
