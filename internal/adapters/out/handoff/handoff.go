// Package handoff implements the ways a dispatcher link reaches the customer:
// opened on this machine, or handed back to a remote client to open.
package handoff

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
)

type runFunc func(ctx context.Context, name string, args ...string) error

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// SystemOpener opens links with the operating system's default handler,
// which routes a chat link to the installed messaging app or the browser.
type SystemOpener struct {
	goos string
	run  runFunc
}

// NewSystemOpener creates an opener for the current platform.
func NewSystemOpener() SystemOpener {
	return SystemOpener{goos: runtime.GOOS, run: runCommand}
}

// Open launches the platform opener for link.
func (o SystemOpener) Open(ctx context.Context, link string) error {
	name, args := openCommand(o.goos, link)
	if err := o.run(ctx, name, args...); err != nil {
		return fmt.Errorf("open %s with %s: %w", link, name, err)
	}
	return nil
}

func openCommand(goos, link string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{link}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", link}
	default:
		return "xdg-open", []string{link}
	}
}

// ClientHandOff is used when the requester is a remote client: the link is
// returned in the response and the client opens it. Opening never fails here.
type ClientHandOff struct {
	logger *slog.Logger
}

// NewClientHandOff creates the client-side hand-off.
func NewClientHandOff(logger *slog.Logger) ClientHandOff {
	return ClientHandOff{logger: logger.With("component", "client_hand_off")}
}

// Open records that the link was handed to the client.
func (h ClientHandOff) Open(ctx context.Context, link string) error {
	h.logger.DebugContext(ctx, "Hand-off link returned to client", "link_length", len(link))
	return nil
}
