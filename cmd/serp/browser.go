package main

import (
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/fwojciec/serp"
)

// Ensure Browser implements serp.Opener at compile time.
var _ serp.Opener = (*Browser)(nil)

// Browser opens URLs with the desktop's default handler, or with the
// program named by $BROWSER.
type Browser struct {
	// Command is the program and leading arguments; the URL is appended.
	Command []string
}

// NewBrowser returns a Browser for the current platform.
func NewBrowser() *Browser {
	return &Browser{Command: browserCommand(os.Getenv("BROWSER"), runtime.GOOS)}
}

func browserCommand(env, goos string) []string {
	if fields := strings.Fields(env); len(fields) > 0 {
		return fields
	}
	switch goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}

// Open starts the browser without waiting for it to exit.
func (b *Browser) Open(url string) error {
	if len(b.Command) == 0 {
		return serp.Errorf(serp.EINVALID, "no browser configured")
	}
	args := append(b.Command[1:len(b.Command):len(b.Command)], url)
	cmd := exec.Command(b.Command[0], args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait()
	return nil
}
