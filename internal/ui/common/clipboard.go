package common

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// CopyToClipboard writes the picked labels to the system clipboard.
// On macOS pbcopy is tried first; it behaves better under tmux and SSH
// sessions than the library path.
func CopyToClipboard(text string) error {
	if runtime.GOOS == "darwin" {
		cmd := exec.Command("pbcopy")
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	return clipboard.WriteAll(text)
}
