package records

import (
	"os/exec"
	"runtime"
)

// OpenForViewing asks the desktop environment to open the finished report.
// The launch is best-effort: the viewer runs detached and every failure is
// swallowed, since a missing opener must never fail the run that produced
// the report.
func OpenForViewing(path string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	_ = cmd.Start()
}
