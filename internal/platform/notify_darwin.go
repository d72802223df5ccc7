//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
)

// Notify posts to Notification Center through osascript. Icons are not
// supported there, so opts is unused.
func Notify(title, body string, opts Options) error {
	script := fmt.Sprintf("display notification %q with title %q subtitle %q", body, AppName, title)
	if title == AppName {
		script = fmt.Sprintf("display notification %q with title %q", body, title)
	}
	return exec.Command("osascript", "-e", script).Run()
}
