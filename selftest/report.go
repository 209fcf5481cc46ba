package selftest

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Print writes a human-readable report to w, one line per check plus a
// summary, colorized the way the CLI colors its other status output.
func (r *Report) Print(w io.Writer) {
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()

	fmt.Fprintf(w, "Self-test run at %s\n", r.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"))
	for _, res := range r.Results {
		status := ok("PASS")
		if !res.Passed() {
			status = bad("FAIL")
		}
		fmt.Fprintf(w, "  [%s] %-8s %s", status, res.ID, res.Description)
		if res.Err != nil {
			fmt.Fprintf(w, ": %v", res.Err)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%d passed, %d failed, %d total\n", r.Passed, r.Failed, r.Passed+r.Failed)
}
