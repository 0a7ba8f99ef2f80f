package safety

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Options are the global safety flags.
type Options struct {
	DryRun bool
	Yes    bool
	Force  bool
}

// ConfirmOverwrite asks whether the existing file at path may be replaced.
// Dry-run always declines. Force or Yes accept without prompting. Otherwise
// the answer is read from in; anything but y/yes, including EOF, declines.
func ConfirmOverwrite(opts Options, in io.Reader, out io.Writer, path, detail string) (bool, error) {
	if opts.DryRun {
		return false, nil
	}
	if opts.Force || opts.Yes {
		return true, nil
	}
	if in == nil {
		return false, nil
	}
	if out != nil {
		q := fmt.Sprintf("%s already exists", path)
		if detail = strings.TrimSpace(detail); detail != "" {
			q += " (" + detail + ")"
		}
		fmt.Fprintf(out, "%s. Overwrite? [y/N]: ", q)
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
