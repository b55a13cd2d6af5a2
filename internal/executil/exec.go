package executil

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/searchcmp/searchcmp-cli/internal/logging"
)

type Result struct {
	Stdout string
	Code   int
}

// Capture runs bin with args and buffers its full standard output. The
// buffer is attached as the process's stdout, so the pipe is drained while
// the child writes and a chatty tool cannot stall on a full pipe. Stderr
// passes through to the parent.
//
// A non-zero exit is not an error: search tools exit 1 to mean "no matches",
// so the code is reported in the Result and whatever output was produced is
// kept. Only a failure to launch the binary at all returns an error.
func Capture(bin string, args ...string) (Result, error) {
	logging.Debug("exec: " + shellquote.Join(append([]string{bin}, args...)...))
	cmd := exec.Command(bin, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	code := 0
	if err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			code = ee.ExitCode()
		} else {
			return Result{}, fmt.Errorf("launching %s: %w", bin, err)
		}
	}
	return Result{Stdout: out.String(), Code: code}, nil
}
