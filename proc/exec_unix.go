//go:build unix

package proc

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// Exec replaces the current process image with the given program. The
// program's argv[0] is taken from the file stem of its path. On success Exec
// never returns.
func Exec(program string, args ...string) error {
	stem := strings.TrimSuffix(filepath.Base(program), filepath.Ext(program))
	if stem == "" || stem == string(filepath.Separator) || stem == "." {
		return fmt.Errorf("program path has no file stem and no program name given: %s", program)
	}
	return ExecWithName(program, stem, args...)
}

// ExecWithName replaces the current process image with the given program,
// using name as argv[0] of the executed program. Programs without a path
// separator are resolved through PATH first.
func ExecWithName(program, name string, args ...string) error {
	path := program
	if !strings.ContainsRune(program, filepath.Separator) {
		resolved, err := exec.LookPath(program)
		if err != nil {
			return fmt.Errorf("executing program %s: %w", program, err)
		}
		path = resolved
	}

	argv := append([]string{name}, args...)
	if err := unix.Exec(path, argv, os.Environ()); err != nil {
		return fmt.Errorf("executing program %s: %w", path, err)
	}
	// unix.Exec only returns on error.
	return nil
}
