package cli

import (
	"errors"

	"github.com/modseven/installer/internal/scaffold"
)

// ExitCode maps a command error to the process exit status. A failing
// dependency installer passes its own status through.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ie *scaffold.InstallError
	if errors.As(err, &ie) && ie.ExitCode > 0 {
		return ie.ExitCode
	}
	return 1
}
