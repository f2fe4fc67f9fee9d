package launchconfig

import (
	"errors"
	"fmt"
)

// ErrNoBinary is returned when no binary path was supplied.
var ErrNoBinary = errors.New("no binary path given")

// Partition splits a process argument vector into the target binary and the
// arguments to pass to it. argv[0] is the invocation name and is skipped.
func Partition(argv []string) (binary string, rest []string, err error) {
	if len(argv) < 2 {
		return "", nil, fmt.Errorf("%w: expected <binary> [args...]", ErrNoBinary)
	}

	rest = make([]string, 0, len(argv)-2)
	rest = append(rest, argv[2:]...)
	return argv[1], rest, nil
}

// IsHelpFlag reports whether s requests usage output.
func IsHelpFlag(s string) bool {
	switch s {
	case "--help", "-h", "-help":
		return true
	}
	return false
}
