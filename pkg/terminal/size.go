package terminal

import (
	"os"
	"strconv"

	"gitlab.com/tinyland/lab/folio/pkg/viewport"
)

// Fallback dimensions when nothing reports a size.
const (
	FallbackCols = 80
	FallbackRows = 24
)

// Sizer measures a terminal through a file descriptor. It implements
// viewport.Source.
type Sizer struct {
	fds []uintptr
	env Env
}

// NewSizer returns a Sizer that tries each descriptor in turn. With no
// descriptors it uses stdout then stderr.
func NewSizer(fds ...uintptr) *Sizer {
	if len(fds) == 0 {
		fds = []uintptr{os.Stdout.Fd(), os.Stderr.Fd()}
	}
	return &Sizer{fds: fds, env: os.LookupEnv}
}

// Size implements viewport.Source. Pixel dimensions are zero when the
// terminal does not report them.
func (s *Sizer) Size() viewport.Size {
	for _, fd := range s.fds {
		if sz, ok := querySize(fd); ok {
			return sz
		}
	}
	return viewport.Size{
		Cols: envInt(s.env, "COLUMNS", FallbackCols),
		Rows: envInt(s.env, "LINES", FallbackRows),
	}
}

func envInt(env Env, key string, fallback int) int {
	n, err := strconv.Atoi(env.get(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
