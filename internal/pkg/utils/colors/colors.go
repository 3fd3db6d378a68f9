package colors

import "os"

// ANSI color escape sequences
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"
	Bold   = "\033[1m"
)

// Wrap surrounds s with color and Reset when enabled is true.
func Wrap(enabled bool, color, s string) string {
	if !enabled || color == "" {
		return s
	}
	return color + s + Reset
}

// Disabled reports whether the user opted out of colors via NO_COLOR.
func Disabled() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}
