package cli

import "github.com/Tythos/gtestbox/internal/config"

// Flags holds command-line flags
type Flags struct {
	Filter       string
	Verbose      bool
	NoColor      bool
	FailFast     bool
	OpenFailures bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Filter:       f.Filter,
		Verbose:      f.Verbose,
		NoColor:      f.NoColor,
		FailFast:     f.FailFast,
		OpenFailures: f.OpenFailures,
	}
}
