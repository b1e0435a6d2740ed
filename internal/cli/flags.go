package cli

import "jtr/internal/config"

// Flags holds command-line flags
type Flags struct {
	ProjectPath  string
	ResultsPath  string
	NameFilter   string
	DisabledOnly bool
	OpenFailures bool
	History      bool
	FromLast     bool
	InitSchema   bool
	Print        bool
	Limit        int
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ProjectPath:  f.ProjectPath,
		ResultsPath:  f.ResultsPath,
		NameFilter:   f.NameFilter,
		DisabledOnly: f.DisabledOnly,
		OpenFailures: f.OpenFailures,
		History:      f.History,
		FromLast:     f.FromLast,
		InitSchema:   f.InitSchema,
		Print:        f.Print,
		Limit:        f.Limit,
	}
}
