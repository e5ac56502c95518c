package cli

// DefaultDir is the i18n directory used when --dir is not given
const DefaultDir = "i18n"

// Flags holds all command-line flag values
type Flags struct {
	CfgFile   string
	Dir       string
	Verbose   bool
	LogFormat string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Dir:       DefaultDir,
		LogFormat: "text",
	}
}
