package cli

import "github.com/spf13/viper"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	DictPath  string
	RulesPath string
	BatchFile string
	Text      bool
	Format    string
	Trace     bool
	Workers   int

	// Query flags
	Stats  bool
	Sample int

	// Export flags
	ExportPath   string
	ExportFormat string
	Archive      bool

	// Reference flags
	Compare           bool
	ReferenceProvider string
	ReferenceVoice    string

	// Logging flags
	LogLevel  string
	LogFormat string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Format:            "arpabet",
		ExportFormat:      "auto",
		ReferenceProvider: "espeak-ng",
		ReferenceVoice:    "en-us",
		LogLevel:          "warn",
		LogFormat:         "text",
	}
}

// LoadFromViper copies the configured values into f. Flags set on the
// command line take precedence over the config file and environment.
func (f *Flags) LoadFromViper() {
	f.DictPath = viper.GetString("dict.path")
	f.RulesPath = viper.GetString("rules.path")
	f.Format = viper.GetString("output.format")
	f.Workers = viper.GetInt("batch.workers")
	f.ExportFormat = viper.GetString("export.format")
	f.ReferenceProvider = viper.GetString("reference.provider")
	f.ReferenceVoice = viper.GetString("reference.voice")
	f.LogLevel = viper.GetString("log.level")
	f.LogFormat = viper.GetString("log.format")
}
