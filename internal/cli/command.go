package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/snonux/g2p/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "g2p [word|text...]",
		Short: "English Grapheme-to-Phoneme Converter",
		Long: `g2p converts English words and text to ARPAbet phonemes.

Words are looked up in a CMU pronunciation dictionary first and fall
back to letter-to-sound rules when missing.

Examples:
  g2p colonel                          # Convert a single word
  g2p --dict cmudict.dict Hello world  # Convert text with a dictionary
  g2p --batch words.txt --export out.csv
  g2p --stats --sample 10 --dict cmudict.dict`,
		Args:    cobra.ArbitraryArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.g2p.yaml)")

	// Local flags
	fs := cmd.Flags()
	fs.StringVarP(&flags.DictPath, "dict", "d", "", "CMU pronunciation dictionary file")
	fs.StringVarP(&flags.RulesPath, "rules", "r", "", "Rule file replacing the built-in letter-to-sound rules")
	fs.StringVar(&flags.BatchFile, "batch", "", "Process words from file (one per line)")
	fs.BoolVarP(&flags.Text, "text", "t", false, "Treat arguments as running text even for a single word")
	fs.StringVarP(&flags.Format, "format", "f", flags.Format, "Output format: arpabet, ipa or both")
	fs.BoolVar(&flags.Trace, "trace", false, "Show the rules applied to each word")
	fs.IntVarP(&flags.Workers, "workers", "w", 0, "Batch conversion workers (default: number of CPUs)")

	fs.BoolVar(&flags.Stats, "stats", false, "Show dictionary and rule statistics")
	fs.IntVar(&flags.Sample, "sample", 0, "Show the first N dictionary words")

	fs.StringVarP(&flags.ExportPath, "export", "e", "", "Export results to a CSV file or SQLite database")
	fs.StringVar(&flags.ExportFormat, "export-format", flags.ExportFormat, "Export format: auto, csv or sqlite")
	fs.BoolVar(&flags.Archive, "archive", false, "Move an existing export file to archive/ before writing")

	fs.BoolVar(&flags.Compare, "compare", false, "Compare results against espeak")
	fs.StringVar(&flags.ReferenceProvider, "reference", flags.ReferenceProvider, "Reference phonemizer: espeak-ng or espeak")
	fs.StringVar(&flags.ReferenceVoice, "reference-voice", flags.ReferenceVoice, "Voice for the reference phonemizer")

	fs.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: text or json")

	// Bind flags to viper
	bindFlagsToViper(fs)
}

func bindFlagsToViper(fs *pflag.FlagSet) {
	viper.BindPFlag("dict.path", fs.Lookup("dict"))
	viper.BindPFlag("rules.path", fs.Lookup("rules"))
	viper.BindPFlag("output.format", fs.Lookup("format"))
	viper.BindPFlag("batch.workers", fs.Lookup("workers"))
	viper.BindPFlag("export.format", fs.Lookup("export-format"))
	viper.BindPFlag("reference.provider", fs.Lookup("reference"))
	viper.BindPFlag("reference.voice", fs.Lookup("reference-voice"))
	viper.BindPFlag("log.level", fs.Lookup("log-level"))
	viper.BindPFlag("log.format", fs.Lookup("log-format"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".g2p" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".g2p")
	}

	// Environment variables
	viper.SetEnvPrefix("G2P")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
