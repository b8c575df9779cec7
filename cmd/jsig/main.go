package main

import (
	"os"

	"github.com/dhamidi/jsig/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

// globalOptions holds the persistent flags and the configuration they
// override.
type globalOptions struct {
	verbosity  int
	logFile    string
	configPath string
	cfg        *config.Config
}

func (o *globalOptions) load(cmd *cobra.Command) error {
	var err error
	if o.configPath != "" {
		o.cfg, err = config.Load(o.configPath)
	} else {
		o.cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		o.cfg.Log.Verbosity = o.verbosity
	}
	if flags.Changed("log") {
		o.cfg.Log.File = o.logFile
	}

	var path *string
	if o.cfg.Log.File != "" {
		path = &o.cfg.Log.File
	}
	commonlog.Configure(o.cfg.Log.Verbosity, path)
	return nil
}

// outputFormat returns the --format flag if it was given and the
// configured format otherwise.
func (o *globalOptions) outputFormat(cmd *cobra.Command, flag string) string {
	if cmd.Flags().Changed("format") {
		return flag
	}
	return o.cfg.Output.Format
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "jsig",
		Short:         "Decode JVM generic signatures",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	flags.StringVar(&opts.logFile, "log", "", "write logs to this file instead of stderr")
	flags.StringVar(&opts.configPath, "config", "", "configuration file (default ./"+config.DefaultFile+" if present)")

	rootCmd.AddCommand(newParseCmd(opts))
	rootCmd.AddCommand(newScanCmd(opts))
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd())

	return rootCmd
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
