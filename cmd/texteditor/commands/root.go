package commands

import (
	"github.com/spf13/cobra"

	"github.com/sghaida/texteditor/internal/app"
	"github.com/sghaida/texteditor/internal/config"
	"github.com/sghaida/texteditor/internal/logger"
)

// NewRootCmd returns the texteditor root command.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		verbose bool
	)

	root := &cobra.Command{
		Use:           "texteditor",
		Short:         "Wire a spell checker into two editors by constructor and setter injection",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("verbose") {
				cfg.Verbose = verbose
			}
			log := logger.New(cmd.ErrOrStderr(), "texteditor", cfg.Verbose)
			return app.Run(cfg, cmd.OutOrStdout(), log)
		},
	}

	root.Flags().StringVar(&cfgFile, "config", "", "YAML config file (default $TEXTEDITOR_CONFIG)")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log container lifecycle to stderr")
	return root
}

// Execute runs the root command and reports errors on stderr.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		return err
	}
	return nil
}
