package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-docx/pkg/docx"
)

type rootOptions struct {
	configPath string
	envFile    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "docx",
		Short: "Assemble WordprocessingML documents from YAML manifests",
		Long: `docx builds .docx packages from a YAML description of the document.
Every style, numbering, hyperlink and comment reference is checked before the package is written.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML or TOML config file")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading DOCX_* variables")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newBuildCmd(), newValidateCmd(), newVersionCmd())
	return cmd
}

// setup loads the environment and configuration and installs the global logger
func (o *rootOptions) setup(cmd *cobra.Command) error {
	envErr := godotenv.Load(o.envFile)

	config, err := docx.LoadConfigFile(o.configPath)
	if err != nil {
		return err
	}
	if o.verbose {
		config.LogLevel = "debug"
	}

	docx.SetLogger(docx.NewLogger(cmd.ErrOrStderr(), docx.LogInfo))
	docx.SetGlobalConfig(config)

	if envErr != nil {
		docx.Debug("no env file loaded from %s, using process environment", o.envFile)
	}
	return nil
}
