package cmd

import (
	"os"

	"github.com/fmorandi/chatai/config"
	"github.com/fmorandi/chatai/internal/app"
	"github.com/fmorandi/chatai/internal/console"
	"github.com/fmorandi/chatai/internal/session"
	"github.com/fmorandi/chatai/pkg/local"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "chatai",
	Short: "Console assistant backed by a remote completion service",
	Long: "chatai keeps one conversation with an OpenAI-compatible completion " +
		"service, adapting answer verbosity to the kind of question asked. " +
		"Run it bare for the interactive console, or `chatai serve` for the HTTP API.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cfgPath)
		if err != nil {
			return err
		}
		engine, err := app.NewEngine(cfg)
		if err != nil {
			return err
		}
		store, _ := engine.Sessions.GetOrCreate(session.DefaultKey)
		repl := console.New(engine.Chat, store, local.Language(cfg.Language), os.Stdin, os.Stdout)
		return repl.Run(cmd.Context())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a yaml config file (env vars apply on top)")
}
