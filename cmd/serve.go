package cmd

import (
	"github.com/fmorandi/chatai/config"
	"github.com/fmorandi/chatai/internal/app"
	"github.com/fmorandi/chatai/internal/httpapi"
	"github.com/fmorandi/chatai/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP surface",
	Long: "Serves the conversation engine over HTTP. Each client gets its own " +
		"session via the session_key it sends (or receives on first contact).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cfgPath)
		if err != nil {
			return err
		}
		engine, err := app.NewEngine(cfg)
		if err != nil {
			return err
		}

		e := echo.New()
		e.HideBanner = true
		e.Use(middleware.Recover())
		e.Use(middleware.Logger())
		e.Use(middleware.BodyLimit("1MB"))
		// Open CORS so the page can be served from anywhere, phones included.
		e.Use(
			middleware.CORSWithConfig(
				middleware.CORSConfig{
					AllowOrigins: []string{"*"},
					AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
					AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
				},
			),
		)

		httpapi.NewHandler(engine.Chat, engine.Sessions).Register(e)

		log.L().Info("starting server", zap.String("addr", cfg.Server.Addr))
		return e.Start(cfg.Server.Addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
