package main

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskarena/taskarena/internal/devserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local challenge server",
	Long: `Run an in-memory challenge API server with a demo round and a pool
of json tasks. Useful for trying out the client without a real competition:

  ta serve --addr localhost:7540 --secret demo &
  TASKARENA_SECRET=demo TASKARENA_BASE_URL=http://localhost:7540/ \
      ta solve --challenge demo`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")
		secret, _ := cmd.Flags().GetString("secret")

		cfg := devserver.Demo(secret)
		cfg.Logger = logger
		srv := devserver.New(cfg)

		logger.Info().Str("addr", addr).Msg("challenge server listening")
		server := &http.Server{
			Addr:         addr,
			Handler:      srv.Router(),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		}
		if err := server.ListenAndServe(); err != nil {
			handleError(err)
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", "localhost:7540", "Address to listen on")
	serveCmd.Flags().String("secret", "demo", "Team secret the server accepts")
	rootCmd.AddCommand(serveCmd)
}
