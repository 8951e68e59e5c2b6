package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexZinkM/miao-wallet/internal/api"
	"github.com/AlexZinkM/miao-wallet/internal/config"
	"github.com/AlexZinkM/miao-wallet/internal/handler"
	"github.com/AlexZinkM/miao-wallet/internal/log"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API (Swagger UI at /swagger/)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Password is entered once and kept in memory for the server's lifetime
		if err := config.PromptForPassword(); err != nil {
			return err
		}

		fs, err := newFileStore(config.GetWalletPasswordBytes)
		if err != nil {
			return err
		}
		suiHandler, err := handler.NewSuiHandler(newService(fs), fs)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              ":" + config.GetPort(),
			Handler:           api.SetupRouter(suiHandler),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.API.Info().Str("addr", srv.Addr).Str("wallet_dir", config.GetWalletDir()).Msg("server started")
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		log.API.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
