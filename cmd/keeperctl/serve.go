package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shardkeeper/filekv/cache"
	"github.com/shardkeeper/filekv/metrics/prom"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Hold the cache root's guard and export Prometheus metrics until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter := prom.New(nil, "keeperctl", "cache", nil)

		k, err := cache.Build(cache.Options{
			RootPath:        rootPath(),
			Workers:         viper.GetInt("workers"),
			CleanupInterval: viper.GetDuration("cleanup_interval"),
			Metrics:         adapter,
		})
		if err != nil {
			return err
		}
		defer k.Close()

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{Addr: serveAddr, Handler: mux}

		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				fmt.Fprintln(os.Stderr, "metrics server:", err)
			}
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		return srv.Close()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":9090", "address for the /metrics endpoint")
	rootCmd.AddCommand(serveCmd)
}
