package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shardkeeper/filekv/adapter/blocking"
	"github.com/shardkeeper/filekv/cache"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every entry under the cache root",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := cache.Build(cache.Options{
			RootPath:        rootPath(),
			Workers:         viper.GetInt("workers"),
			CleanupInterval: viper.GetDuration("cleanup_interval"),
		})
		if err != nil {
			return err
		}
		defer k.Close()

		if err := blocking.New(k).Clear(); err != nil {
			return err
		}
		fmt.Println("cleared")
		return nil
	},
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Run a synchronous janitor sweep now",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := cache.Build(cache.Options{
			RootPath:        rootPath(),
			Workers:         viper.GetInt("workers"),
			CleanupInterval: viper.GetDuration("cleanup_interval"),
		})
		if err != nil {
			return err
		}
		defer k.Close()

		if err := blocking.New(k).Cleanup(); err != nil {
			return err
		}
		fmt.Println("swept")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(cleanupCmd)
}
