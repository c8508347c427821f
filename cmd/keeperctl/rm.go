package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shardkeeper/filekv/adapter/blocking"
	"github.com/shardkeeper/filekv/cache"
)

var rmCmd = &cobra.Command{
	Use:   "rm <key>",
	Short: "Remove a key from the cache root",
	Args:  cobra.ExactArgs(1),
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

		if err := blocking.New(k).Remove(args[0]); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil
	},
}

func init() { rootCmd.AddCommand(rmCmd) }
