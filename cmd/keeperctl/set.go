package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shardkeeper/filekv/adapter/blocking"
	"github.com/shardkeeper/filekv/cache"
)

var setTTL time.Duration

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Write a key to the cache root",
	Args:  cobra.ExactArgs(2),
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

		c := blocking.New(k)
		if err := c.Set(args[0], []byte(args[1]), setTTL); err != nil {
			return err
		}
		fmt.Println("ok")
		return nil
	},
}

func init() {
	setCmd.Flags().DurationVarP(&setTTL, "ttl", "t", 0, "time-to-live (0=never expires)")
	rootCmd.AddCommand(setCmd)
}
