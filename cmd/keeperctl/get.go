package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shardkeeper/filekv/adapter/blocking"
	"github.com/shardkeeper/filekv/cache"
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Read a key from the cache root",
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

		c := blocking.New(k)
		start := time.Now()
		value, found, err := c.Get(args[0])
		if err != nil {
			return err
		}
		if !found {
			fmt.Println("(miss)")
			return nil
		}
		fmt.Printf("%s (%s, %s)\n", value, humanize.Bytes(uint64(len(value))), time.Since(start))
		return nil
	},
}

func init() { rootCmd.AddCommand(getCmd) }
