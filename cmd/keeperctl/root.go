package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "keeperctl",
	Short: "Inspect and drive a file-backed sharded cache root",
	Long: `keeperctl opens a cache root and drives it directly: get, set, rm,
clear, and cleanup subcommands each build a short-lived Keeper, perform
one operation, and release the process guard before exiting.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/keeperctl/config.yaml)")
	rootCmd.PersistentFlags().StringP("root", "r", "", "cache root directory")
	rootCmd.PersistentFlags().IntP("workers", "w", 0, "worker count (0=default)")
	rootCmd.PersistentFlags().Duration("cleanup-interval", 0, "janitor tick period (0=default)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "accepted, but not read by any subcommand")

	_ = viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	_ = viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
	_ = viper.BindPFlag("cleanup_interval", rootCmd.PersistentFlags().Lookup("cleanup-interval"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "keeperctl"))
		}
		if homeDir, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "keeperctl"))
		}
	}

	viper.SetEnvPrefix("KEEPERCTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("workers", 4)
	viper.SetDefault("cleanup_interval", 30*time.Second)

	_ = viper.ReadInConfig()
}

func rootPath() string {
	root := viper.GetString("root")
	if root == "" {
		root, _ = os.Getwd()
	}
	return root
}
