package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/bcapprox/config"
	"github.com/katalvlaran/bcapprox/logging"
)

var rootCmd = &cobra.Command{
	Use:   "bcapprox",
	Short: "Adaptive-sampling betweenness centrality estimation",
	Long: "bcapprox estimates betweenness centrality of selected vertices by sampling " +
		"single-source shortest paths until a per-vertex threshold is reached, and " +
		"compares the estimates with exact ground truth.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error. SIGINT and
// SIGTERM cancel the running estimation.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .bcapprox.yaml)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")
	pf.String("metrics-file", "", "write Prometheus metrics in text format to this file")
	bindFlags(pf, map[string]string{
		"log.level":    "log-level",
		"log.format":   "log-format",
		"metrics_file": "metrics-file",
	})
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".bcapprox")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	config.ConfigureEnv(viper.GetViper())

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// bindFlags binds viper keys to flags of set; key → flag name.
func bindFlags(set *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := viper.BindPFlag(key, set.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bcapprox: bind flag %q: %v", name, err))
		}
	}
}

// setup loads the configuration and builds the logger for a command run.
func setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	log := logging.New(cfg.Log)
	if used := viper.ConfigFileUsed(); used != "" {
		log.Debug("config file loaded", "path", used)
	}

	return cfg, log, nil
}
