package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Jx2f/KeyHunter/internal/config"
	"github.com/Jx2f/KeyHunter/internal/core"
	"github.com/Jx2f/KeyHunter/pkg/logger"
)

var (
	cfgFile    string
	jsonOutput bool

	v = viper.New()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "keyhunter",
	Short: "Recover time-seeded Camellia session keys.",
	Long: `Recover a Camellia-256 session key derived from a millisecond-seeded
key stream, given the first 16 bytes of an encrypted handshake packet.
For example:
  keyhunter sweep --start-second=0 --end-second=86400 --key-depth=1024 f136f3392042f4cf3bf6b9cd6d79df94
  keyhunter depth --seed=5151 --handshake=game 8c66251ce1c3f389042f18930bd13655`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("KeyHunter exited")
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	d := config.DefaultConfig.Search
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.keyhunter.yaml)")
	flags.BoolVar(&jsonOutput, "json", false, "print the result as JSON")
	flags.String("log-level", config.DefaultConfig.LogLevel, "trace, debug, info, warn, error or silent")
	flags.String("handshake", string(d.Handshake), "expected handshake: login or game")
	flags.Int("signature-length", d.SignatureLength, "plaintext bytes compared, 5 or 9 (0 picks the strategy default)")
	flags.String("generator", string(d.Generator), "key stream generator: xorshift128, mt19937 or csharp")
	flags.IntP("threads", "t", d.Threads, "number of search workers")
	flags.Bool("batched", d.Batched, "decrypt 16 blocks per key schedule")

	bindFlags(rootCmd, map[string]string{
		"logLevel":               "log-level",
		"search.handshake":       "handshake",
		"search.signatureLength": "signature-length",
		"search.generator":       "generator",
		"search.threads":         "threads",
		"search.batched":         "batched",
	}, true)
}

func bindFlags(cmd *cobra.Command, keys map[string]string, persistent bool) {
	flags := cmd.Flags()
	if persistent {
		flags = cmd.PersistentFlags()
	}
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(".keyhunter")
	}

	v.SetEnvPrefix("KEYHUNTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("search.payload")

	if err := v.ReadInConfig(); err == nil {
		logger.Debug().Msgf("Using config file: %s", v.ConfigFileUsed())
	} else if cfgFile != "" {
		logger.Error().Err(err).Msg("Failed to read config file")
		os.Exit(1)
	}
}

// search loads the config for strategy, runs it and prints the outcome.
func search(strategy config.Strategy, args []string) error {
	v.Set("search.strategy", string(strategy))
	if len(args) > 0 {
		v.Set("search.payload", args[0])
	}
	c, err := config.LoadConfig(v)
	if err != nil {
		return err
	}
	logger.SetLevel(c.LogLevel)

	result, err := runService(c)
	if err != nil {
		return err
	}
	if jsonOutput {
		p, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(p))
	}
	if result.State == core.StateFound {
		logger.Info().Msg("Found key, exiting.")
	}
	return nil
}
