package main

import (
	"fmt"
	"runtime"

	goerrors "github.com/go-errors/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "lnkinfo"

type config struct {
	Workers int
	Pretty  bool
	Verbose bool
	All     bool
}

func registerFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.String("config", "", "optional config file (yaml, json or toml)")
	flags.Int("workers", runtime.NumCPU(), "number of files decoded concurrently")
	flags.Bool("pretty", false, "indent the JSON output")
	flags.BoolP("verbose", "v", false, "print stack traces for failures")
	flags.Bool("all", false, "report files that are not shortcuts")
}

// loadConfig resolves settings from flags, LNKINFO_* environment variables
// and the optional config file, in that order of precedence.
func loadConfig(cmd *cobra.Command) (config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config{}, err
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return configFrom(v), goerrors.Wrap(fmt.Errorf("reading config file %s: %w", path, err), 0)
		}
	}
	return configFrom(v), nil
}

func configFrom(v *viper.Viper) config {
	return config{
		Workers: v.GetInt("workers"),
		Pretty:  v.GetBool("pretty"),
		Verbose: v.GetBool("verbose"),
		All:     v.GetBool("all"),
	}
}
