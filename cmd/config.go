package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/khanhnv2901/quickwins/internal/probe"
	"github.com/khanhnv2901/quickwins/internal/shared/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultTimeoutSeconds = int(constants.DefaultTimeout / time.Second)
	envPrefix             = "QUICKWINS"

	formatText = "text"
	formatJSON = "json"
)

// CLIConfig captures runtime configuration for a scan.
type CLIConfig struct {
	TimeoutSecs int
	UserAgent   string
	VerifyTLS   bool
	Parallel    bool
	Format      string
	NoColor     bool
	Verbose     bool
}

var cliConfig = newCLIConfig()

func newCLIConfig() *CLIConfig {
	return &CLIConfig{
		TimeoutSecs: defaultTimeoutSeconds,
		UserAgent:   constants.DefaultUserAgent,
		VerifyTLS:   false,
		Parallel:    false,
		Format:      formatText,
	}
}

// ProbeConfig translates the CLI settings into probe client settings.
func (c *CLIConfig) ProbeConfig() probe.Config {
	cfg := probe.DefaultConfig()
	if c.TimeoutSecs > 0 {
		cfg.Timeout = time.Duration(c.TimeoutSecs) * time.Second
	}
	if c.UserAgent != "" {
		cfg.UserAgent = c.UserAgent
	}
	cfg.VerifyCertificates = c.VerifyTLS
	return cfg
}

// Validate rejects settings the scan cannot honour.
func (c *CLIConfig) Validate() error {
	if c.TimeoutSecs <= 0 {
		return fmt.Errorf("timeout must be positive, got %d", c.TimeoutSecs)
	}
	switch strings.ToLower(c.Format) {
	case formatText, formatJSON:
		c.Format = strings.ToLower(c.Format)
	default:
		return fmt.Errorf("unsupported output format %q (use %s or %s)", c.Format, formatText, formatJSON)
	}
	return nil
}

func initViper() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".quickwins")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// applyConfigDefaults merges config file and environment values into the
// runtime config when the user did not explicitly set the corresponding flag.
func applyConfigDefaults(cmd *cobra.Command) {
	flags := cmd.Flags()

	if viper.IsSet("timeout") {
		applyIntDefault(flags, "timeout", viper.GetInt("timeout"), func(v int) {
			cliConfig.TimeoutSecs = v
		})
	}

	if viper.IsSet("user_agent") {
		applyStringDefault(flags, "user-agent", viper.GetString("user_agent"), func(v string) {
			cliConfig.UserAgent = v
		})
	}

	if viper.IsSet("verify_tls") {
		applyBoolDefault(flags, "verify-tls", viper.GetBool("verify_tls"), func(v bool) {
			cliConfig.VerifyTLS = v
		})
	}

	if viper.IsSet("parallel") {
		applyBoolDefault(flags, "parallel", viper.GetBool("parallel"), func(v bool) {
			cliConfig.Parallel = v
		})
	}

	if viper.IsSet("format") {
		applyStringDefault(flags, "format", viper.GetString("format"), func(v string) {
			cliConfig.Format = v
		})
	}

	if viper.IsSet("no_color") {
		applyBoolDefault(flags, "no-color", viper.GetBool("no_color"), func(v bool) {
			cliConfig.NoColor = v
		})
	}
}

func applyIntDefault(flags *pflag.FlagSet, name string, value int, setter func(int)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

func applyBoolDefault(flags *pflag.FlagSet, name string, value bool, setter func(bool)) {
	if flags == nil || setter == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}

func applyStringDefault(flags *pflag.FlagSet, name, value string, setter func(string)) {
	if flags == nil || setter == nil || value == "" {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	setter(value)
}
