// Package config loads runtime configuration from defaults, environment
// variables, and an optional config file.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime settings shared by the local and SSH binaries.
type Config struct {
	// SSH server
	SSHHost     string
	SSHPort     string
	SSHHostKey  string
	WebHost     string
	WebPort     string
	SSHDisplay  string // Hostname shown on the landing page
	UsersFile   string // JSON user store path
	LogFile     string // Rotating log file for the SSH server; empty = stderr
	LogMaxSize  int    // Megabytes per log file before rotation
	LogMaxAge   int    // Days to retain rotated logs
	AudioOn     bool   // Local binary only; the SSH server has no audio sink
	MusicOn     bool
}

// Load reads configuration with precedence: explicit config file values,
// then SSHBREAK_* environment variables, then defaults. A missing config
// file is not an error.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ssh_host", "::")
	v.SetDefault("ssh_port", "2222")
	v.SetDefault("ssh_host_key", "keys/host_key")
	v.SetDefault("web_host", "0.0.0.0")
	v.SetDefault("web_port", "8080")
	v.SetDefault("ssh_display_host", "localhost")
	v.SetDefault("users_file", "users.json")
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size", 10)
	v.SetDefault("log_max_age", 14)
	v.SetDefault("audio", true)
	v.SetDefault("music", true)

	v.SetEnvPrefix("sshbreak")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("sshbreak")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/sshbreak")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	return Config{
		SSHHost:    v.GetString("ssh_host"),
		SSHPort:    v.GetString("ssh_port"),
		SSHHostKey: v.GetString("ssh_host_key"),
		WebHost:    v.GetString("web_host"),
		WebPort:    v.GetString("web_port"),
		SSHDisplay: v.GetString("ssh_display_host"),
		UsersFile:  v.GetString("users_file"),
		LogFile:    v.GetString("log_file"),
		LogMaxSize: v.GetInt("log_max_size"),
		LogMaxAge:  v.GetInt("log_max_age"),
		AudioOn:    v.GetBool("audio"),
		MusicOn:    v.GetBool("music"),
	}, nil
}
