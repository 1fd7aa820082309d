// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	validLogLevels     = []string{"debug", "info", "warn", "error", "fatal"}
	validDrivers       = []string{"sqlite", "postgres"}
	validAuthProviders = []string{"local", "remote"}
)

func genSecret() string {
	b := make([]byte, 64)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.domain", "host_domain")

	v.BindEnv("jwt.secret", "jwt_secret")

	v.BindEnv("db.driver", "db_driver")
	v.BindEnv("db.dsn", "db_dsn")

	v.BindEnv("auth.provider", "auth_provider")
	v.BindEnv("auth.remote.url", "auth_remote_url")
	v.BindEnv("auth.remote.api_key", "auth_remote_api_key")

	v.BindEnv("assistant.url", "assistant_url")
	v.BindEnv("assistant.api_key", "assistant_api_key")
	v.BindEnv("assistant.model", "assistant_model")

	v.BindEnv("renderer.command", "renderer_command")
	v.BindEnv("renderer.timeout", "renderer_timeout")
	v.BindEnv("renderer.output_dir", "renderer_output_dir")
	v.BindEnv("renderer.quality", "renderer_quality")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.domain", "localhost")

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "notes.db")

	v.SetDefault("auth.provider", "local")
	v.SetDefault("auth.rate_limit.rps", 5)
	v.SetDefault("auth.rate_limit.burst", 10)

	v.SetDefault("assistant.model", "gpt-4o-mini")

	v.SetDefault("renderer.command", "manim")
	v.SetDefault("renderer.timeout", 180)
	v.SetDefault("renderer.output_dir", "rendered_videos")
	v.SetDefault("renderer.quality", "-qm")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if v.GetString("jwt.secret") == "" {
		fmt.Println("WARNING: You haven't set a JWT secret, so it has been generated for you. Please set it as an environment variable or in the config.toml file.\nYour random JWT secret:\n\n" + genSecret() + "\n\nPaste it into your config.toml file.")
		os.Exit(0)
	}

	if !slices.Contains(validDrivers, v.GetString("db.driver")) {
		return errors.New("invalid db driver provided")
	}

	if v.GetString("db.dsn") == "" {
		return errors.New("db dsn can't be empty")
	}

	switch p := v.GetString("auth.provider"); p {
	case "local":
	case "remote":
		if v.GetString("auth.remote.url") == "" {
			return errors.New("auth.remote.url can't be empty when the remote provider is selected")
		}
	default:
		if !slices.Contains(validAuthProviders, p) {
			return errors.New("invalid auth provider provided")
		}
	}

	if v.GetInt("renderer.timeout") <= 0 {
		return errors.New("renderer.timeout must be bigger than 0")
	}

	if v.GetString("assistant.url") == "" {
		fmt.Println("[WARNING]: No assistant.url configured. The AI assistant will always answer with the local fallback response")
	}

	return nil
}
