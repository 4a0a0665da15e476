// Copyright (c) 2020 Siemens AG
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
//
// Author(s): Jonas Plum

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/imdario/mergo"
	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/forensicanalysis/timesketch"
	"github.com/forensicanalysis/timesketch/session"
)

// rcFileName is looked up in the home directory when --config is unset.
const rcFileName = ".timesketchrc"

// passwordEnv names the environment variable holding the password.
const passwordEnv = "TIMESKETCH_PASSWORD"

// Config is the rc file configuration of the command line tool.
type Config struct {
	Host       string `toml:"host"`
	Username   string `toml:"username"`
	AuthMode   string `toml:"auth_mode"`
	SkipVerify bool   `toml:"skip_verify"`
}

// DefaultConfig fills fields the rc file leaves out.
var DefaultConfig = Config{AuthMode: string(session.AuthUserPass)}

// LoadConfig reads the rc file at path. A missing file yields the
// defaults.
func LoadConfig(fs afero.Fs, path string) (Config, error) {
	config := Config{}

	data, err := afero.ReadFile(fs, path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return config, err
	default:
		if err := toml.Unmarshal(data, &config); err != nil {
			return config, errors.Wrapf(err, "could not parse config file %s", path)
		}
	}

	if err := mergo.Merge(&config, DefaultConfig); err != nil {
		return config, err
	}
	return config, nil
}

// Version is the timesketch version commandline subcommand
func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client and server version",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			version, err := client.Version(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(version)
			return nil
		},
	}
}

// newClient builds an authenticated API client from flags, the rc file
// and the environment.
func newClient(cmd *cobra.Command) (*timesketch.Client, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			configPath = filepath.Join(home, rcFileName)
		}
	}

	config, err := LoadConfig(afero.NewOsFs(), configPath)
	if err != nil {
		return nil, err
	}
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		config.Host = host
	}
	if username, _ := cmd.Flags().GetString("username"); username != "" {
		config.Username = username
	}
	if config.Host == "" {
		return nil, errors.New("no server host given, use --host or the rc file")
	}

	logger := setupLogger(cmd)

	sess, err := session.New(cmd.Context(), session.Config{
		HostURI:    config.Host,
		Username:   config.Username,
		Password:   os.Getenv(passwordEnv),
		AuthMode:   session.AuthMode(config.AuthMode),
		SkipVerify: config.SkipVerify,
	})
	if err != nil {
		return nil, err
	}

	return timesketch.NewClient(config.Host, sess, timesketch.WithLogger(logger))
}

func setupLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	}))
	slog.SetDefault(logger)
	return logger
}
