// Package cli - терминальный клиент firedash. Каждая команда выводит одно
// представление дашборда в виде текстовых таблиц.
package cli

import (
	"fmt"
	"strings"

	"github.com/shenikar/fire_dashboard/internal/dashboard"
	"github.com/shenikar/fire_dashboard/internal/gateway"
	"github.com/shenikar/fire_dashboard/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "FIREDASH"

// Ключи конфигурации клиента
const (
	keyBaseURL  = "base_url"
	keyTimeout  = "timeout"
	keyLogLevel = "log_level"
	keyDays     = "days"
)

type app struct {
	v      *viper.Viper
	logger *logrus.Logger
	dash   *dashboard.Dashboard
}

// NewRootCommand собирает дерево команд firedash со своим экземпляром
// viper, поэтому в одном процессе может жить несколько деревьев.
func NewRootCommand() *cobra.Command {
	a := &app{v: newViper()}
	var configPath string

	root := &cobra.Command{
		Use:           "firedash",
		Short:         "firedash shows the fire department dashboard in a terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, configPath)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (yaml, toml or json)")
	flags.String("base-url", "http://localhost:8080", "backend base URL")
	flags.Duration("timeout", 0, "per-request timeout, 0 keeps the transport default")
	flags.String("log-level", "warn", "log level")
	mustBind(a.v, keyBaseURL, flags.Lookup("base-url"))
	mustBind(a.v, keyTimeout, flags.Lookup("timeout"))
	mustBind(a.v, keyLogLevel, flags.Lookup("log-level"))

	root.AddCommand(
		a.overviewCommand(),
		a.incidentsCommand(),
		a.incidentCommand(),
		a.clearCommand(),
		a.reportCommand(),
		a.stationsCommand(),
		a.stationCommand(),
		a.rosterCommand(),
		a.addFirefighterCommand(),
	)
	return root
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(keyDays, 14)
	return v
}

func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", key, err))
	}
}

// init читает необязательный файл конфигурации и собирает шлюз. Флаги
// важнее окружения, окружение важнее файла.
func (a *app) init(cmd *cobra.Command, configPath string) error {
	if configPath != "" {
		a.v.SetConfigFile(configPath)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	baseURL := a.v.GetString(keyBaseURL)
	if baseURL == "" {
		return fmt.Errorf("%s must not be empty", keyBaseURL)
	}
	timeout := a.v.GetDuration(keyTimeout)
	if timeout < 0 {
		return fmt.Errorf("%s must not be negative, got %s", keyTimeout, timeout)
	}

	a.logger = logger.NewConsole(a.v.GetString(keyLogLevel), cmd.ErrOrStderr())
	a.logger.WithFields(logrus.Fields{
		"base_url": baseURL,
		"timeout":  timeout,
	}).Debug("Using backend")

	a.dash = dashboard.New(gateway.NewClient(baseURL, timeout, a.logger), a.logger)
	return nil
}
