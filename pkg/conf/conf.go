package conf

import (
	"log"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var Conf *viper.Viper

// InitConf loads the yaml configuration and keeps watching it so that
// non-structural settings (log levels, report directory) can change without
// a restart. Missing file is tolerated: defaults below keep the service
// runnable in dev.
func InitConf(path string) {
	Conf = viper.New()
	Conf.SetConfigFile(path)

	Conf.SetDefault("server.port", 12581)
	Conf.SetDefault("frontend.host", "http://localhost:5173")
	Conf.SetDefault("database.host", "127.0.0.1")
	Conf.SetDefault("database.port", 3306)
	Conf.SetDefault("database.user", "root")
	Conf.SetDefault("database.password", "")
	Conf.SetDefault("database.name", "pumpsizer")
	Conf.SetDefault("database.params", "charset=utf8mb4&parseTime=True&loc=Local")
	Conf.SetDefault("log.dir", "./logs")
	Conf.SetDefault("log.maxSizeMB", 64)
	Conf.SetDefault("log.maxBackups", 7)
	Conf.SetDefault("log.maxAgeDays", 30)
	Conf.SetDefault("reports.dir", "./uploads")

	// PUMPSIZER_DATABASE_PASSWORD and friends override the file, so secrets
	// can live in the environment (or a .env picked up at startup).
	Conf.SetEnvPrefix("PUMPSIZER")
	Conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	Conf.AutomaticEnv()

	if err := Conf.ReadInConfig(); err != nil {
		log.Printf("read config %s failed, using defaults: %v", path, err)
		return
	}

	Conf.WatchConfig()
	Conf.OnConfigChange(func(e fsnotify.Event) {
		log.Printf("config file reloaded: %s", e.Name)
	})
}
