package providers

import (
	"dsatrack/internal/structures"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("analytics.timezone", "UTC")
	v.SetDefault("analytics.mostRevisedLimit", 10)
	v.SetDefault("cache.ttl", 30*time.Second)
	v.SetDefault("revision.firstInterval", 24*time.Hour)
	v.SetDefault("revision.interval", 72*time.Hour)
	v.SetDefault("revision.sweepSpec", "0 0 * * *")

	v.BindEnv("logger.level", "DSA_LOG_LEVEL")
	v.BindEnv("analytics.timezone", "DSA_TIMEZONE")
	v.BindEnv("persistence.saveInterval", "DSA_SAVE_INTERVAL")
	v.BindEnv("cache.enabled", "DSA_CACHE_ENABLED")
	v.BindEnv("cache.size", "DSA_CACHE_SIZE")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "DSATrack"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
