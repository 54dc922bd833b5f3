package structures

import (
	"net/http"
	"time"
)

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	FilePath     string        `yaml:"filePath" validate:"required|unixPath"`
	SaveInterval time.Duration `yaml:"saveInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// AnalyticsConfig controls calendar-day bucketing for streaks and the weekly histogram.
type AnalyticsConfig struct {
	Timezone         string `yaml:"timezone" validate:"required|timezone"`
	MostRevisedLimit int    `yaml:"mostRevisedLimit"`
}

type RevisionConfig struct {
	FirstInterval time.Duration `yaml:"firstInterval"`
	Interval      time.Duration `yaml:"interval"`
	SweepSpec     string        `yaml:"sweepSpec"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server          `yaml:"webServer"`
	Persistence Persistence     `yaml:"persistence"`
	Logger      LoggerConfig    `yaml:"logger"`
	Cache       CacheConfig     `yaml:"cache"`
	Metrics     MetricsConfig   `yaml:"metrics"`
	Analytics   AnalyticsConfig `yaml:"analytics"`
	Revision    RevisionConfig  `yaml:"revision"`
}

// Location resolves the configured analytics timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	if c == nil || c.Analytics.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Analytics.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Route struct {
	Method  string
	Url     string
	Handler http.Handler
}

// Pattern returns the ServeMux pattern for the route, e.g. "GET /problems/{id}".
func (r Route) Pattern() string {
	return r.Method + " " + r.Url
}
