package config

import "github.com/sirupsen/logrus"

// Metrics contains the config values for prometheus
type Metrics struct {
	Enable bool   `default:"false"    yaml:"enable"`
	Path   string `default:"/metrics" yaml:"path"`
}

// IsEnabled reports whether metrics collection is turned on.
func (c *Metrics) IsEnabled() bool {
	return c.Enable
}

// LogConfig writes this config's URL path to logger at startup.
func (c *Metrics) LogConfig(logger *logrus.Entry) {
	logger.Infof("url path: %s", c.Path)
}
