// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"gioui.org/x/slider/timeofday"
)

// Settings is one immutable snapshot of the picker settings. Reloads
// build a fresh snapshot, so a Settings value is safe to read on the
// frame loop while the watcher keeps running.
type Settings struct {
	StepMinutes  int
	Format24h    bool
	InitialTime  string
	WindowWidth  int
	WindowHeight int
}

// InitialSeconds is the starting slider position in seconds since
// midnight. An empty initial time means the current time.
func (s Settings) InitialSeconds() float32 {
	if s.InitialTime != "" {
		if at, err := time.Parse("15:04", s.InitialTime); err == nil {
			return timeofday.Seconds(at)
		}
	}
	return timeofday.Seconds(time.Now())
}

// Config reads the picker settings from an optional YAML file that
// may be edited while the picker runs.
type Config struct {
	logger *zap.SugaredLogger
	file   *viper.Viper

	mu              sync.Mutex
	current         Settings
	reloadConsumers []chan Settings
}

const (
	configName = "config"

	configKeyStepMinutes  = "step_minutes"
	configKeyFormat24h    = "format_24h"
	configKeyInitialTime  = "initial_time"
	configKeyWindowWidth  = "window.width"
	configKeyWindowHeight = "window.height"

	defaultStepMinutes  = 1
	defaultWindowWidth  = 400
	defaultWindowHeight = 160
)

// NewConfig creates the config and its defaults, looking for
// config.yaml in dir. It does not read the file; call Load.
func NewConfig(logger *zap.SugaredLogger, dir string) *Config {
	logger = logger.Named("config")

	file := viper.New()
	file.SetConfigName(configName)
	file.SetConfigType("yaml")
	file.AddConfigPath(dir)

	file.SetDefault(configKeyStepMinutes, defaultStepMinutes)
	file.SetDefault(configKeyFormat24h, true)
	file.SetDefault(configKeyInitialTime, "")
	file.SetDefault(configKeyWindowWidth, defaultWindowWidth)
	file.SetDefault(configKeyWindowHeight, defaultWindowHeight)

	return &Config{
		logger:          logger,
		file:            file,
		reloadConsumers: []chan Settings{},
	}
}

// Load reads the config file and replaces the current settings. A
// missing file is fine, the defaults apply; a malformed one is an
// error.
func (c *Config) Load() error {
	c.logger.Debugw("Loading config")

	if err := c.file.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			c.logger.Warnw("Failed to read config file", "error", err)
			return fmt.Errorf("read config file: %w", err)
		}
		c.logger.Debugw("No config file found, using defaults")
	}

	s := c.populate()

	c.mu.Lock()
	c.current = s
	c.mu.Unlock()

	c.logger.Infow("Loaded config",
		"stepMinutes", s.StepMinutes,
		"format24h", s.Format24h,
		"initialTime", s.InitialTime)

	return nil
}

// populate builds a settings snapshot from the file values, falling
// back to defaults for values the picker can't use.
func (c *Config) populate() Settings {
	var s Settings

	s.StepMinutes = c.file.GetInt(configKeyStepMinutes)
	if s.StepMinutes <= 0 || s.StepMinutes > 720 {
		c.logger.Warnw("Ignoring invalid step",
			"key", configKeyStepMinutes,
			"value", s.StepMinutes,
			"default", defaultStepMinutes)
		s.StepMinutes = defaultStepMinutes
	}

	s.Format24h = c.file.GetBool(configKeyFormat24h)

	s.InitialTime = c.file.GetString(configKeyInitialTime)
	if s.InitialTime != "" {
		if _, err := time.Parse("15:04", s.InitialTime); err != nil {
			c.logger.Warnw("Ignoring invalid initial time, starting at the current time",
				"key", configKeyInitialTime,
				"value", s.InitialTime)
			s.InitialTime = ""
		}
	}

	s.WindowWidth = c.file.GetInt(configKeyWindowWidth)
	s.WindowHeight = c.file.GetInt(configKeyWindowHeight)
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		c.logger.Warnw("Ignoring invalid window size",
			"width", s.WindowWidth,
			"height", s.WindowHeight)
		s.WindowWidth = defaultWindowWidth
		s.WindowHeight = defaultWindowHeight
	}

	return s
}

// Settings returns the current snapshot.
func (c *Config) Settings() Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// SubscribeToChanges returns a channel that receives the new settings
// after every config reload.
func (c *Config) SubscribeToChanges() chan Settings {
	ch := make(chan Settings)
	c.mu.Lock()
	c.reloadConsumers = append(c.reloadConsumers, ch)
	c.mu.Unlock()
	return ch
}

// Watch reloads the config whenever its file changes on disk. Editors
// fire several events per save, so reloads are rate limited.
func (c *Config) Watch() {
	const (
		minTimeBetweenReloads = 500 * time.Millisecond
		delayBeforeReload     = 50 * time.Millisecond
	)

	lastReload := time.Now()

	c.file.WatchConfig()
	c.file.OnConfigChange(func(event fsnotify.Event) {
		now := time.Now()
		if !lastReload.Add(minTimeBetweenReloads).Before(now) {
			return
		}
		lastReload = now

		c.logger.Debugw("Config file changed", "event", event)

		// Let the editor finish writing the file.
		time.Sleep(delayBeforeReload)

		if err := c.Load(); err != nil {
			c.logger.Warnw("Failed to reload config", "error", err)
			return
		}

		c.onReloaded()
	})
}

func (c *Config) onReloaded() {
	c.logger.Debugw("Notifying consumers about reloaded config")

	c.mu.Lock()
	s := c.current
	consumers := append([]chan Settings(nil), c.reloadConsumers...)
	c.mu.Unlock()

	for _, consumer := range consumers {
		consumer <- s
	}
}
