package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

type TickConfigServer struct {
	Port int `yaml:"port"`
}

type TickConfigTimers struct {
	Count int `yaml:"count"`
}

type TickConfigHistory struct {
	Enabled  bool   `yaml:"enabled"`
	Database string `yaml:"database"`
	Limit    int    `yaml:"limit"`
}

type TickConfig struct {
	Server  TickConfigServer  `yaml:"server"`
	Timers  TickConfigTimers  `yaml:"timers"`
	History TickConfigHistory `yaml:"history"`
}

func NewDefaultConfig() TickConfig {
	return TickConfig{
		Server: TickConfigServer{
			Port: 10000,
		},
		Timers: TickConfigTimers{
			Count: 2,
		},
		History: TickConfigHistory{
			Enabled:  true,
			Database: "./tickboard.db",
			Limit:    50,
		},
	}
}

func LoadConfig(path string) (*TickConfig, error) {
	cfg := NewDefaultConfig()

	file, err := os.Open(path)
	if !os.IsNotExist(err) {
		if err != nil {
			return nil, err
		}

		defer file.Close()

		err = yaml.NewDecoder(file).Decode(&cfg)
		if err != nil {
			return nil, err
		}
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &cfg, cfg.Store(path)
}

func (c *TickConfig) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port)
	}

	// timer_N status labels only sort in timer order while N stays
	// single-digit, so the count is capped at 9
	if c.Timers.Count < 1 || c.Timers.Count > 9 {
		return fmt.Errorf("timers.count must be 1-9, got %d", c.Timers.Count)
	}

	if c.History.Enabled {
		if c.History.Database == "" {
			return fmt.Errorf("history.database is empty")
		}

		if c.History.Limit < 1 {
			return fmt.Errorf("history.limit must be >= 1, got %d", c.History.Limit)
		}
	}

	return nil
}

func (c *TickConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func (c *TickConfig) Store(path string) error {
	def := NewDefaultConfig()

	comments := yaml.CommentMap{
		"$.server.port": {yaml.HeadComment(fmt.Sprintf(" port to run tickboard on (default: %v)", def.Server.Port))},

		"$.timers.count": {yaml.HeadComment(fmt.Sprintf(" fixed number of timers, 1-9 (default: %v)", def.Timers.Count))},

		"$.history.enabled":  {yaml.HeadComment(fmt.Sprintf(" if timer actions should be recorded (default: %v)", def.History.Enabled))},
		"$.history.database": {yaml.HeadComment(fmt.Sprintf(" sqlite database for the action log (default: %v)", def.History.Database))},
		"$.history.limit":    {yaml.HeadComment(fmt.Sprintf(" default amount of actions returned by /history (default: %v)", def.History.Limit))},
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	defer file.Close()

	return yaml.NewEncoder(file, yaml.WithComment(comments)).Encode(c)
}
