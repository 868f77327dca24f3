package env

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"wheel_backend/internal/config"

	"gopkg.in/yaml.v3"
)

const (
	logLevelEnvName = "LOG_LEVEL"

	defaultSpinDuration = 5 * time.Second
	defaultEasing       = "cubic-bezier(0.17, 0.67, 0.21, 0.99)"
	defaultLogLevel     = "info"
	defaultLogDir       = "logs"
)

// fileConfig Структура config.yaml
type fileConfig struct {
	Logger struct {
		Level string `yaml:"level"`
		Dir   string `yaml:"dir"`
		File  bool   `yaml:"file"`
	} `yaml:"logger"`
	Wheel struct {
		SpinDuration string `yaml:"spin_duration"`
		Easing       string `yaml:"easing"`
	} `yaml:"wheel"`
}

// readYAML Читает config.yaml. Отсутствующий файл - не ошибка, берутся значения по умолчанию
func readYAML(path string) (*fileConfig, error) {
	var fc fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &fc, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &fc, nil
}

type wheelConfig struct {
	spinDuration time.Duration
	easing       string
}

// NewWheelConfigFromYAML Настройки анимации колеса.
// Одна и та же длительность используется таймером показа результата и CSS-переходом на странице
func NewWheelConfigFromYAML(path string) (config.WheelConfig, error) {
	fc, err := readYAML(path)
	if err != nil {
		return nil, err
	}

	cfg := &wheelConfig{
		spinDuration: defaultSpinDuration,
		easing:       defaultEasing,
	}

	if raw := strings.TrimSpace(fc.Wheel.SpinDuration); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid wheel.spin_duration %q: %w", raw, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("wheel.spin_duration must be positive, got %s", d)
		}
		cfg.spinDuration = d
	}

	if easing := strings.TrimSpace(fc.Wheel.Easing); easing != "" {
		cfg.easing = easing
	}

	return cfg, nil
}

func (c *wheelConfig) SpinDuration() time.Duration {
	return c.spinDuration
}

func (c *wheelConfig) Easing() string {
	return c.easing
}

type loggerConfig struct {
	level string
	dir   string
	file  bool
}

// NewLoggerConfigFromYAML Настройки логгера. LOG_LEVEL из окружения перекрывает файл
func NewLoggerConfigFromYAML(path string) (config.LoggerConfig, error) {
	fc, err := readYAML(path)
	if err != nil {
		return nil, err
	}

	cfg := &loggerConfig{
		level: defaultLogLevel,
		dir:   defaultLogDir,
		file:  fc.Logger.File,
	}
	if fc.Logger.Level != "" {
		cfg.level = fc.Logger.Level
	}
	if lvl := os.Getenv(logLevelEnvName); lvl != "" {
		cfg.level = lvl
	}
	if fc.Logger.Dir != "" {
		cfg.dir = fc.Logger.Dir
	}

	return cfg, nil
}

func (c *loggerConfig) Level() string {
	return c.level
}

func (c *loggerConfig) Dir() string {
	return c.dir
}

func (c *loggerConfig) File() bool {
	return c.file
}
