package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type WheelConfig interface {
	SpinDuration() time.Duration
	Easing() string
}

type LoggerConfig interface {
	Level() string
	Dir() string
	File() bool
}

type HTTPConfig interface {
	Address() string
}
