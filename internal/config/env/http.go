package env

import (
	"fmt"
	"net"
	"os"
	"wheel_backend/internal/config"
)

const (
	httpAddrEnvName = "HTTP_ADDR"
	defaultHTTPAddr = ":8080"
)

type httpConfig struct {
	address string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	address := os.Getenv(httpAddrEnvName)
	if len(address) == 0 {
		address = defaultHTTPAddr
	}

	if _, _, err := net.SplitHostPort(address); err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", httpAddrEnvName, address, err)
	}

	return &httpConfig{
		address: address,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.address
}
