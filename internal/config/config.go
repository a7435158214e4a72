package config

import "http_peek/types"

type Config interface {
	Mode() types.ServerMode

	HTTPPort() string
	UpstreamAddress() string

	BufferSize() int

	PprofEnabled() bool
	PprofPort() string
}

func Load() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) Mode() types.ServerMode  { return c.mode }
func (c *config) HTTPPort() string        { return c.httpPort }
func (c *config) UpstreamAddress() string { return c.upstreamAddress }
func (c *config) BufferSize() int         { return c.bufferSize }
func (c *config) PprofEnabled() bool      { return c.pprofEnabled }
func (c *config) PprofPort() string       { return c.pprofPort }
