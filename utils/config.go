package utils

import (
	"fmt"
	"io/ioutil"
	"runtime"

	yaml "gopkg.in/yaml.v2"
)

const DefaultListenPort = 6500
const DefaultMaxGrpcRecvMsgSize = 100 * 1024 * 1024

// Config holds the server settings loaded from the config.yaml
// document. Zero values are replaced with defaults so a missing
// config file still yields a usable server.
type Config struct {
	ListenPort         int      `yaml:"listen_port"`
	MaxGrpcRecvMsgSize int      `yaml:"max_grpc_recv_msg_size"`
	Workers            int      `yaml:"workers"`
	MemcacheServers    []string `yaml:"memcache_servers"`
	PostgresDSN        string   `yaml:"postgres_dsn"`
	Verbose            bool     `yaml:"verbose"`
}

func DefaultConfig() *Config {
	return &Config{
		ListenPort:         DefaultListenPort,
		MaxGrpcRecvMsgSize: DefaultMaxGrpcRecvMsgSize,
		Workers:            runtime.NumCPU(),
	}
}

func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Error in reading config file %s: %v", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("Error in unmarshalling config file %s: %v", path, err)
	}

	if cfg.ListenPort <= 0 {
		cfg.ListenPort = DefaultListenPort
	}
	if cfg.MaxGrpcRecvMsgSize <= 0 {
		cfg.MaxGrpcRecvMsgSize = DefaultMaxGrpcRecvMsgSize
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return cfg, nil
}
