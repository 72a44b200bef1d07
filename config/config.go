package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type APIConfig struct {
	URL string `mapstructure:"url"`
}

type ChainConfig struct {
	RPCURL         string `mapstructure:"rpc_url"`
	ChainID        int64  `mapstructure:"chain_id"`
	CustodyAddress string `mapstructure:"custody_address"`
}

type WalletConfig struct {
	PrivateKey string `mapstructure:"private_key"`
}

type RedisConfig struct {
	URL string `mapstructure:"url"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type Config struct {
	API    APIConfig    `mapstructure:"api"`
	Chain  ChainConfig  `mapstructure:"chain"`
	Wallet WalletConfig `mapstructure:"wallet"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Server ServerConfig `mapstructure:"server"`
}

// Load reads configuration from an optional config file with environment
// overrides, e.g. SEIMONEY_API_URL. The API base URL is required; starting
// without it is a configuration error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("chain.rpc_url", "https://evm-rpc-testnet.sei-apis.com")
	v.SetDefault("chain.chain_id", 1328)
	v.SetDefault("chain.custody_address", "0xa73cC11da965D1Fc17f06EC4F635477022cF308a")
	v.SetDefault("server.address", ":9000")

	// environment overrides, e.g. SEIMONEY_API_URL
	v.SetEnvPrefix("SEIMONEY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{"api.url", "chain.rpc_url", "chain.chain_id", "chain.custody_address", "wallet.private_key", "redis.url", "server.address"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env: %w", err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if c.API.URL == "" {
		return nil, fmt.Errorf("missing required configuration: SEIMONEY_API_URL")
	}

	return &c, nil
}
