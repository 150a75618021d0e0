package config

import (
	"encoding/hex"
	"fmt"
	"os"

	eth_crypto "github.com/ethereum/go-ethereum/crypto"
)

type DAOAppConfig struct {
	Home string `mapstructure:"-"`

	// ListenAddress is the HTTP service bind address.
	ListenAddress string `mapstructure:"listen_address"`
	// IndexerDBPath is the sqlite file backing the event indexer. Relative
	// paths resolve under the home directory.
	IndexerDBPath string `mapstructure:"indexer_db_path"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	ChainID  string `mapstructure:"chain_id"`
}

func NewDAOAppConfig(home string) *DAOAppConfig {
	return &DAOAppConfig{
		Home:          home,
		ListenAddress: "0.0.0.0:26659",
		IndexerDBPath: "data/indexer.db",
		LogLevel:      "info",
		ChainID:       "dao-1",
	}
}

type Config struct {
	App *DAOAppConfig `mapstructure:"app"`
}

func DefaultConfig(home string) *Config {
	if len(home) == 0 {
		home = os.ExpandEnv("$HOME/.dao")
	}
	config := &Config{
		App: NewDAOAppConfig(home),
	}
	_ = os.MkdirAll(home+"/config", 0755)
	_ = os.MkdirAll(home+"/data", 0755)
	return config
}

func (cfg *Config) SetHome(home string) {
	cfg.App.Home = home
}

func (cfg *Config) ConfigFile() string {
	return cfg.App.Home + "/config/config.toml"
}

func (cfg *Config) GenesisFile() string {
	return cfg.App.Home + "/config/genesis.json"
}

func (cfg *Config) OwnerKeyFile() string {
	return cfg.App.Home + "/config/owner_priv_key"
}

func (cfg *DAOAppConfig) IndexerDB() string {
	if len(cfg.IndexerDBPath) > 0 && cfg.IndexerDBPath[0] == '/' {
		return cfg.IndexerDBPath
	}
	return cfg.Home + "/" + cfg.IndexerDBPath
}

func InitializeOwner(home string) (owner string) {
	priv, _ := eth_crypto.GenerateKey()
	d := eth_crypto.FromECDSA(priv)
	key := hex.EncodeToString(d)

	err := os.WriteFile(home+"/config/owner_priv_key", []byte(key), 0644)
	if err != nil {
		fmt.Println("Error writing private key to file:", err)
		return
	}
	owner = eth_crypto.PubkeyToAddress(priv.PublicKey).Hex()
	return
}
