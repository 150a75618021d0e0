package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	app_config "github.com/calehh/dao-app/config"
	"github.com/calehh/dao-app/types"
	"github.com/spf13/cobra"
)

const (
	flagOverwrite = "overwrite"
	flagChainID   = "chain-id"
	flagHome      = "home"
)

type printInfo struct {
	ChainID    string          `json:"chain_id" yaml:"chain_id"`
	Admin      string          `json:"admin" yaml:"admin"`
	AppMessage json.RawMessage `json:"app_message" yaml:"app_message"`
}

func displayInfo(info printInfo) error {
	out, err := json.MarshalIndent(info, "", " ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(os.Stderr, "%s\n", out)

	return err
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize owner key, genesis and application configuration files",
	Long:  `Initialize the home directory with an owner key, a genesis document and a config file.`,
	Args:  cobra.ExactArgs(0),
	RunE:  initRun,
}

func init() {
	initCmd.Flags().BoolP(flagOverwrite, "o", false, "overwrite the genesis.json file")
	initCmd.Flags().String(flagChainID, "", "genesis file chain-id, if left blank will be randomly created")
	initCmd.Flags().String(flagHome, "", "home directory")
}

func initRun(cmd *cobra.Command, args []string) error {
	home, _ := cmd.Flags().GetString(flagHome)
	chainID, _ := cmd.Flags().GetString(flagChainID)
	overwrite, _ := cmd.Flags().GetBool(flagOverwrite)

	if chainID == "" {
		chainID = fmt.Sprintf("dao-chain-%v", rand.Uint64())
	}
	appConfig := app_config.DefaultConfig(home)
	appConfig.App.ChainID = chainID

	genFile := appConfig.GenesisFile()
	if _, err := os.Stat(genFile); err == nil && !overwrite {
		return fmt.Errorf("genesis file already exists: %v", genFile)
	}

	owner := app_config.InitializeOwner(appConfig.App.Home)

	appGenesis := &types.GenesisDoc{
		GenesisTime: time.Now(),
		ChainID:     chainID,
		Admin:       owner,
		Holders:     []types.GenesisHolder{},
		Params:      types.DefaultGenesisParams(),
	}
	if err := types.ExportGenesisFile(appGenesis, genFile); err != nil {
		return fmt.Errorf("failed to export genesis file %v", err)
	}
	app_config.WriteConfigFile(filepath.Join(appConfig.App.Home, "config", "config.toml"), appConfig)
	dat, _ := json.Marshal(appGenesis)
	return displayInfo(printInfo{ChainID: chainID, Admin: owner, AppMessage: dat})
}
