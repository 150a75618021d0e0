package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

type GenesisHolder struct {
	Address string `json:"address"`
	Balance uint64 `json:"balance"`
	Locked  uint64 `json:"locked"`
	Name    string `json:"name"`
}

// GenesisDoc defines the initial conditions for a governance engine: the
// admin, the token holders seen by the tier classifier, and the parameters.
type GenesisDoc struct {
	GenesisTime time.Time       `json:"genesis_time"`
	ChainID     string          `json:"chain_id"`
	Admin       string          `json:"admin"`
	Holders     []GenesisHolder `json:"holders"`
	Params      GovParams       `json:"params"`
}

// SaveAs is a utility method for saving GenesisDoc as a JSON file.
func (genDoc *GenesisDoc) SaveAs(file string) error {
	genDocBytes, err := json.MarshalIndent(genDoc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, genDocBytes, 0o600)
}

func GenesisDocFromFile(file string) (*GenesisDoc, error) {
	dat, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	genDoc := new(GenesisDoc)
	if err := json.Unmarshal(dat, genDoc); err != nil {
		return nil, fmt.Errorf("invalid genesis file %v: %w", file, err)
	}
	if err := genDoc.ValidateAndComplete(); err != nil {
		return nil, err
	}
	return genDoc, nil
}

func (genDoc *GenesisDoc) ValidateAndComplete() error {
	if genDoc.ChainID == "" {
		return errors.New("genesis doc must include non-empty chain_id")
	}
	if genDoc.Admin == "" {
		return errors.New("genesis doc must include non-empty admin")
	}
	if !(genDoc.Params.VIPThreshold > genDoc.Params.GoldThreshold &&
		genDoc.Params.GoldThreshold > genDoc.Params.SilverThreshold &&
		genDoc.Params.SilverThreshold > genDoc.Params.BronzeThreshold &&
		genDoc.Params.BronzeThreshold > 0) {
		return errors.New("genesis tier thresholds must be strictly descending and non-zero")
	}
	if genDoc.Params.VotingDuration < SecondsPerDay {
		return fmt.Errorf("genesis voting duration below one day (got %v)", genDoc.Params.VotingDuration)
	}
	if !genDoc.Params.VoteMethod.Valid() {
		return fmt.Errorf("genesis vote method invalid (got %v)", genDoc.Params.VoteMethod)
	}
	if genDoc.Params.MaxCappedPercentage == 0 {
		genDoc.Params.MaxCappedPercentage = DefaultMaxCappedPercentage
	}
	if genDoc.GenesisTime.IsZero() {
		genDoc.GenesisTime = time.Now().Round(0).UTC()
	}
	return nil
}

func ExportGenesisFile(genesis *GenesisDoc, genFile string) error {
	if err := genesis.ValidateAndComplete(); err != nil {
		return err
	}
	return genesis.SaveAs(genFile)
}

const DAOModuleName = "dao"

const (
	DefaultVIPThreshold    = 100_000
	DefaultGoldThreshold   = 10_000
	DefaultSilverThreshold = 1_000
	DefaultBronzeThreshold = 100
	DefaultVotingDuration  = 7 * SecondsPerDay
)

func DefaultGenesisParams() GovParams {
	return GovParams{
		VIPThreshold:        DefaultVIPThreshold,
		GoldThreshold:       DefaultGoldThreshold,
		SilverThreshold:     DefaultSilverThreshold,
		BronzeThreshold:     DefaultBronzeThreshold,
		MaxCappedPercentage: DefaultMaxCappedPercentage,
		VotingDuration:      DefaultVotingDuration,
		VoteMethod:          VoteMethodTierPoint,
	}
}
