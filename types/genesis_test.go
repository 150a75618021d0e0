package types

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func validGenesisDoc() *GenesisDoc {
	return &GenesisDoc{
		ChainID: "dao-test",
		Admin:   "0x00000000000000000000000000000000000000a1",
		Holders: []GenesisHolder{
			{Address: "0x0000000000000000000000000000000000000001", Balance: 1000},
		},
		Params: DefaultGenesisParams(),
	}
}

func TestGenesisValidate(t *testing.T) {
	doc := validGenesisDoc()
	require.Nil(t, doc.ValidateAndComplete())
	require.False(t, doc.GenesisTime.IsZero())

	doc = validGenesisDoc()
	doc.ChainID = ""
	require.NotNil(t, doc.ValidateAndComplete())

	doc = validGenesisDoc()
	doc.Admin = ""
	require.NotNil(t, doc.ValidateAndComplete())

	doc = validGenesisDoc()
	doc.Params.GoldThreshold = doc.Params.VIPThreshold
	require.NotNil(t, doc.ValidateAndComplete())

	doc = validGenesisDoc()
	doc.Params.BronzeThreshold = 0
	require.NotNil(t, doc.ValidateAndComplete())

	doc = validGenesisDoc()
	doc.Params.VotingDuration = SecondsPerDay - 1
	require.NotNil(t, doc.ValidateAndComplete())

	doc = validGenesisDoc()
	doc.Params.VoteMethod = VoteMethodUnknown
	require.NotNil(t, doc.ValidateAndComplete())

	doc = validGenesisDoc()
	doc.Params.MaxCappedPercentage = 0
	require.Nil(t, doc.ValidateAndComplete())
	require.Equal(t, uint64(DefaultMaxCappedPercentage), doc.Params.MaxCappedPercentage)
}

func TestGenesisFileRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "genesis.json")
	doc := validGenesisDoc()
	require.Nil(t, ExportGenesisFile(doc, file))

	loaded, err := GenesisDocFromFile(file)
	require.Nil(t, err)
	require.Equal(t, doc.ChainID, loaded.ChainID)
	require.Equal(t, doc.Admin, loaded.Admin)
	require.Equal(t, doc.Params, loaded.Params)
	require.Equal(t, doc.Holders, loaded.Holders)
}
