package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	cosmoslog "cosmossdk.io/log"
	"github.com/calehh/dao-app/app"
	"github.com/calehh/dao-app/config"
	"github.com/calehh/dao-app/indexer"
	"github.com/calehh/dao-app/tx"
	dao_types "github.com/calehh/dao-app/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var (
	testAdmin = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	testVoter = common.HexToAddress("0x0000000000000000000000000000000000000001")
)

func newTestService(t *testing.T) *Service {
	gin.SetMode(gin.TestMode)
	home := t.TempDir()
	cfg := config.NewDAOAppConfig(home)
	govApp, err := app.NewMemGovApp(cfg, cosmoslog.NewNopLogger())
	require.Nil(t, err)
	t.Cleanup(govApp.Stop)

	doc := &dao_types.GenesisDoc{
		ChainID: "dao-test",
		Admin:   testAdmin.Hex(),
		Holders: []dao_types.GenesisHolder{
			{Address: testVoter.Hex(), Balance: 200_000},
		},
		Params: dao_types.DefaultGenesisParams(),
	}
	require.Nil(t, doc.ValidateAndComplete())
	require.Nil(t, govApp.InitGenesis(doc))

	idx, err := indexer.NewGovIndexer(cosmoslog.NewNopLogger(), filepath.Join(home, "indexer.db"))
	require.Nil(t, err)
	idx.Start()
	t.Cleanup(func() { idx.Close() })

	return NewService("127.0.0.1:0", govApp, idx, cosmoslog.NewNopLogger())
}

func post(t *testing.T, s *Service, path string, body any) *httptest.ResponseRecorder {
	dat, err := json.Marshal(body)
	require.Nil(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(dat))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func TestServiceTxAndQueries(t *testing.T) {
	s := newTestService(t)

	createTx := &tx.GovTx{
		Version: tx.GovTxVersion1,
		Type:    tx.GovTxTypeCreateProposal,
		Sender:  testAdmin.Hex(),
		Tx:      &tx.CreateProposalTx{Title: "upgrade", Choices: []string{"yes", "no"}},
	}
	w := post(t, s, "/tx", createTx)
	require.Equal(t, http.StatusOK, w.Code)
	var txRes TxResponse
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &txRes))
	require.Equal(t, dao_types.EventProposalCreatedType, txRes.Event.Type)

	selectTx := &tx.GovTx{
		Version: tx.GovTxVersion1,
		Type:    tx.GovTxTypeSelectProposal,
		Sender:  testAdmin.Hex(),
		Tx:      &tx.SelectProposalTx{Proposal: 1},
	}
	w = post(t, s, "/tx", selectTx)
	require.Equal(t, http.StatusOK, w.Code)

	voteTx := &tx.GovTx{
		Version: tx.GovTxVersion1,
		Type:    tx.GovTxTypeVote,
		Sender:  testVoter.Hex(),
		Tx:      &tx.VoteTx{Proposal: 1, Choice: 0},
	}
	w = post(t, s, "/tx", voteTx)
	require.Equal(t, http.StatusOK, w.Code)

	// a rejected operation surfaces the engine error
	w = post(t, s, "/tx", voteTx)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = post(t, s, "/getActiveProposal", struct{}{})
	require.Equal(t, http.StatusOK, w.Code)
	var pRes GetProposalResponse
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &pRes))
	require.Equal(t, uint64(1), pRes.Proposal.Index)
	require.Equal(t, dao_types.ProposalStatusChosen, pRes.Proposal.Status)

	w = post(t, s, "/getTally", GetTallyReq{ProposalId: 1})
	require.Equal(t, http.StatusOK, w.Code)
	var tallyRes GetTallyResponse
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &tallyRes))
	require.Equal(t, []uint64{4, 0}, tallyRes.Tallies)
	require.Equal(t, []uint64{1, 0}, tallyRes.VoteCounts)

	w = post(t, s, "/getWinner", GetWinnerReq{ProposalId: 1})
	require.Equal(t, http.StatusOK, w.Code)
	var winRes GetWinnerResponse
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &winRes))
	require.Equal(t, uint64(0), winRes.Choice)
	require.Equal(t, uint64(4), winRes.Tally)

	w = post(t, s, "/getTier", GetTierReq{Address: testVoter.Hex()})
	require.Equal(t, http.StatusOK, w.Code)
	var tierRes GetTierResponse
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &tierRes))
	require.Equal(t, "vip", tierRes.TierName)

	// the sole holder owns 100% before capping
	w = post(t, s, "/getVotePercentage", GetPercentageReq{Address: testVoter.Hex()})
	require.Equal(t, http.StatusOK, w.Code)
	var pctRes GetPercentageResponse
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &pctRes))
	require.Equal(t, uint64(dao_types.PercentageBase), pctRes.Percentage)

	w = post(t, s, "/getCappedPercentage", GetPercentageReq{Address: testVoter.Hex()})
	require.Equal(t, http.StatusOK, w.Code)
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &pctRes))
	require.Equal(t, uint64(dao_types.DefaultMaxCappedPercentage), pctRes.Percentage)

	// indexer mirrored the events
	w = post(t, s, "/getProposals", GetProposalsReq{})
	require.Equal(t, http.StatusOK, w.Code)
	var listRes GetProposalsResponse
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &listRes))
	require.Equal(t, uint64(1), listRes.Total)

	w = post(t, s, "/getVotes", GetVotesReq{ProposalId: 1})
	require.Equal(t, http.StatusOK, w.Code)
	var votesRes GetVotesResponse
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &votesRes))
	require.Equal(t, uint64(1), votesRes.Total)
}

func TestServiceBadTx(t *testing.T) {
	s := newTestService(t)

	req := httptest.NewRequest(http.MethodPost, "/tx", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = post(t, s, "/getAccount", GetAccountReq{Address: "0xdead"})
	require.Equal(t, http.StatusNotFound, w.Code)
}
