package service

import (
	"net/http"

	cosmoslog "cosmossdk.io/log"
	"github.com/calehh/dao-app/app"
	"github.com/calehh/dao-app/indexer"
	"github.com/calehh/dao-app/tx"
	dao_types "github.com/calehh/dao-app/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

type Service struct {
	engine     *gin.Engine
	app        *app.GovApp
	indexer    *indexer.GovIndexer
	logger     cosmoslog.Logger
	listenAddr string
}

func NewService(listenAddr string, govApp *app.GovApp, idx *indexer.GovIndexer, logger cosmoslog.Logger) *Service {
	r := gin.Default()
	s := &Service{
		engine:     r,
		app:        govApp,
		indexer:    idx,
		logger:     logger.With("module", "service"),
		listenAddr: listenAddr,
	}
	s.engine.POST("/tx", s.handleTx)
	s.engine.POST("/getProposal", s.handleGetProposal)
	s.engine.POST("/getActiveProposal", s.handleGetActiveProposal)
	s.engine.POST("/getProposals", s.handleGetProposals)
	s.engine.POST("/getTally", s.handleGetTally)
	s.engine.POST("/getWinner", s.handleGetWinner)
	s.engine.POST("/getTier", s.handleGetTier)
	s.engine.POST("/getVotePercentage", s.handleGetVotePercentage)
	s.engine.POST("/getCappedPercentage", s.handleGetCappedPercentage)
	s.engine.POST("/getAccount", s.handleGetAccount)
	s.engine.POST("/getParams", s.handleGetParams)
	s.engine.POST("/getVotes", s.handleGetVotes)
	return s
}

func (s *Service) Start() {
	s.engine.Run(s.listenAddr)
}

// Engine exposes the router, for tests.
func (s *Service) Engine() *gin.Engine {
	return s.engine
}

type TxResponse struct {
	Event *dao_types.Event `json:"event"`
}

func (s *Service) handleTx(c *gin.Context) {
	dat, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	gtx, err := tx.UnmarshalGovTx(dat)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	event, err := s.app.ExecuteTx(c.Request.Context(), gtx)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, TxResponse{Event: event})
}

type GetProposalReq struct {
	ProposalId uint64 `json:"proposalId"`
}

type GetProposalResponse struct {
	Proposal *dao_types.Proposal `json:"proposal"`
	Height   uint64              `json:"height"`
}

func (s *Service) handleGetProposal(c *gin.Context) {
	var requestData GetProposalReq
	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	proposal, height, err := s.app.DB().GetProposalByIndex(requestData.ProposalId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, GetProposalResponse{Proposal: proposal, Height: height})
}

func (s *Service) handleGetActiveProposal(c *gin.Context) {
	proposal, height, err := s.app.DB().GetActiveProposal()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, GetProposalResponse{Proposal: proposal, Height: height})
}

type GetProposalsReq struct {
	Session  uint64 `json:"session"`
	Status   uint64 `json:"status"`
	Creator  string `json:"creator"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

type GetProposalsResponse struct {
	Proposals []indexer.Proposal `json:"proposals"`
	Total     uint64             `json:"total"`
}

func (s *Service) handleGetProposals(c *gin.Context) {
	var response GetProposalsResponse
	response.Proposals = make([]indexer.Proposal, 0)
	var requestData GetProposalsReq
	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if requestData.PageSize == 0 {
		requestData.PageSize = 20
	}
	var err error
	var proposals []indexer.Proposal
	var total uint64
	if requestData.Creator != "" {
		proposals, total, err = s.indexer.GetProposalsByCreator(requestData.Creator, requestData.Page, requestData.PageSize)
	} else if requestData.Session != 0 {
		proposals, total, err = s.indexer.GetProposalsBySession(requestData.Session, requestData.Page, requestData.PageSize)
	} else if requestData.Status != 0 {
		proposals, total, err = s.indexer.GetProposalsByStatus(requestData.Status, requestData.Page, requestData.PageSize)
	} else {
		proposals, total, err = s.indexer.GetProposals(requestData.Page, requestData.PageSize)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	response.Proposals = proposals
	response.Total = total
	c.JSON(http.StatusOK, response)
}

type GetTallyReq struct {
	ProposalId uint64 `json:"proposalId"`
}

type GetTallyResponse struct {
	Proposal   uint64   `json:"proposal"`
	Choices    []string `json:"choices"`
	Tallies    []uint64 `json:"tallies"`
	VoteCounts []uint64 `json:"voteCounts"`
}

func (s *Service) handleGetTally(c *gin.Context) {
	var requestData GetTallyReq
	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	proposal, _, err := s.app.DB().GetProposalByIndex(requestData.ProposalId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, GetTallyResponse{
		Proposal:   proposal.Index,
		Choices:    proposal.Choices,
		Tallies:    proposal.Tallies,
		VoteCounts: proposal.VoteCounts,
	})
}

type GetWinnerReq struct {
	ProposalId uint64 `json:"proposalId"`
}

type GetWinnerResponse struct {
	Proposal uint64 `json:"proposal"`
	Choice   uint64 `json:"choice"`
	Tally    uint64 `json:"tally"`
}

func (s *Service) handleGetWinner(c *gin.Context) {
	var requestData GetWinnerReq
	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	choice, tally, err := s.app.DB().GetWinner(requestData.ProposalId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, GetWinnerResponse{
		Proposal: requestData.ProposalId,
		Choice:   choice,
		Tally:    tally,
	})
}

type GetTierReq struct {
	Address string `json:"address"`
}

type GetTierResponse struct {
	Address  string `json:"address"`
	Tier     uint8  `json:"tier"`
	TierName string `json:"tierName"`
	Points   uint64 `json:"points"`
}

func (s *Service) handleGetTier(c *gin.Context) {
	var requestData GetTierReq
	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	addr := common.HexToAddress(requestData.Address)
	tier, err := s.app.DB().GetTier(addr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, GetTierResponse{
		Address:  addr.Hex(),
		Tier:     uint8(tier),
		TierName: tier.String(),
		Points:   tier.Points(),
	})
}

type GetPercentageReq struct {
	Address string `json:"address"`
}

type GetPercentageResponse struct {
	Address    string `json:"address"`
	Percentage uint64 `json:"percentage"`
}

func (s *Service) handleGetVotePercentage(c *gin.Context) {
	var requestData GetPercentageReq
	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	addr := common.HexToAddress(requestData.Address)
	pct, err := s.app.DB().GetVotePercentage(addr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, GetPercentageResponse{Address: addr.Hex(), Percentage: pct})
}

func (s *Service) handleGetCappedPercentage(c *gin.Context) {
	var requestData GetPercentageReq
	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	addr := common.HexToAddress(requestData.Address)
	pct, err := s.app.DB().GetCappedPercentage(addr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, GetPercentageResponse{Address: addr.Hex(), Percentage: pct})
}

type GetAccountReq struct {
	Address string `json:"address"`
}

func (s *Service) handleGetAccount(c *gin.Context) {
	var requestData GetAccountReq
	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	acnt, height, err := s.app.DB().GetAccountByAddress(common.HexToAddress(requestData.Address))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if acnt == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"account": acnt, "height": height})
}

func (s *Service) handleGetParams(c *gin.Context) {
	params, height := s.app.DB().GetParams()
	c.JSON(http.StatusOK, gin.H{"params": params, "height": height})
}

type GetVotesReq struct {
	ProposalId uint64 `json:"proposalId"`
	Voter      string `json:"voter"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
}

type GetVotesResponse struct {
	Votes []indexer.Vote `json:"votes"`
	Total uint64         `json:"total"`
}

func (s *Service) handleGetVotes(c *gin.Context) {
	var response GetVotesResponse
	response.Votes = make([]indexer.Vote, 0)
	var requestData GetVotesReq
	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if requestData.PageSize == 0 {
		requestData.PageSize = 20
	}
	var err error
	var votes []indexer.Vote
	var total uint64
	if requestData.Voter != "" {
		votes, total, err = s.indexer.GetVotesByVoter(requestData.Voter, requestData.Page, requestData.PageSize)
	} else {
		votes, total, err = s.indexer.GetVotesByProposal(requestData.ProposalId, requestData.Page, requestData.PageSize)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	response.Votes = votes
	response.Total = total
	c.JSON(http.StatusOK, response)
}
