package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/calehh/dao-app/tx"
	dao_types "github.com/calehh/dao-app/types"
)

// Client talks to a running DAO service over HTTP. The CLI commands use it.
type Client struct {
	Url string
}

func NewClient(url string) *Client {
	return &Client{Url: url}
}

func (c *Client) post(ctx context.Context, path string, req any, res any) error {
	dat, err := json.Marshal(req)
	if err != nil {
		return err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Url+path, bytes.NewReader(dat))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpRes, err := http.DefaultClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpRes.Body.Close()
	buf, err := io.ReadAll(httpRes.Body)
	if err != nil {
		return err
	}
	if httpRes.StatusCode != http.StatusOK {
		var errRes struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(buf, &errRes); err == nil && errRes.Error != "" {
			return fmt.Errorf("service error: %s", errRes.Error)
		}
		return fmt.Errorf("service error: status %v", httpRes.StatusCode)
	}
	if res != nil {
		return json.Unmarshal(buf, res)
	}
	return nil
}

// SendTx submits a signed governance operation.
func (c *Client) SendTx(ctx context.Context, gtx *tx.GovTx) (*dao_types.Event, error) {
	var res TxResponse
	if err := c.post(ctx, "/tx", gtx, &res); err != nil {
		return nil, err
	}
	return res.Event, nil
}

func (c *Client) GetProposal(ctx context.Context, proposalId uint64) (*dao_types.Proposal, error) {
	var res GetProposalResponse
	if err := c.post(ctx, "/getProposal", GetProposalReq{ProposalId: proposalId}, &res); err != nil {
		return nil, err
	}
	return res.Proposal, nil
}

func (c *Client) GetActiveProposal(ctx context.Context) (*dao_types.Proposal, error) {
	var res GetProposalResponse
	if err := c.post(ctx, "/getActiveProposal", struct{}{}, &res); err != nil {
		return nil, err
	}
	return res.Proposal, nil
}

func (c *Client) GetWinner(ctx context.Context, proposalId uint64) (*GetWinnerResponse, error) {
	var res GetWinnerResponse
	if err := c.post(ctx, "/getWinner", GetWinnerReq{ProposalId: proposalId}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetTally(ctx context.Context, proposalId uint64) (*GetTallyResponse, error) {
	var res GetTallyResponse
	if err := c.post(ctx, "/getTally", GetTallyReq{ProposalId: proposalId}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetTier(ctx context.Context, address string) (*GetTierResponse, error) {
	var res GetTierResponse
	if err := c.post(ctx, "/getTier", GetTierReq{Address: address}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetProposals(ctx context.Context, req GetProposalsReq) (*GetProposalsResponse, error) {
	var res GetProposalsResponse
	if err := c.post(ctx, "/getProposals", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetVotes(ctx context.Context, req GetVotesReq) (*GetVotesResponse, error) {
	var res GetVotesResponse
	if err := c.post(ctx, "/getVotes", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetAccount(ctx context.Context, address string) (json.RawMessage, error) {
	var res struct {
		Account json.RawMessage `json:"account"`
	}
	if err := c.post(ctx, "/getAccount", GetAccountReq{Address: address}, &res); err != nil {
		return nil, err
	}
	return res.Account, nil
}

func (c *Client) GetParams(ctx context.Context) (*dao_types.GovParams, error) {
	var res struct {
		Params dao_types.GovParams `json:"params"`
	}
	if err := c.post(ctx, "/getParams", struct{}{}, &res); err != nil {
		return nil, err
	}
	return &res.Params, nil
}
