package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/calehh/dao-app/crypto"
	"github.com/calehh/dao-app/service"
	"github.com/calehh/dao-app/tx"
	"github.com/spf13/cobra"
)

func signAndSend(url string, skeyPath string, chainId string, gtx *tx.GovTx, noSend bool) {
	pv, err := crypto.LoadFilePV(skeyPath)
	if err != nil {
		fmt.Printf("load key err:%v\n", err)
		return
	}
	gtx.Sender = pv.Address()
	dat, err := gtx.SigData([]byte(chainId))
	if err != nil {
		fmt.Printf("tx sign data err:%v\n", err)
		return
	}
	sig, err := pv.Sign(dat)
	if err != nil {
		fmt.Printf("sign tx err:%v\n", err)
		return
	}
	println("address:", pv.Address())
	if noSend {
		fmt.Println("transaction signature:")
		fmt.Println(hex.EncodeToString(sig))
		return
	}
	gtx.Sig = [][]byte{sig}
	cli := service.NewClient(url)
	event, err := cli.SendTx(context.Background(), gtx)
	if err != nil {
		fmt.Printf("send tx err:%v\n", err)
		return
	}
	dat, _ = json.Marshal(event)
	fmt.Printf("%v\n", string(dat))
}

type newProposalArguments struct {
	Url         string
	Skey        string
	ChainId     string
	Title       string
	Description string
	Choices     string
	NoSend      bool
}

var newProposalArgs newProposalArguments

var newProposalCmd = &cobra.Command{
	Use:   "newproposal",
	Short: "Submit a draft proposal into the open session",
	Long:  ``,
	Run:   newProposalRun,
}

func init() {
	urlFlag(newProposalCmd, &newProposalArgs.Url)
	skeyFlag(newProposalCmd, &newProposalArgs.Skey)
	newProposalCmd.Flags().StringVarP(&newProposalArgs.ChainId, "chainId", "c", "dao-1", "chain id")
	newProposalCmd.Flags().StringVarP(&newProposalArgs.Title, "title", "t", "", "proposal title")
	newProposalCmd.Flags().StringVarP(&newProposalArgs.Description, "description", "", "", "proposal description")
	newProposalCmd.Flags().StringVarP(&newProposalArgs.Choices, "choices", "", "", "comma separated choice list")
	newProposalCmd.Flags().BoolVarP(&newProposalArgs.NoSend, "nosend", "", false, "not send transaction but print signature")
}

func newProposalRun(cmd *cobra.Command, args []string) {
	choices := []string{}
	if newProposalArgs.Choices != "" {
		choices = strings.Split(newProposalArgs.Choices, ",")
	}
	gtx := &tx.GovTx{
		Version: tx.GovTxVersion1,
		Type:    tx.GovTxTypeCreateProposal,
		Tx: &tx.CreateProposalTx{
			Title:       newProposalArgs.Title,
			Description: newProposalArgs.Description,
			Choices:     choices,
		},
	}
	signAndSend(newProposalArgs.Url, newProposalArgs.Skey, newProposalArgs.ChainId, gtx, newProposalArgs.NoSend)
}

type selectProposalArguments struct {
	Url         string
	Skey        string
	ChainId     string
	Proposal    uint64
	Title       string
	Description string
	Choices     string
	NoSend      bool
}

var selectProposalArgs selectProposalArguments

var selectProposalCmd = &cobra.Command{
	Use:   "selectproposal",
	Short: "Select a draft proposal for voting and close the session",
	Long:  ``,
	Run:   selectProposalRun,
}

func init() {
	urlFlag(selectProposalCmd, &selectProposalArgs.Url)
	skeyFlag(selectProposalCmd, &selectProposalArgs.Skey)
	selectProposalCmd.Flags().StringVarP(&selectProposalArgs.ChainId, "chainId", "c", "dao-1", "chain id")
	selectProposalCmd.Flags().Uint64VarP(&selectProposalArgs.Proposal, "proposal", "p", 0, "proposal index")
	selectProposalCmd.Flags().StringVarP(&selectProposalArgs.Title, "title", "t", "", "override title")
	selectProposalCmd.Flags().StringVarP(&selectProposalArgs.Description, "description", "", "", "override description")
	selectProposalCmd.Flags().StringVarP(&selectProposalArgs.Choices, "choices", "", "", "override comma separated choice list")
	selectProposalCmd.Flags().BoolVarP(&selectProposalArgs.NoSend, "nosend", "", false, "not send transaction but print signature")
}

func selectProposalRun(cmd *cobra.Command, args []string) {
	choices := []string{}
	if selectProposalArgs.Choices != "" {
		choices = strings.Split(selectProposalArgs.Choices, ",")
	}
	gtx := &tx.GovTx{
		Version: tx.GovTxVersion1,
		Type:    tx.GovTxTypeSelectProposal,
		Tx: &tx.SelectProposalTx{
			Proposal:    selectProposalArgs.Proposal,
			Title:       selectProposalArgs.Title,
			Description: selectProposalArgs.Description,
			Choices:     choices,
		},
	}
	signAndSend(selectProposalArgs.Url, selectProposalArgs.Skey, selectProposalArgs.ChainId, gtx, selectProposalArgs.NoSend)
}

type cancelProposalArguments struct {
	Url      string
	Skey     string
	ChainId  string
	Proposal uint64
	NoSend   bool
}

var cancelProposalArgs cancelProposalArguments

var cancelProposalCmd = &cobra.Command{
	Use:   "cancelproposal",
	Short: "Cancel the proposal currently in voting",
	Long:  ``,
	Run:   cancelProposalRun,
}

func init() {
	urlFlag(cancelProposalCmd, &cancelProposalArgs.Url)
	skeyFlag(cancelProposalCmd, &cancelProposalArgs.Skey)
	cancelProposalCmd.Flags().StringVarP(&cancelProposalArgs.ChainId, "chainId", "c", "dao-1", "chain id")
	cancelProposalCmd.Flags().Uint64VarP(&cancelProposalArgs.Proposal, "proposal", "p", 0, "proposal index")
	cancelProposalCmd.Flags().BoolVarP(&cancelProposalArgs.NoSend, "nosend", "", false, "not send transaction but print signature")
}

func cancelProposalRun(cmd *cobra.Command, args []string) {
	gtx := &tx.GovTx{
		Version: tx.GovTxVersion1,
		Type:    tx.GovTxTypeCancelProposal,
		Tx:      &tx.CancelProposalTx{Proposal: cancelProposalArgs.Proposal},
	}
	signAndSend(cancelProposalArgs.Url, cancelProposalArgs.Skey, cancelProposalArgs.ChainId, gtx, cancelProposalArgs.NoSend)
}

type updateStatusArguments struct {
	Url      string
	Skey     string
	ChainId  string
	Proposal uint64
	Status   uint64
	NoSend   bool
}

var updateStatusArgs updateStatusArguments

var updateStatusCmd = &cobra.Command{
	Use:   "updatestatus",
	Short: "Move a proposal to passed, rejected or done",
	Long:  ``,
	Run:   updateStatusRun,
}

func init() {
	urlFlag(updateStatusCmd, &updateStatusArgs.Url)
	skeyFlag(updateStatusCmd, &updateStatusArgs.Skey)
	updateStatusCmd.Flags().StringVarP(&updateStatusArgs.ChainId, "chainId", "c", "dao-1", "chain id")
	updateStatusCmd.Flags().Uint64VarP(&updateStatusArgs.Proposal, "proposal", "p", 0, "proposal index")
	updateStatusCmd.Flags().Uint64VarP(&updateStatusArgs.Status, "status", "", 0, "target status code")
	updateStatusCmd.Flags().BoolVarP(&updateStatusArgs.NoSend, "nosend", "", false, "not send transaction but print signature")
}

func updateStatusRun(cmd *cobra.Command, args []string) {
	gtx := &tx.GovTx{
		Version: tx.GovTxVersion1,
		Type:    tx.GovTxTypeUpdateStatus,
		Tx: &tx.UpdateStatusTx{
			Proposal: updateStatusArgs.Proposal,
			Status:   updateStatusArgs.Status,
		},
	}
	signAndSend(updateStatusArgs.Url, updateStatusArgs.Skey, updateStatusArgs.ChainId, gtx, updateStatusArgs.NoSend)
}
