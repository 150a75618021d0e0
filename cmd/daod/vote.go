package main

import (
	"github.com/calehh/dao-app/tx"
	"github.com/spf13/cobra"
)

type voteArguments struct {
	Url      string
	Skey     string
	ChainId  string
	Proposal uint64
	Choice   uint64
	NoSend   bool
}

var voteArgs voteArguments

var voteCmd = &cobra.Command{
	Use:   "vote",
	Short: "Cast a weighted vote on the active proposal",
	Long:  ``,
	Run:   voteRun,
}

func init() {
	urlFlag(voteCmd, &voteArgs.Url)
	skeyFlag(voteCmd, &voteArgs.Skey)
	voteCmd.Flags().StringVarP(&voteArgs.ChainId, "chainId", "c", "dao-1", "chain id")
	voteCmd.Flags().Uint64VarP(&voteArgs.Proposal, "proposal", "p", 0, "proposal index")
	voteCmd.Flags().Uint64VarP(&voteArgs.Choice, "choice", "", 0, "choice index")
	voteCmd.Flags().BoolVarP(&voteArgs.NoSend, "nosend", "", false, "not send transaction but print signature")
}

func voteRun(cmd *cobra.Command, args []string) {
	gtx := &tx.GovTx{
		Version: tx.GovTxVersion1,
		Type:    tx.GovTxTypeVote,
		Tx: &tx.VoteTx{
			Proposal: voteArgs.Proposal,
			Choice:   voteArgs.Choice,
		},
	}
	signAndSend(voteArgs.Url, voteArgs.Skey, voteArgs.ChainId, gtx, voteArgs.NoSend)
}
