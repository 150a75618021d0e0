package main

import (
	"github.com/calehh/dao-app/tx"
	"github.com/spf13/cobra"
)

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Admin parameter operations",
	Long:  ``,
}

func init() {
	paramsCmd.AddCommand(thresholdsCmd)
	paramsCmd.AddCommand(maxPercentageCmd)
	paramsCmd.AddCommand(durationCmd)
	paramsCmd.AddCommand(methodCmd)
	paramsCmd.AddCommand(pauseCmd)
	paramsCmd.AddCommand(adminCmd)
}

type thresholdsArguments struct {
	Url     string
	Skey    string
	ChainId string
	VIP     uint64
	Gold    uint64
	Silver  uint64
	Bronze  uint64
	NoSend  bool
}

var thresholdsArgs thresholdsArguments

var thresholdsCmd = &cobra.Command{
	Use:   "thresholds",
	Short: "Update the four tier thresholds",
	Long:  ``,
	Run:   thresholdsRun,
}

func init() {
	urlFlag(thresholdsCmd, &thresholdsArgs.Url)
	skeyFlag(thresholdsCmd, &thresholdsArgs.Skey)
	thresholdsCmd.Flags().StringVarP(&thresholdsArgs.ChainId, "chainId", "c", "dao-1", "chain id")
	thresholdsCmd.Flags().Uint64VarP(&thresholdsArgs.VIP, "vip", "", 0, "vip threshold")
	thresholdsCmd.Flags().Uint64VarP(&thresholdsArgs.Gold, "gold", "", 0, "gold threshold")
	thresholdsCmd.Flags().Uint64VarP(&thresholdsArgs.Silver, "silver", "", 0, "silver threshold")
	thresholdsCmd.Flags().Uint64VarP(&thresholdsArgs.Bronze, "bronze", "", 0, "bronze threshold")
	thresholdsCmd.Flags().BoolVarP(&thresholdsArgs.NoSend, "nosend", "", false, "not send transaction but print signature")
}

func thresholdsRun(cmd *cobra.Command, args []string) {
	gtx := &tx.GovTx{
		Version: tx.GovTxVersion1,
		Type:    tx.GovTxTypeUpdateThresholds,
		Tx: &tx.UpdateThresholdsTx{
			VIP:    thresholdsArgs.VIP,
			Gold:   thresholdsArgs.Gold,
			Silver: thresholdsArgs.Silver,
			Bronze: thresholdsArgs.Bronze,
		},
	}
	signAndSend(thresholdsArgs.Url, thresholdsArgs.Skey, thresholdsArgs.ChainId, gtx, thresholdsArgs.NoSend)
}

type maxPercentageArguments struct {
	Url        string
	Skey       string
	ChainId    string
	Percentage uint64
	NoSend     bool
}

var maxPercentageArgs maxPercentageArguments

var maxPercentageCmd = &cobra.Command{
	Use:   "maxpercentage",
	Short: "Set the capped-percentage ceiling",
	Long:  ``,
	Run:   maxPercentageRun,
}

func init() {
	urlFlag(maxPercentageCmd, &maxPercentageArgs.Url)
	skeyFlag(maxPercentageCmd, &maxPercentageArgs.Skey)
	maxPercentageCmd.Flags().StringVarP(&maxPercentageArgs.ChainId, "chainId", "c", "dao-1", "chain id")
	maxPercentageCmd.Flags().Uint64VarP(&maxPercentageArgs.Percentage, "percentage", "p", 0, "max capped percentage")
	maxPercentageCmd.Flags().BoolVarP(&maxPercentageArgs.NoSend, "nosend", "", false, "not send transaction but print signature")
}

func maxPercentageRun(cmd *cobra.Command, args []string) {
	gtx := &tx.GovTx{
		Version: tx.GovTxVersion1,
		Type:    tx.GovTxTypeSetMaxPercentage,
		Tx:      &tx.SetMaxPercentageTx{Percentage: maxPercentageArgs.Percentage},
	}
	signAndSend(maxPercentageArgs.Url, maxPercentageArgs.Skey, maxPercentageArgs.ChainId, gtx, maxPercentageArgs.NoSend)
}

type durationArguments struct {
	Url     string
	Skey    string
	ChainId string
	Days    uint64
	NoSend  bool
}

var durationArgs durationArguments

var durationCmd = &cobra.Command{
	Use:   "duration",
	Short: "Set the voting duration in days",
	Long:  ``,
	Run:   durationRun,
}

func init() {
	urlFlag(durationCmd, &durationArgs.Url)
	skeyFlag(durationCmd, &durationArgs.Skey)
	durationCmd.Flags().StringVarP(&durationArgs.ChainId, "chainId", "c", "dao-1", "chain id")
	durationCmd.Flags().Uint64VarP(&durationArgs.Days, "days", "", 0, "voting duration in days")
	durationCmd.Flags().BoolVarP(&durationArgs.NoSend, "nosend", "", false, "not send transaction but print signature")
}

func durationRun(cmd *cobra.Command, args []string) {
	gtx := &tx.GovTx{
		Version: tx.GovTxVersion1,
		Type:    tx.GovTxTypeSetVotingDuration,
		Tx:      &tx.SetVotingDurationTx{Days: durationArgs.Days},
	}
	signAndSend(durationArgs.Url, durationArgs.Skey, durationArgs.ChainId, gtx, durationArgs.NoSend)
}

type methodArguments struct {
	Url     string
	Skey    string
	ChainId string
	Method  uint8
	NoSend  bool
}

var methodArgs methodArguments

var methodCmd = &cobra.Command{
	Use:   "method",
	Short: "Set the vote weight method",
	Long:  ``,
	Run:   methodRun,
}

func init() {
	urlFlag(methodCmd, &methodArgs.Url)
	skeyFlag(methodCmd, &methodArgs.Skey)
	methodCmd.Flags().StringVarP(&methodArgs.ChainId, "chainId", "c", "dao-1", "chain id")
	methodCmd.Flags().Uint8VarP(&methodArgs.Method, "method", "m", 0, "vote method: 1 tier point, 2 holding percentage, 3 capped percentage")
	methodCmd.Flags().BoolVarP(&methodArgs.NoSend, "nosend", "", false, "not send transaction but print signature")
}

func methodRun(cmd *cobra.Command, args []string) {
	gtx := &tx.GovTx{
		Version: tx.GovTxVersion1,
		Type:    tx.GovTxTypeSetVoteMethod,
		Tx:      &tx.SetVoteMethodTx{Method: methodArgs.Method},
	}
	signAndSend(methodArgs.Url, methodArgs.Skey, methodArgs.ChainId, gtx, methodArgs.NoSend)
}

type pauseArguments struct {
	Url     string
	Skey    string
	ChainId string
	Paused  bool
	NoSend  bool
}

var pauseArgs pauseArguments

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause or resume the governance engine",
	Long:  ``,
	Run:   pauseRun,
}

func init() {
	urlFlag(pauseCmd, &pauseArgs.Url)
	skeyFlag(pauseCmd, &pauseArgs.Skey)
	pauseCmd.Flags().StringVarP(&pauseArgs.ChainId, "chainId", "c", "dao-1", "chain id")
	pauseCmd.Flags().BoolVarP(&pauseArgs.Paused, "paused", "p", false, "paused state")
	pauseCmd.Flags().BoolVarP(&pauseArgs.NoSend, "nosend", "", false, "not send transaction but print signature")
}

func pauseRun(cmd *cobra.Command, args []string) {
	gtx := &tx.GovTx{
		Version: tx.GovTxVersion1,
		Type:    tx.GovTxTypeSetPause,
		Tx:      &tx.SetPauseTx{Paused: pauseArgs.Paused},
	}
	signAndSend(pauseArgs.Url, pauseArgs.Skey, pauseArgs.ChainId, gtx, pauseArgs.NoSend)
}

type adminArguments struct {
	Url     string
	Skey    string
	ChainId string
	Admin   string
	NoSend  bool
}

var adminArgs adminArguments

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Hand the admin role to another address",
	Long:  ``,
	Run:   adminRun,
}

func init() {
	urlFlag(adminCmd, &adminArgs.Url)
	skeyFlag(adminCmd, &adminArgs.Skey)
	adminCmd.Flags().StringVarP(&adminArgs.ChainId, "chainId", "c", "dao-1", "chain id")
	adminCmd.Flags().StringVarP(&adminArgs.Admin, "admin", "a", "", "new admin address")
	adminCmd.Flags().BoolVarP(&adminArgs.NoSend, "nosend", "", false, "not send transaction but print signature")
}

func adminRun(cmd *cobra.Command, args []string) {
	gtx := &tx.GovTx{
		Version: tx.GovTxVersion1,
		Type:    tx.GovTxTypeSetAdmin,
		Tx:      &tx.SetAdminTx{Admin: adminArgs.Admin},
	}
	signAndSend(adminArgs.Url, adminArgs.Skey, adminArgs.ChainId, gtx, adminArgs.NoSend)
}
