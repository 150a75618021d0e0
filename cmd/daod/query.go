package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/calehh/dao-app/service"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query the governance engine",
	Long:  ``,
}

func init() {
	queryCmd.AddCommand(queryAccountCmd)
	queryCmd.AddCommand(queryTierCmd)
	queryCmd.AddCommand(queryWinnerCmd)
	queryCmd.AddCommand(queryProposalsCmd)
	queryCmd.AddCommand(queryActiveCmd)
	queryCmd.AddCommand(queryParamsCmd)
}

func printJson(v any) {
	dat, err := json.MarshalIndent(v, "", " ")
	if err != nil {
		fmt.Printf("marshal err:%v\n", err)
		return
	}
	fmt.Printf("%v\n", string(dat))
}

type queryAccountArguments struct {
	Url     string
	Address string
}

var queryAccountArgs queryAccountArguments

var queryAccountCmd = &cobra.Command{
	Use:   "account",
	Short: "",
	Long:  ``,
	Run:   queryAccountRun,
}

func init() {
	urlFlag(queryAccountCmd, &queryAccountArgs.Url)
	queryAccountCmd.Flags().StringVarP(&queryAccountArgs.Address, "address", "a", "", "account address")
}

func queryAccountRun(cmd *cobra.Command, args []string) {
	cli := service.NewClient(queryAccountArgs.Url)
	acnt, err := cli.GetAccount(context.Background(), queryAccountArgs.Address)
	if err != nil {
		fmt.Printf("query account err:%v\n", err)
		return
	}
	fmt.Printf("%v\n", string(acnt))
}

type queryTierArguments struct {
	Url     string
	Address string
}

var queryTierArgs queryTierArguments

var queryTierCmd = &cobra.Command{
	Use:   "tier",
	Short: "",
	Long:  ``,
	Run:   queryTierRun,
}

func init() {
	urlFlag(queryTierCmd, &queryTierArgs.Url)
	queryTierCmd.Flags().StringVarP(&queryTierArgs.Address, "address", "a", "", "account address")
}

func queryTierRun(cmd *cobra.Command, args []string) {
	cli := service.NewClient(queryTierArgs.Url)
	tier, err := cli.GetTier(context.Background(), queryTierArgs.Address)
	if err != nil {
		fmt.Printf("query tier err:%v\n", err)
		return
	}
	printJson(tier)
}

type queryWinnerArguments struct {
	Url      string
	Proposal uint64
}

var queryWinnerArgs queryWinnerArguments

var queryWinnerCmd = &cobra.Command{
	Use:   "winner",
	Short: "",
	Long:  ``,
	Run:   queryWinnerRun,
}

func init() {
	urlFlag(queryWinnerCmd, &queryWinnerArgs.Url)
	queryWinnerCmd.Flags().Uint64VarP(&queryWinnerArgs.Proposal, "proposal", "p", 0, "proposal index")
}

func queryWinnerRun(cmd *cobra.Command, args []string) {
	cli := service.NewClient(queryWinnerArgs.Url)
	winner, err := cli.GetWinner(context.Background(), queryWinnerArgs.Proposal)
	if err != nil {
		fmt.Printf("query winner err:%v\n", err)
		return
	}
	printJson(winner)
}

type queryProposalsArguments struct {
	Url      string
	Session  uint64
	Status   uint64
	Creator  string
	Page     int
	PageSize int
}

var queryProposalsArgs queryProposalsArguments

var queryProposalsCmd = &cobra.Command{
	Use:   "proposals",
	Short: "",
	Long:  ``,
	Run:   queryProposalsRun,
}

func init() {
	urlFlag(queryProposalsCmd, &queryProposalsArgs.Url)
	queryProposalsCmd.Flags().Uint64VarP(&queryProposalsArgs.Session, "session", "", 0, "filter by session")
	queryProposalsCmd.Flags().Uint64VarP(&queryProposalsArgs.Status, "status", "", 0, "filter by status")
	queryProposalsCmd.Flags().StringVarP(&queryProposalsArgs.Creator, "creator", "", "", "filter by creator address")
	queryProposalsCmd.Flags().IntVarP(&queryProposalsArgs.Page, "page", "", 0, "page")
	queryProposalsCmd.Flags().IntVarP(&queryProposalsArgs.PageSize, "pageSize", "", 20, "page size")
}

func queryProposalsRun(cmd *cobra.Command, args []string) {
	cli := service.NewClient(queryProposalsArgs.Url)
	res, err := cli.GetProposals(context.Background(), service.GetProposalsReq{
		Session:  queryProposalsArgs.Session,
		Status:   queryProposalsArgs.Status,
		Creator:  queryProposalsArgs.Creator,
		Page:     queryProposalsArgs.Page,
		PageSize: queryProposalsArgs.PageSize,
	})
	if err != nil {
		fmt.Printf("query proposals err:%v\n", err)
		return
	}
	printJson(res)
}

type queryActiveArguments struct {
	Url string
}

var queryActiveArgs queryActiveArguments

var queryActiveCmd = &cobra.Command{
	Use:   "active",
	Short: "",
	Long:  ``,
	Run:   queryActiveRun,
}

func init() {
	urlFlag(queryActiveCmd, &queryActiveArgs.Url)
}

func queryActiveRun(cmd *cobra.Command, args []string) {
	cli := service.NewClient(queryActiveArgs.Url)
	proposal, err := cli.GetActiveProposal(context.Background())
	if err != nil {
		fmt.Printf("query active proposal err:%v\n", err)
		return
	}
	printJson(proposal)
}

type queryParamsArguments struct {
	Url string
}

var queryParamsArgs queryParamsArguments

var queryParamsCmd = &cobra.Command{
	Use:   "params",
	Short: "",
	Long:  ``,
	Run:   queryParamsRun,
}

func init() {
	urlFlag(queryParamsCmd, &queryParamsArgs.Url)
}

func queryParamsRun(cmd *cobra.Command, args []string) {
	cli := service.NewClient(queryParamsArgs.Url)
	params, err := cli.GetParams(context.Background())
	if err != nil {
		fmt.Printf("query params err:%v\n", err)
		return
	}
	printJson(params)
}
