package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	cosmoslog "cosmossdk.io/log"
	"github.com/calehh/dao-app/app"
	app_config "github.com/calehh/dao-app/config"
	"github.com/calehh/dao-app/indexer"
	"github.com/calehh/dao-app/service"
	"github.com/calehh/dao-app/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var homeDir string

var rootCmd = &cobra.Command{
	Use:   "daod",
	Short: "daod runs a tiered DAO governance engine",
	Long: `A governance engine for token-holder DAOs: tier classification,
weighted voting and a single-active-proposal session lifecycle.`,
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd, args)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&homeDir, "homedir", "d", "", "home directory")
}

func run(cmd *cobra.Command, args []string) {
	if homeDir == "" {
		homeDir = os.ExpandEnv("$HOME/.dao")
	}

	appConfig := app_config.DefaultConfig(homeDir)
	appConfig.SetHome(homeDir)
	viper.SetConfigFile(fmt.Sprintf("%s/%s", homeDir, "config/config.toml"))

	if err := viper.ReadInConfig(); err != nil {
		log.Fatalf("Reading config: %v", err)
	}
	if err := viper.Unmarshal(appConfig); err != nil {
		log.Fatalf("Decoding config: %v", err)
	}
	appConfig.App.Home = homeDir

	filter, err := cosmoslog.ParseLogLevel(appConfig.App.LogLevel)
	if err != nil {
		log.Fatalf("failed to parse log level: %v", err)
	}
	logger := cosmoslog.NewLogger(os.Stdout, cosmoslog.FilterOption(filter))

	govApp, err := app.NewGovApp(appConfig.App, logger)
	if err != nil {
		log.Fatalf("new App err:%v", err)
	}

	if !govApp.DB().Initialized() {
		doc, err := types.GenesisDocFromFile(appConfig.GenesisFile())
		if err != nil {
			log.Fatalf("read genesis err:%v", err)
		}
		if err := govApp.InitGenesis(doc); err != nil {
			log.Fatalf("init genesis err:%v", err)
		}
	}

	idx, err := indexer.NewGovIndexer(logger, appConfig.App.IndexerDB())
	if err != nil {
		log.Fatalf("new indexer err:%v", err)
	}
	idx.Start()

	srv := service.NewService(appConfig.App.ListenAddress, govApp, idx, logger)
	go srv.Start()

	defer func() {
		log.Println("shut down...")
		done := make(chan struct{})
		go func() {
			defer close(done)
			govApp.Stop()
			if err := idx.Close(); err != nil {
				log.Printf("close indexer err:%v", err)
			}
		}()
		timer := time.NewTimer(time.Second * 10)
		select {
		case <-timer.C:
			os.Exit(1)
		case <-done:
			return
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
}
