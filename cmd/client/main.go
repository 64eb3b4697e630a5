// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-stegano/internal/adapter"
	"github.com/MKhiriev/go-stegano/internal/client"
	"github.com/MKhiriev/go-stegano/internal/config"
	"github.com/MKhiriev/go-stegano/internal/logger"
	"github.com/MKhiriev/go-stegano/internal/service"
	"github.com/MKhiriev/go-stegano/internal/tui"
	"github.com/MKhiriev/go-stegano/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("go-stegano-client")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	identityProvider, err := adapter.NewHTTPIdentityProvider(cfg.Identity, cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create identity provider")
	}

	codec, err := adapter.NewHTTPCodecAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create codec adapter")
	}

	services := service.NewClientServices(identityProvider, codec, cfg.Storage, log)
	ui := tui.New(services, buildInfo, log)

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
