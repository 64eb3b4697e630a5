// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-stegano/internal/adapter"
	"github.com/MKhiriev/go-stegano/internal/client"
	"github.com/MKhiriev/go-stegano/internal/config"
	handler "github.com/MKhiriev/go-stegano/internal/handler/http"
	"github.com/MKhiriev/go-stegano/internal/logger"
	"github.com/MKhiriev/go-stegano/internal/server"
	"github.com/MKhiriev/go-stegano/internal/service"
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

	log := logger.NewLogger("go-stegano-web")
	cfg, err := config.GetWebConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("codec_address", cfg.Adapter.CodecAddress).
		Str("identity_address", cfg.Identity.Address).
		Str("download_dir", cfg.Storage.DownloadDir).
		Str("address", cfg.Address).
		Msg("received configs")

	identityProvider, err := adapter.NewHTTPIdentityProvider(cfg.Identity, cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create identity provider")
	}

	codec, err := adapter.NewHTTPCodecAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create codec adapter")
	}

	services := service.NewClientServices(identityProvider, codec, cfg.Storage, log)
	h := handler.NewHandler(services.SessionService, services.WorkflowService, buildInfo, log)

	srv, err := server.NewServer(h.Init(), cfg.Address, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	app, err := client.NewApp(services, client.NewWebFrontEnd(h, srv), cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init web app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("web run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
