// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-codec-address codec service base URL
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-identity-address identity toolkit base URL
//	-identity-token-address secure-token base URL
//	-api-key identity provider API key
//	-download-dir directory for downloaded artifacts
//	-a web server address in format [host]:[port]
//	-refresh-interval token refresh job interval (e.g., "1m")
//	-refresh-window refresh tokens expiring within this window (e.g., "5m")
//	-c/-config json file path with configs
//	-env-file dotenv file path
func parseFlags(args []string) (*StructuredConfig, error) {
	var webAddress NetAddress
	var codecAddress, identityAddress, identityTokenAddress, apiKey string
	var downloadDir, jsonConfigPath, envFile string
	var requestTimeout, refreshInterval, refreshWindow time.Duration

	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)

	fs.StringVar(&codecAddress, "codec-address", "", "Codec service base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&identityAddress, "identity-address", "", "Identity toolkit base URL")
	fs.StringVar(&identityTokenAddress, "identity-token-address", "", "Secure token base URL")
	fs.StringVar(&apiKey, "api-key", "", "Identity provider API key")
	fs.StringVar(&downloadDir, "download-dir", "", "Directory for downloaded artifacts")
	fs.Var(&webAddress, "a", "Web server net address host:port")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Token refresh interval (e.g., 1m)")
	fs.DurationVar(&refreshWindow, "refresh-window", 0, "Refresh tokens expiring within (e.g., 5m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&envFile, "env-file", "", "Dotenv file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Adapter: Adapter{
			CodecAddress:   codecAddress,
			RequestTimeout: requestTimeout,
		},
		Identity: Identity{
			Address:      identityAddress,
			TokenAddress: identityTokenAddress,
			APIKey:       apiKey,
		},
		Storage: Storage{DownloadDir: downloadDir},
		Web:     Web{Address: webAddress.String()},
		Workers: Workers{
			TokenRefreshInterval: refreshInterval,
			TokenRefreshWindow:   refreshWindow,
		},
		JSONFilePath: jsonConfigPath,
		EnvFile:      envFile,
	}, nil
}

func programName() string {
	if len(os.Args) == 0 {
		return "go-stegano"
	}
	return os.Args[0]
}

// String returns a canonical host:port string for a NetAddress, or "" when
// neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
