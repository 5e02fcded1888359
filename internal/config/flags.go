package config

import (
	"errors"
	"flag"
	"net"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d local database file path
//	-data-dir per-collection data directory
//	-c/-config json file path with configs
//	-remote-endpoint object store base URL
//	-remote-token object store bearer token
//	-remote-prefix object store key prefix
//	-remote-enabled enable remote synchronization
//	-pull-interval background pull period (e.g., "30s", "1m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-writer-id device identity used in the remote index
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databasePath string
	var dataDir string
	var jsonConfigPath string
	var remoteEndpoint string
	var remoteToken string
	var remotePrefix string
	var remoteEnabled bool
	var pullInterval time.Duration
	var requestTimeout time.Duration
	var writerID string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databasePath, "d", "", "Local database file path")
	flag.StringVar(&dataDir, "data-dir", "", "Per-collection data directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&remoteEndpoint, "remote-endpoint", "", "Object store base URL")
	flag.StringVar(&remoteToken, "remote-token", "", "Object store bearer token")
	flag.StringVar(&remotePrefix, "remote-prefix", "", "Object store key prefix")
	flag.BoolVar(&remoteEnabled, "remote-enabled", false, "Enable remote synchronization")
	flag.DurationVar(&pullInterval, "pull-interval", 0, "Background pull period (e.g., 30s, 1m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&writerID, "writer-id", "", "Device identity used in the remote index")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DataDir:  dataDir,
			WriterID: writerID,
		},
		Storage: Storage{
			DB: StorageDB{
				Path: databasePath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Remote: Remote{
			Endpoint: remoteEndpoint,
			Token:    remoteToken,
			Prefix:   remotePrefix,
			Enabled:  remoteEnabled,
		},
		Sync: Sync{
			PullInterval: pullInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
