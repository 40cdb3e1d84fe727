//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command shamirprod runs one party of the Shamir secret-sharing
// product protocol: it loads the network configuration, bootstraps a
// mutually-authenticated mesh of connections to every other party,
// and runs the protocol engine on the party's input.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/markkurossi/shamirprod/config"
	"github.com/markkurossi/shamirprod/engine"
	"github.com/markkurossi/shamirprod/field"
	"github.com/markkurossi/shamirprod/share"
	"github.com/markkurossi/shamirprod/transport"
)

const (
	exitOK         = 0
	exitConfigErr  = 1
	exitNetworkErr = 2
	exitProtoErr   = 3
)

func main() {
	id := flag.Int("id", -1, "ID of this party")
	netConfigFile := flag.String("net-config-file", "", "path to the network configuration file")
	corruptions := flag.Int("corruptions", -1, "number of corrupted parties tolerated")
	input := flag.Uint64("input", 0, "this party's input value")
	debug := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *id < 0 || *netConfigFile == "" || *corruptions < 0 {
		fmt.Fprintln(os.Stderr, "usage: shamirprod -id N -net-config-file FILE -corruptions T -input V")
		os.Exit(exitConfigErr)
	}

	net, err := config.Load(*netConfigFile)
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(exitConfigErr)
	}
	if *id >= net.N() {
		slog.Error("configuration error", "error", fmt.Sprintf("party id %d out of range [0,%d)", *id, net.N()))
		os.Exit(exitConfigErr)
	}
	if err := net.CheckThreshold(*corruptions); err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(exitConfigErr)
	}

	tlsConfig, err := net.LoadTLS()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(exitConfigErr)
	}

	self := share.PID(*id)
	peers := make(transport.Addresses)
	for i := 0; i < net.N(); i++ {
		if i == *id {
			continue
		}
		peers[share.PID(i)] = net.Addr(i)
	}

	slog.Info("bootstrapping mesh", "party", self, "n", net.N())
	mesh, err := transport.Bootstrap(self, net.N(), transport.Config{
		ListenAddr:  net.Addr(*id),
		Peers:       peers,
		TLS:         tlsConfig,
		DialTimeout: net.Timeout(),
		RetrySleep:  net.SleepTime(),
	})
	if err != nil {
		slog.Error("network bootstrap error", "error", err)
		os.Exit(exitNetworkErr)
	}
	defer mesh.Close()

	sess, err := engine.New(mesh, *corruptions, nil)
	if err != nil {
		slog.Error("protocol error", "error", err)
		os.Exit(exitProtoErr)
	}

	slog.Info("running protocol", "party", self, "input", *input)
	result, err := sess.Run(field.FromUint64(*input))
	if err != nil {
		slog.Error("protocol error", "error", err)
		os.Exit(exitProtoErr)
	}

	sess.Timing().Print()
	fmt.Println(result.String())
	os.Exit(exitOK)
}
