package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/exp/slog"
)

func main() {
	build := flag.Bool("build", false, "build the graph from the geometry source even if a snapshot exists")
	config_file := flag.String("config", "", "path of the config file")
	flag.Parse()

	file := *config_file
	if file == "" {
		file = os.Getenv("PATHFIND_CONFIG")
	}
	if file == "" {
		file = DEFAULT_CONFIG_FILE
	}

	config, err := ReadConfig(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := SetupLogging(config.Logging, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	metrics := NewMetrics()
	manager, err := NewGraphManager(config, *build || config.BuildGraph, metrics)
	if err != nil {
		slog.Error("failed to create graph: " + err.Error())
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         config.Server.Addr,
		Handler:      NewRouter(manager, metrics),
		ReadTimeout:  config.Server.ReadTimeout,
		WriteTimeout: config.Server.WriteTimeout,
	}
	slog.Info("listening", "addr", config.Server.Addr, "nodes", manager.GetGraph().NodeCount())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
