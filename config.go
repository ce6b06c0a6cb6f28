package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ttpr0/go-pathfind/graph"
	"github.com/ttpr0/go-pathfind/parser"
	"github.com/ttpr0/go-pathfind/routing"
	. "github.com/ttpr0/go-pathfind/util"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

const DEFAULT_CONFIG_FILE = "./config.yaml"

// Reads the config file on top of the defaults and applies the environment
// overrides. A missing file is not an error, the defaults are used instead.
func ReadConfig(file string) (Config, error) {
	config := DefaultConfig()
	if !FileExists(file) {
		slog.Warn("config file not found, using defaults", "file", file)
	} else {
		slog.Info("Reading config file", "file", file)
		data, err := os.ReadFile(file)
		if err != nil {
			return config, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return config, fmt.Errorf("failed to parse config file %s: %w", file, err)
		}
	}
	if err := config.ApplyEnv(); err != nil {
		return config, err
	}
	return config, nil
}

func DefaultConfig() Config {
	config := Config{}
	config.Build.Source = SourceOptions{
		Type:           GEOJSON,
		Profile:        "driving",
		OnewayProperty: parser.DEFAULT_ONEWAY_PROPERTY,
	}
	config.Build.Snapshot = SnapshotOptions{
		Path:   "./graphs/nodes.json",
		Format: SnapshotFormat(graph.NODES),
	}
	config.Server = ServerOptions{
		Addr:         ":5002",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	config.Search.Mode = SearchMode(routing.DISCOVERY)
	config.Logging.Level = "info"
	return config
}

type Config struct {
	Build struct {
		Source   SourceOptions   `yaml:"source"`
		Snapshot SnapshotOptions `yaml:"snapshot"`
	} `yaml:"build"`
	BuildGraph bool           `yaml:"build-graph"`
	Server     ServerOptions  `yaml:"server"`
	Search     SearchOptions  `yaml:"search"`
	Logging    LoggingOptions `yaml:"logging"`
}

type SourceOptions struct {
	Path string     `yaml:"path"`
	Type SourceType `yaml:"type"`
	// way decoder used for osm sources (driving|walking)
	Profile        string `yaml:"profile"`
	OnewayProperty string `yaml:"oneway-property"`
}

type SnapshotOptions struct {
	// paths ending in .sz are stored snappy compressed
	Path   string         `yaml:"path"`
	Format SnapshotFormat `yaml:"format"`
}

type ServerOptions struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read-timeout"`
	WriteTimeout time.Duration `yaml:"write-timeout"`
}

type SearchOptions struct {
	Mode SearchMode `yaml:"mode"`
}

type LoggingOptions struct {
	Level string `yaml:"level"`
}

// Overrides config values from PATHFIND_* environment variables.
func (self *Config) ApplyEnv() error {
	if addr := os.Getenv("PATHFIND_ADDR"); addr != "" {
		self.Server.Addr = addr
	}
	if level := os.Getenv("PATHFIND_LOG_LEVEL"); level != "" {
		if _, err := ParseLogLevel(level); err != nil {
			return fmt.Errorf("PATHFIND_LOG_LEVEL: %w", err)
		}
		self.Logging.Level = level
	}
	if snapshot := os.Getenv("PATHFIND_SNAPSHOT"); snapshot != "" {
		self.Build.Snapshot.Path = snapshot
	}
	return nil
}

//**********************************************************
// enums
//**********************************************************

type SourceType byte

const (
	GEOJSON SourceType = 0
	OSM     SourceType = 1
	OSMPBF  SourceType = 2
)

func (self SourceType) String() string {
	switch self {
	case GEOJSON:
		return "geojson"
	case OSM:
		return "osm"
	case OSMPBF:
		return "osmpbf"
	default:
		panic("unknown source type")
	}
}
func (self SourceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *SourceType) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	source_typ, err := SourceTypeFromString(typ)
	*self = source_typ
	return err
}
func (self SourceType) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *SourceType) UnmarshalYAML(value *yaml.Node) error {
	typ, err := SourceTypeFromString(value.Value)
	if err != nil {
		return err
	}
	*self = typ
	return nil
}

func SourceTypeFromString(s string) (SourceType, error) {
	switch s {
	case "geojson":
		return GEOJSON, nil
	case "osm":
		return OSM, nil
	case "osmpbf", "pbf":
		return OSMPBF, nil
	default:
		return GEOJSON, errors.New("unknown source type: " + s)
	}
}

type SearchMode routing.SearchMode

func (self SearchMode) String() string {
	switch routing.SearchMode(self) {
	case routing.DISCOVERY:
		return "discovery"
	case routing.STRICT:
		return "strict"
	default:
		panic("unknown search mode")
	}
}
func (self SearchMode) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *SearchMode) UnmarshalYAML(value *yaml.Node) error {
	mode, err := SearchModeFromString(value.Value)
	if err != nil {
		return err
	}
	*self = mode
	return nil
}

func SearchModeFromString(s string) (SearchMode, error) {
	switch s {
	case "discovery", "":
		return SearchMode(routing.DISCOVERY), nil
	case "strict":
		return SearchMode(routing.STRICT), nil
	default:
		return SearchMode(routing.DISCOVERY), errors.New("unknown search mode: " + s)
	}
}

type SnapshotFormat graph.SnapshotFormat

func (self SnapshotFormat) String() string {
	return graph.SnapshotFormat(self).String()
}
func (self SnapshotFormat) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *SnapshotFormat) UnmarshalYAML(value *yaml.Node) error {
	format, err := graph.SnapshotFormatFromString(value.Value)
	if err != nil {
		return err
	}
	*self = SnapshotFormat(format)
	return nil
}
