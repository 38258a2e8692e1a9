package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Checker struct {
		Requests   int    `yaml:"requests"`
		Keepalive  bool   `yaml:"keepalive"`
		UserAgent  string `yaml:"user_agent"`
		Insecure   bool   `yaml:"insecure"`
		SourceHost string `yaml:"source_host"`
	} `yaml:"checker"`

	Loop struct {
		Delay   int  `yaml:"delay"`
		Verbose bool `yaml:"verbose"`
	} `yaml:"loop"`

	Logging struct {
		Enabled bool   `yaml:"enabled"`
		Logfile string `yaml:"logfile"`
	} `yaml:"logging"`

	InfluxDB struct {
		Host        string `yaml:"host"`
		Port        int    `yaml:"port"`
		Org         string `yaml:"org"`
		Bucket      string `yaml:"bucket"`
		Measurement string `yaml:"measurement"`
		Token       string `yaml:"token"`
	} `yaml:"influxdb"`

	Metrics struct {
		Listen string `yaml:"listen"`
	} `yaml:"metrics"`

	// Extra request headers, applied to every request in a run.
	Headers map[string]string `yaml:"headers"`

	// Run options, flags only.
	URL      string `yaml:"-"`
	Single   bool   `yaml:"-"`
	LoopMode bool   `yaml:"-"`
	Info     bool   `yaml:"-"`
	DumpHead bool   `yaml:"-"`
	Parsable bool   `yaml:"-"`
	Report   bool   `yaml:"-"`
}

const (
	defaultRequests  = 5
	defaultLoopDelay = 10
	defaultInfluxMsr = "httpresptime"
)

// DefaultConfig returns the configuration used when no file and no flags
// are given.
func DefaultConfig() Config {
	var config Config
	config.Checker.Requests = defaultRequests
	config.Checker.Keepalive = true
	config.Checker.Insecure = true
	config.Loop.Delay = defaultLoopDelay
	config.InfluxDB.Measurement = defaultInfluxMsr
	return config
}

// LoadConfig loads the application configuration from a YAML file
func LoadConfig(filepath string, config *Config) error {
	if filepath == "" {
		return nil
	}

	data, err := os.ReadFile(filepath)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return err
	}

	return nil
}

// InitConfig parses flags and the optional config file into a Config.
// Provided flags always override configuration file values.
func InitConfig(name string, args []string) (*Config, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	config := DefaultConfig()

	var requests, delay int
	var confPath, agent string
	var keepalive, insecure, verbose bool

	flags.IntVar(&requests, "n", config.Checker.Requests, "number of requests to run")
	flags.BoolVar(&config.Single, "single", false, "send a single request (same as -n 1)")
	flags.BoolVar(&keepalive, "keepalive", config.Checker.Keepalive, "reuse one connection across requests")
	flags.BoolVar(&config.LoopMode, "loop", false, "loop sending requests forever")
	flags.IntVar(&delay, "delay", config.Loop.Delay, "delay in seconds between requests with -loop")
	flags.BoolVar(&verbose, "verbose", config.Loop.Verbose, "per-iteration status and size detail with -loop")
	flags.BoolVar(&config.Info, "info", false, "display http response information")
	flags.BoolVar(&config.DumpHead, "headers", false, "display response headers (only with -info)")
	flags.BoolVar(&config.Parsable, "parsable", false, "machine parsable output")
	flags.BoolVar(&config.Report, "report", false, "labeled report output")
	flags.StringVar(&agent, "agent", config.Checker.UserAgent, "User-Agent header to send")
	flags.BoolVar(&insecure, "insecure", config.Checker.Insecure, "skip TLS certificate verification")
	flags.StringVar(&confPath, "config", "", "custom config path")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("flag error: %w", err)
	}

	// load user defined custom config file
	if err := LoadConfig(confPath, &config); err != nil {
		return nil, fmt.Errorf("invalid config %s, %w", confPath, err)
	}

	// provided flags always override configuration
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			config.Checker.Requests = requests
		case "keepalive":
			config.Checker.Keepalive = keepalive
		case "delay":
			config.Loop.Delay = delay
		case "verbose":
			config.Loop.Verbose = verbose
		case "agent":
			config.Checker.UserAgent = agent
		case "insecure":
			config.Checker.Insecure = insecure
		}
	})

	if config.Single {
		config.Checker.Requests = 1
	}

	if flags.NArg() != 1 {
		return nil, fmt.Errorf("usage: %s [flags] URL", name)
	}
	config.URL = NormalizeURL(flags.Arg(0))

	// Set default values if not specified
	if config.Checker.SourceHost == "" {
		hostname, err := os.Hostname()
		if err == nil {
			config.Checker.SourceHost = hostname
		} else {
			config.Checker.SourceHost = "unknown"
		}
	}

	return &config, nil
}

// NormalizeURL defaults the scheme to http:// when none is given.
func NormalizeURL(raw string) string {
	if !strings.Contains(raw, "://") {
		return "http://" + raw
	}
	return raw
}
