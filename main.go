package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	errLogger := log.New(os.Stderr, "", log.Lmsgprefix)

	config, err := InitConfig(os.Args[0], os.Args[1:])
	if err != nil {
		errLogger.Fatalln(err)
	}

	// Set up logging
	var logger *log.Logger
	if config.Logging.Enabled && config.Logging.Logfile != "" {
		logFile, err := os.OpenFile(config.Logging.Logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			errLogger.Fatalf("Error opening log file: %v", err)
		}
		defer func(logFile *os.File) {
			if err := logFile.Close(); err != nil {
				errLogger.Printf("Error closing log file: %v", err)
			}
		}(logFile)
		logger = log.New(logFile, "httpresptime: ", log.Ldate|log.Ltime)
	} else {
		logger = log.New(os.Stdout, "httpresptime: ", log.Ldate|log.Ltime)
	}

	checker := NewChecker(config)

	// Interrupts cancel the context; the loop and any in-flight request
	// unwind through the "Aborted." path below.
	ctx, cancel := context.WithCancel(context.Background())
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	switch {
	case config.LoopMode:
		redirURL, err := checker.Resolve(ctx, config.URL)
		if err != nil {
			if ctx.Err() != nil {
				fmt.Println("Aborted.")
				return
			}
			errLogger.Fatalln(err)
		}
		config.URL = redirURL

		if !config.Parsable {
			fmt.Print(FormatUsingURL(redirURL))
		}

		exporter := NewExporter(config)
		if config.Metrics.Listen != "" {
			go ServeMetrics(config.Metrics.Listen, logger)
		}

		LoopURL(ctx, checker, config, os.Stdout, logger, exporter)

		if exporter != nil {
			exporter.Close()
		}
		fmt.Println("Aborted.")

	case config.Info:
		if err := DisplayURLInfo(ctx, checker, config.URL, config.DumpHead, os.Stdout); err != nil {
			errLogger.Fatalln(err)
		}

	default:
		redirURL, err := checker.Resolve(ctx, config.URL)
		if err != nil {
			if ctx.Err() != nil {
				fmt.Println("Aborted.")
				return
			}
			errLogger.Fatalln(err)
		}

		if !config.Parsable {
			fmt.Print(FormatUsingURL(redirURL))
		}

		var progress io.Writer
		if !config.Parsable {
			progress = os.Stdout
		}

		durations, _, err := checker.TimeURL(ctx, redirURL, config.Checker.Requests, progress)
		if err != nil {
			if ctx.Err() != nil {
				fmt.Println("Aborted.")
				return
			}
			errLogger.Fatalln(err)
		}

		summary, err := Summarize(durations)
		if err != nil {
			errLogger.Fatalln(err)
		}

		fmt.Print(FormatSummary(summary, config))
	}
}
