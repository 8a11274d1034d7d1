package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"path/filepath"

	"tinyhttpd/internal/config"
	"tinyhttpd/internal/server"
	"tinyhttpd/internal/version"
)

func main() {
	var configPath string
	var listen string
	var directory string
	var logFile string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "Path to config json file")
	flag.StringVar(&listen, "listen", "", "Listen address (overrides config)")
	flag.StringVar(&directory, "directory", "", "Base directory for /files/ (overrides config)")
	flag.StringVar(&logFile, "log-file", "", "Optional log file path")
	flag.BoolVar(&showVersion, "version", false, "Print version information and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version.Get().String())
		return
	}

	if logFile != "" {
		if err := setupLogFile(logFile); err != nil {
			log.Printf("FATAL: log file %q: %v", logFile, err)
			os.Exit(1)
		}
	}

	// Load + validate config; flags win over the file.
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("FATAL: load config %q: %v", configPath, err)
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}
	if listen != "" {
		cfg.Listen = listen
	}
	if directory != "" {
		cfg.BaseDir = directory
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("FATAL: invalid config: %v", err)
		fmt.Fprintln(os.Stderr, "Invalid config:", err)
		os.Exit(1)
	}

	// A missing or unresolvable base directory is a startup failure,
	// never a per-request error.
	baseDir, err := resolveBaseDir(cfg.BaseDir)
	if err != nil {
		log.Printf("FATAL: base directory %q: %v", cfg.BaseDir, err)
		fmt.Fprintln(os.Stderr, "Invalid base directory:", err)
		os.Exit(1)
	}

	srv := server.New(cfg, baseDir)

	// Bind first (so we can fail early), then serve.
	ln, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		log.Printf("FATAL: listen %q failed: %v", cfg.Listen, err)
		fmt.Fprintln(os.Stderr, "Listen failed:", err)
		os.Exit(1)
	}

	log.Printf("tinyhttpd %s", version.Get().String())
	log.Printf("Listening on %s", cfg.Listen)
	log.Printf("Base directory: %s", baseDir)

	if err := srv.Serve(ln); err != nil {
		log.Fatal(err)
	}
}

// resolveBaseDir turns the configured directory into an absolute path
// and requires it to exist.
func resolveBaseDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	st, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !st.IsDir() {
		return "", fmt.Errorf("%s is not a directory", abs)
	}
	return abs, nil
}

func setupLogFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	// Log to file and stdout.
	log.SetOutput(io.MultiWriter(os.Stdout, f))
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return nil
}
