package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/claude/healthfuture/internal/dashboard"
	"github.com/claude/healthfuture/internal/mcp"
	"github.com/claude/healthfuture/internal/mockdata"
	"github.com/claude/healthfuture/internal/models"
	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "HealthFuture server URL; empty runs an in-process dashboard")
	email := flag.String("email", "", "login email for the remote server (or HEALTHFUTURE_EMAIL)")
	password := flag.String("password", "", "login password for the remote server (or HEALTHFUTURE_PASSWORD)")
	seed := flag.Uint64("seed", 0, "mock data seed for the in-process dashboard (0 = random)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("healthfuture-mcp", Version)
		return
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "loading .env: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the MCP protocol, so logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource
	if *serverURL != "" {
		client := mcp.NewHTTPClient(*serverURL)
		if *email == "" {
			*email = os.Getenv("HEALTHFUTURE_EMAIL")
		}
		if *password == "" {
			*password = os.Getenv("HEALTHFUTURE_PASSWORD")
		}
		if *email != "" {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			u, err := client.Login(ctx, *email, *password)
			cancel()
			if err != nil {
				log.Error("remote login failed", "server", *serverURL, "error", err)
				os.Exit(1)
			}
			log.Info("logged in", "server", *serverURL, "user", u.Name)
		}
		ds = client
	} else {
		gen := mockdata.NewGenerator(*seed)
		ds = dashboard.NewService(dashboard.NewState(gen.Profiles(), models.RangeDay), gen, log)
		log.Info("using in-process dashboard")
	}

	s := mcp.New(ds, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
