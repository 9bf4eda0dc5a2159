// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/peeq"
	"github.com/poiesic/peeq/ai"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "peeq",
		Usage: "AI shopping assistant over vendor CSV catalogs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API server",
				Action: serveCommand,
				Flags: append(catalogFlags(),
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Address to listen on",
						Value: ":8080",
					},
					&cli.StringFlag{
						Name:  "db",
						Usage: "Path to BadgerDB prompt store directory (in-memory if empty)",
					},
					&cli.StringFlag{
						Name:  "llm-host",
						Usage: "Chat completion API host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "llm-model",
						Usage: "Chat model name",
					},
					&cli.StringFlag{
						Name:  "llm-api-key",
						Usage: "API key for the chat service",
						Value: "none",
					},
					&cli.IntFlag{
						Name:  "max-tool-steps",
						Usage: "Maximum model round-trips per reply",
						Value: 5,
					},
				),
			},
			{
				Name:      "search",
				Usage:     "Run a one-shot catalog search",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags:     catalogFlags(),
			},
			{
				Name:   "summary",
				Usage:  "Print the catalog summary",
				Action: summaryCommand,
				Flags:  catalogFlags(),
			},
			{
				Name:  "prompt",
				Usage: "Administer system prompt versions",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB prompt store directory",
						Required: true,
					},
				},
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List all prompt versions",
						Action: promptListCommand,
					},
					{
						Name:      "add",
						Usage:     "Store a new prompt version and make it active",
						ArgsUsage: "<content>",
						Action:    promptAddCommand,
					},
					{
						Name:      "activate",
						Usage:     "Make an existing version the active prompt",
						ArgsUsage: "<version>",
						Action:    promptActivateCommand,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// catalogFlags are shared by every command that reads the catalog.
func catalogFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "data-dir",
			Usage:    "Directory containing vendor CSV exports",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "extra-dir",
			Usage: "Name of the secondary CSV subdirectory",
		},
		&cli.IntFlag{
			Name:  "pool-size",
			Usage: "CSV parse worker count (defaults to half the CPUs)",
		},
	}
}

func appOptions(c *cli.Context) []peeq.AppOption {
	opts := []peeq.AppOption{}
	if dir := c.String("extra-dir"); dir != "" {
		opts = append(opts, peeq.WithExtraSubdir(dir))
	}
	if size := c.Int("pool-size"); size > 0 {
		opts = append(opts, peeq.WithPoolSize(size))
	}
	return opts
}

func serveCommand(c *cli.Context) error {
	opts := appOptions(c)

	if model := c.String("llm-model"); model != "" {
		config := ai.NewConfig(
			ai.WithHost(c.String("llm-host")),
			ai.WithAPIKey(c.String("llm-api-key")),
			ai.WithModel(model),
			ai.WithMaxToolSteps(c.Int("max-tool-steps")),
		)
		if err := config.Validate(); err != nil {
			return err
		}
		opts = append(opts, peeq.WithAIConfig(config))
	} else {
		slog.Warn("no --llm-model given, chat endpoint disabled")
	}

	app, err := peeq.NewApp(c.String("data-dir"), c.String("db"), opts...)
	if err != nil {
		return fmt.Errorf("failed to build app: %w", err)
	}
	defer app.Close()

	server, err := app.NewServer()
	if err != nil {
		return err
	}
	return server.Run(c.String("addr"))
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("query is required")
	}

	app, err := peeq.NewApp(c.String("data-dir"), "", appOptions(c)...)
	if err != nil {
		return fmt.Errorf("failed to build app: %w", err)
	}
	defer app.Close()

	results := app.Search(context.Background(), query)
	if len(results) == 0 {
		fmt.Println("no products found")
		return nil
	}
	for _, product := range results {
		fmt.Printf("%s\t%s\t%.2f\t%s\n", product.Id, product.Name, product.Price, product.Brand)
	}
	return nil
}

func summaryCommand(c *cli.Context) error {
	app, err := peeq.NewApp(c.String("data-dir"), "", appOptions(c)...)
	if err != nil {
		return fmt.Errorf("failed to build app: %w", err)
	}
	defer app.Close()

	summary := app.Catalog().Summary(context.Background())
	fmt.Printf("products: %d\nfiles: %d\nbrands: %s\n",
		summary.TotalProducts, summary.TotalFiles, strings.Join(summary.Brands, ", "))
	for _, file := range summary.Files {
		fmt.Printf("  %s: %d\n", file.Name, file.Count)
	}
	return nil
}

func promptListCommand(c *cli.Context) error {
	app, err := openPromptStore(c)
	if err != nil {
		return err
	}
	defer app.Close()

	records, err := app.Prompts().ListPrompts(context.Background())
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("no prompts stored")
		return nil
	}
	for _, record := range records {
		marker := " "
		if record.Active {
			marker = "*"
		}
		fmt.Printf("%s v%d  %s  %s\n", marker, record.Version,
			record.CreatedAt.Format("2006-01-02 15:04"), firstLine(record.Content))
	}
	return nil
}

func promptAddCommand(c *cli.Context) error {
	content := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("prompt content is required")
	}

	app, err := openPromptStore(c)
	if err != nil {
		return err
	}
	defer app.Close()

	record, err := app.Prompts().AddPrompt(context.Background(), content)
	if err != nil {
		return err
	}
	fmt.Printf("stored prompt v%d (active)\n", record.Version)
	return nil
}

func promptActivateCommand(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("version argument is required")
	}
	var version int64
	if _, err := fmt.Sscanf(c.Args().First(), "%d", &version); err != nil || version < 1 {
		return fmt.Errorf("invalid version %q", c.Args().First())
	}

	app, err := openPromptStore(c)
	if err != nil {
		return err
	}
	defer app.Close()

	record, err := app.Prompts().ActivatePrompt(context.Background(), version)
	if err != nil {
		return err
	}
	fmt.Printf("activated prompt v%d\n", record.Version)
	return nil
}

// openPromptStore builds an app around the prompt database only.
// The prompt commands don't need a catalog, so they use the db
// directory itself as a throwaway data dir.
func openPromptStore(c *cli.Context) (*peeq.App, error) {
	dbPath := c.String("db")
	if dbPath == "" {
		return nil, fmt.Errorf("database path is required")
	}
	return peeq.NewApp(dbPath, dbPath)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 60 {
		s = s[:60] + "..."
	}
	return s
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
