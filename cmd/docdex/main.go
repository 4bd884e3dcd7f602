package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/chalkline/docdex"
	"github.com/chalkline/docdex/ai"
	"github.com/chalkline/docdex/index"
)

func main() {
	// Optional .env; flags below still win over the environment.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "docdex",
		Usage: "Incremental document indexing and search",
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
				Name:   "index",
				Usage:  "Index all documents in a directory",
				Action: indexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "documents",
						Aliases:  []string{"d"},
						Usage:    "Path to the documents directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "index",
						Usage:   "Path to the index JSON file",
						Value:   "document_index.json",
						EnvVars: []string{"DOCDEX_INDEX"},
					},
					&cli.StringFlag{
						Name:    "cache",
						Usage:   "Path to the content cache database directory",
						Value:   "content_cache",
						EnvVars: []string{"DOCDEX_CACHE"},
					},
					&cli.StringFlag{
						Name:    "ai-host",
						Usage:   "OpenAI-compatible host URL for AI summaries (empty disables AI)",
						EnvVars: []string{"DOCDEX_AI_HOST"},
					},
					&cli.StringFlag{
						Name:    "ai-model",
						Usage:   "Model name for AI summaries",
						EnvVars: []string{"DOCDEX_AI_MODEL"},
					},
					&cli.StringFlag{
						Name:    "ai-token",
						Usage:   "API token for the AI host",
						EnvVars: []string{"DOCDEX_AI_TOKEN"},
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of parallel page workers",
						Value: 4,
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Search the indexed documents",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "index",
						Usage:   "Path to the index JSON file",
						Value:   "document_index.json",
						EnvVars: []string{"DOCDEX_INDEX"},
					},
					&cli.StringFlag{
						Name:    "cache",
						Usage:   "Path to the content cache database directory",
						Value:   "content_cache",
						EnvVars: []string{"DOCDEX_CACHE"},
					},
					&cli.IntFlag{
						Name:  "max-docs",
						Usage: "Maximum number of documents to return",
						Value: 3,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openCorpus(c *cli.Context, withAI bool) (*docdex.Corpus, error) {
	var opts []docdex.CorpusOption
	if withAI && c.String("ai-host") != "" {
		cfgOpts := []ai.ConfigOption{ai.WithHost(c.String("ai-host"))}
		if model := c.String("ai-model"); model != "" {
			cfgOpts = append(cfgOpts, ai.WithModel(model))
		}
		if token := c.String("ai-token"); token != "" {
			cfgOpts = append(cfgOpts, ai.WithToken(token))
		}

		config := ai.NewConfig(cfgOpts...)
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("invalid AI configuration: %w", err)
		}
		opts = append(opts, docdex.WithAIConfig(config))
	}
	return docdex.Open(c.String("index"), c.String("cache"), opts...)
}

func indexCommand(c *cli.Context) error {
	ctx := context.Background()

	corpus, err := openCorpus(c, true)
	if err != nil {
		return fmt.Errorf("failed to open corpus: %w", err)
	}
	defer corpus.Close()

	pipeline, err := corpus.NewPipeline(index.WithPoolSize(c.Int("pool-size")))
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	stats, err := pipeline.Run(ctx, c.String("documents"))
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Processed: %d\nSkipped: %d\nFailed: %d\n",
		stats.Processed, stats.Skipped, stats.Failed)
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query argument is required")
	}

	corpus, err := openCorpus(c, false)
	if err != nil {
		return fmt.Errorf("failed to open corpus: %w", err)
	}
	defer corpus.Close()

	searcher, err := corpus.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	matches, err := searcher.Query(ctx, query, c.Int("max-docs"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(matches) == 0 {
		fmt.Println("No matching documents.")
		return nil
	}

	for _, match := range matches {
		fmt.Printf("%s (score %d, %d pages)\n",
			match.Entry.Filename, match.Score, match.Entry.TotalPages)
		fmt.Printf("  %s\n", previewSummary(match.Entry.DocumentSummary))
	}
	return nil
}

// previewSummary shortens a document summary for terminal display.
func previewSummary(summary string) string {
	runes := []rune(summary)
	if len(runes) <= 200 {
		return summary
	}
	return string(runes[:200]) + "..."
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

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

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
