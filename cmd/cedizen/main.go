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
	"time"

	"github.com/poiesic/cedizen"
	"github.com/poiesic/cedizen/ai"
	"github.com/poiesic/cedizen/core"
	"github.com/poiesic/cedizen/recount"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "cedizen",
		Usage: "Civic education toolkit for the Constitution of Ghana",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to BadgerDB database directory",
				Value:   "cedizen-db",
			},
			&cli.StringFlag{
				Name:  "articles",
				Usage: "Path to the constitution JSON file",
				Value: cedizen.DefaultArticlesPath,
			},
			&cli.StringFlag{
				Name:  "cases",
				Usage: "Path to the judicial cases JSON file",
				Value: cedizen.DefaultCasesPath,
			},
			&cli.StringFlag{
				Name:  "ai-host",
				Usage: "OpenAI-compatible chat service host URL",
				Value: "http://localhost:11434/v1",
			},
			&cli.StringFlag{
				Name:  "ai-model",
				Usage: "Chat model name",
				Value: "llama3.2:1b",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search the constitution",
				ArgsUsage: "QUERY",
				Action:    searchCommand,
			},
			{
				Name:   "articles",
				Usage:  "List every constitutional article",
				Action: articlesCommand,
			},
			{
				Name:      "cases",
				Usage:     "List or search judicial cases",
				ArgsUsage: "[QUERY]",
				Action:    casesCommand,
			},
			{
				Name:      "ask",
				Usage:     "Ask the pocket lawyer a question",
				ArgsUsage: "QUESTION",
				Action:    askCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "device",
						Usage: "Device ID owning the conversation transcript",
						Value: "cli",
					},
				},
			},
			{
				Name:   "vote",
				Usage:  "Cast a stay/go vote on an article",
				Action: voteCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "article",
						Aliases:  []string{"a"},
						Usage:    "Article ID to vote on",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "type",
						Aliases:  []string{"t"},
						Usage:    "Vote type (stay or go)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "comment",
						Aliases: []string{"c"},
						Usage:   "Optional comment",
					},
				},
			},
			{
				Name:   "votes",
				Usage:  "Show the recent public voting feed",
				Action: votesCommand,
			},
			{
				Name:   "trends",
				Usage:  "Show the most-voted articles",
				Action: trendsCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of articles to show",
						Value: 5,
					},
				},
			},
			{
				Name:   "react",
				Usage:  "Toggle a reaction on a feed vote",
				Action: reactCommand,
				Flags: []cli.Flag{
					&cli.Uint64Flag{
						Name:     "vote",
						Usage:    "Vote ID to react to",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "type",
						Aliases:  []string{"t"},
						Usage:    "Reaction type (like, dislike or maybe)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "device",
						Usage: "Device ID the reaction belongs to",
						Value: "cli",
					},
				},
			},
			{
				Name:   "save",
				Usage:  "Toggle an article on the saved shelf",
				Action: saveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "article",
						Aliases:  []string{"a"},
						Usage:    "Article ID to save or unsave",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "device",
						Usage: "Device ID owning the shelf",
						Value: "cli",
					},
				},
			},
			{
				Name:   "history",
				Usage:  "Show recently read articles",
				Action: historyCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "device",
						Usage: "Device ID owning the shelf",
						Value: "cli",
					},
				},
			},
			{
				Name:   "recount",
				Usage:  "Rebuild cached reaction tallies from raw reactions",
				Action: recountCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of votes to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N votes",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openApp(c *cli.Context) (*cedizen.App, error) {
	return cedizen.Open(c.String("db"),
		cedizen.WithCorpusPaths(c.String("articles"), c.String("cases")),
		cedizen.WithAIConfig(ai.NewConfig(
			ai.WithHost(c.String("ai-host")),
			ai.WithModel(c.String("ai-model")),
		)),
	)
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("a search query is required")
	}

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	results := app.SearchConstitution(context.Background(), query)
	if len(results) == 0 {
		fmt.Println("No matching articles.")
		return nil
	}

	for _, article := range results {
		printArticle(&article)
	}
	return nil
}

func articlesCommand(c *cli.Context) error {
	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	for _, article := range app.GetAllArticles(context.Background()) {
		fmt.Printf("%-10s Article %-4s %s\n", article.ID, article.Article, article.Title)
	}
	return nil
}

func casesCommand(c *cli.Context) error {
	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := context.Background()
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))

	var cases []core.JudicialCase
	if query == "" {
		cases = app.Cases(ctx)
	} else {
		cases = app.SearchCases(ctx, query)
	}

	if len(cases) == 0 {
		fmt.Println("No cases found.")
		return nil
	}
	for _, jc := range cases {
		fmt.Printf("%s (%s) %s\n    %s\n", jc.Title, jc.Year, jc.Status, jc.Summary)
	}
	return nil
}

func askCommand(c *cli.Context) error {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("a question is required")
	}

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	assistant, err := app.NewAssistant()
	if err != nil {
		return err
	}

	exchange, err := assistant.Ask(context.Background(), c.String("device"), question)
	if err != nil {
		return fmt.Errorf("the pocket lawyer could not answer: %w", err)
	}

	fmt.Println(exchange.Answer)
	if len(exchange.Sources) > 0 {
		fmt.Println("\nSources:")
		for _, article := range exchange.Sources {
			fmt.Printf("  Article %s: %s\n", article.Article, article.Title)
		}
	}
	return nil
}

func voteCommand(c *cli.Context) error {
	voteType, err := parseVoteType(c.String("type"))
	if err != nil {
		return err
	}

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	vote, err := app.Feed().CastVote(context.Background(), c.String("article"), voteType, c.String("comment"))
	if err != nil {
		return err
	}

	fmt.Printf("Vote %d recorded as %s on %s\n", vote.Id, vote.UserAlias, vote.ArticleId)
	return nil
}

func votesCommand(c *cli.Context) error {
	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	entries, err := app.Feed().Recent(context.Background())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("The feed is empty.")
		return nil
	}

	for _, entry := range entries {
		fmt.Printf("#%-6d %-16s %-6s %-10s likes:%d dislikes:%d maybes:%d\n",
			entry.Vote.Id, entry.Vote.UserAlias, voteTypeLabel(entry.Vote.Type),
			entry.Vote.ArticleId, entry.Tally.Like, entry.Tally.Dislike, entry.Tally.Maybe)
		if entry.Vote.Comment != "" {
			fmt.Printf("        %q\n", entry.Vote.Comment)
		}
	}
	return nil
}

func trendsCommand(c *cli.Context) error {
	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	trending, err := app.Feed().Trending(context.Background(), c.Int("limit"))
	if err != nil {
		return err
	}
	if len(trending) == 0 {
		fmt.Println("No votes yet.")
		return nil
	}

	for i, t := range trending {
		fmt.Printf("%d. Article %s: %s (%d votes)\n", i+1, t.Article.Article, t.Article.Title, t.Votes)
	}
	return nil
}

func reactCommand(c *cli.Context) error {
	reaction, err := parseReactionType(c.String("type"))
	if err != nil {
		return err
	}

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	tally, err := app.Feed().ToggleReaction(context.Background(), core.ID(c.Uint64("vote")), c.String("device"), reaction)
	if err != nil {
		return err
	}

	fmt.Printf("Vote %d now has likes:%d dislikes:%d maybes:%d\n",
		tally.VoteId, tally.Like, tally.Dislike, tally.Maybe)
	return nil
}

func saveCommand(c *cli.Context) error {
	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	saved, err := app.Shelf().ToggleSaved(context.Background(), c.String("device"), c.String("article"))
	if err != nil {
		return err
	}

	if len(saved) == 0 {
		fmt.Println("Saved shelf is empty.")
		return nil
	}
	fmt.Printf("Saved articles: %s\n", strings.Join(saved, ", "))
	return nil
}

func historyCommand(c *cli.Context) error {
	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	history, err := app.Shelf().History(context.Background(), c.String("device"))
	if err != nil {
		return err
	}

	if len(history) == 0 {
		fmt.Println("No reading history.")
		return nil
	}
	for i, articleID := range history {
		fmt.Printf("%d. %s\n", i+1, articleID)
	}
	return nil
}

func recountCommand(c *cli.Context) error {
	config := &recount.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}

	// Validate config
	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	app, err := openApp(c)
	if err != nil {
		return err
	}
	defer app.Close()

	fmt.Fprintf(os.Stderr, "Database: %s\n\n", c.String("db"))

	if err := app.NewRecounter(config, os.Stderr).Run(context.Background()); err != nil {
		return fmt.Errorf("recount failed: %w", err)
	}
	return nil
}

func printArticle(article *core.Article) {
	fmt.Printf("Article %s: %s\n", article.Article, article.Title)
	if article.Simplified != "" {
		fmt.Printf("  %s\n", article.Simplified)
	}
	fmt.Printf("  %s\n", article.Content)
	if len(article.Tags) > 0 {
		fmt.Printf("  tags: %s\n", strings.Join(article.Tags, ", "))
	}
	fmt.Println()
}

func parseVoteType(s string) (core.VoteType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stay":
		return core.VoteTypeStay, nil
	case "go":
		return core.VoteTypeGo, nil
	default:
		return 0, fmt.Errorf("invalid vote type %q: must be stay or go", s)
	}
}

func parseReactionType(s string) (core.ReactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "like":
		return core.ReactionTypeLike, nil
	case "dislike":
		return core.ReactionTypeDislike, nil
	case "maybe":
		return core.ReactionTypeMaybe, nil
	default:
		return 0, fmt.Errorf("invalid reaction type %q: must be like, dislike or maybe", s)
	}
}

func voteTypeLabel(t core.VoteType) string {
	switch t {
	case core.VoteTypeStay:
		return "stay"
	case core.VoteTypeGo:
		return "go"
	}
	return "?"
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
