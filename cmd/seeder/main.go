package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"iter"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/poiesic/cedizen"
	"github.com/poiesic/cedizen/core"
)

var comments = []string{
	"This one keeps governments honest.",
	"Needs plainer language so everyone can understand it.",
	"This article protects people like my grandmother.",
	"The courts lean on this all the time.",
	"Feels outdated in the digital age.",
	"Every student should read this before voting.",
	"This is the backbone of our democracy.",
	"I only learned about this after my landlord dispute.",
	"Should be taught in every junior high school.",
	"The wording leaves too much room for abuse.",
	"Without this the press could not do its job.",
	"This saved my cousin during an unlawful arrest.",
	"Too easy for officials to ignore in practice.",
	"A review commission should modernize this one.",
	"Proud that our constitution says this plainly.",
	"I wish enforcement matched the promise here.",
	"This is why we can worship freely.",
	"Market women deserve the protection written here.",
	"The eighteen-year threshold still makes sense.",
	"Chiefs and councils should study this closely.",
	"This clause settled our village land dispute.",
	"More civic education would make this real.",
	"Reads well on paper, weak on the ground.",
	"My favourite article in the whole document.",
	"This should never be amended.",
	"Parliament hides behind this too often.",
	"Finally understood this thanks to the simplified text.",
	"We fought for this in 1992.",
	"This is what makes us citizens, not subjects.",
	"Still waiting to see this enforced fairly.",
}

var (
	dbPath       = flag.String("db", "./cedizen-db", "path to BadgerDB database directory")
	seedFileName = flag.String("src", "", "file of seed comments, one per line")
	voteCount    = flag.Int("n", 60, "number of votes to cast")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// linesFromFile returns an iterator over lines in a file.
func linesFromFile(filename string) (iter.Seq[string], error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	return func(yield func(string) bool) {
		defer f.Close()
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	}, nil
}

// linesFromSlice returns an iterator over a slice of strings.
func linesFromSlice(lines []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, line := range lines {
			if !yield(line) {
				return
			}
		}
	}
}

// repeat cycles an iterator until n values have been produced.
func repeat(source iter.Seq[string], n int) iter.Seq[string] {
	return func(yield func(string) bool) {
		produced := 0
		for produced < n {
			before := produced
			for line := range source {
				if produced == n {
					return
				}
				if !yield(line) {
					return
				}
				produced++
			}
			if produced == before {
				// Empty source, nothing to cycle
				return
			}
		}
	}
}

func main() {
	app, err := cedizen.Open(*dbPath)
	if err != nil {
		panic(err)
	}
	defer app.Close()

	ctx := context.Background()

	articles := app.GetAllArticles(ctx)
	if len(articles) == 0 {
		panic("no articles loaded; check the data files")
	}

	// Determine source of seed comments
	var source iter.Seq[string]
	if seedFileName != nil && *seedFileName != "" {
		source, err = linesFromFile(*seedFileName)
		if err != nil {
			panic(err)
		}
	} else {
		source = linesFromSlice(comments)
	}

	feed := app.Feed()
	cast := 0

	for comment := range repeat(source, *voteCount) {
		article := articles[rand.IntN(len(articles))]

		voteType := core.VoteTypeStay
		if rand.IntN(3) == 0 {
			voteType = core.VoteTypeGo
		}

		// A third of the votes go in without a comment
		if rand.IntN(3) == 0 {
			comment = ""
		}

		vote, err := feed.CastVote(ctx, article.ID, voteType, comment)
		if err != nil {
			panic(err)
		}
		cast++

		// Sprinkle reactions from a handful of demo devices
		for device := 0; device < 4; device++ {
			if rand.IntN(2) == 0 {
				continue
			}
			reaction := core.ReactionType(1 + rand.IntN(3))
			deviceID := fmt.Sprintf("seed-device-%d", device)
			if _, err := feed.ToggleReaction(ctx, vote.Id, deviceID, reaction); err != nil {
				panic(err)
			}
		}
	}

	slog.Info("seeded votes feed", "votes", cast, "articles", len(articles))
}
