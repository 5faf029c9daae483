package cedizen

import (
	"context"
	"io"
	"testing"

	"github.com/poiesic/cedizen/ai/mock"
	"github.com/poiesic/cedizen/core"
	"github.com/poiesic/cedizen/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticSource serves a fixed corpus for app tests.
type staticSource struct {
	articles []core.Article
	cases    []core.JudicialCase
}

func (s *staticSource) ReadAll(ctx context.Context) (*corpus.Collection, error) {
	return &corpus.Collection{Articles: s.articles, Cases: s.cases}, nil
}

func openTestApp(t *testing.T) *App {
	t.Helper()

	app, err := Open("",
		WithInMemoryStorage(),
		WithAIProvider(mock.NewMockProvider()),
		WithCorpusSource(&staticSource{
			articles: []core.Article{
				{
					ID:      "art-21",
					Article: "21",
					Title:   "Freedom of Assembly",
					Content: "All persons shall have the right to freedom of assembly including freedom to take part in processions and demonstrations.",
					Tags:    []string{"protest", "assembly"},
				},
				{
					ID:      "art-42",
					Article: "42",
					Title:   "Right to Vote",
					Content: "Every citizen of Ghana of eighteen years of age or above has the right to vote.",
				},
			},
			cases: []core.JudicialCase{
				{ID: "case-1", Title: "NPP v Attorney-General", Year: "1993", Summary: "Public celebrations case.", Tags: []string{"assembly"}},
			},
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })

	return app
}

func TestOpen(t *testing.T) {
	app := openTestApp(t)
	assert.NotNil(t, app.Feed())
	assert.NotNil(t, app.Shelf())
	assert.NotNil(t, app.VoteRepository())
	assert.NotNil(t, app.ChatRepository())
}

func TestApp_SearchConstitution(t *testing.T) {
	app := openTestApp(t)
	ctx := context.Background()

	results := app.SearchConstitution(ctx, "Is peaceful protest legal?")
	require.NotEmpty(t, results)
	assert.Equal(t, "art-21", results[0].ID)

	assert.Len(t, app.GetAllArticles(ctx), 2)
}

func TestApp_Cases(t *testing.T) {
	app := openTestApp(t)
	ctx := context.Background()

	cases := app.Cases(ctx)
	require.Len(t, cases, 1)
	assert.Equal(t, "case-1", cases[0].ID)

	matches := app.SearchCases(ctx, "celebrations")
	require.Len(t, matches, 1)

	assert.Empty(t, app.SearchCases(ctx, "zoning"))
}

func TestApp_FeedAndShelf(t *testing.T) {
	app := openTestApp(t)
	ctx := context.Background()

	vote, err := app.Feed().CastVote(ctx, "art-21", core.VoteTypeStay, "keep it")
	require.NoError(t, err)
	assert.NotZero(t, vote.Id)

	saved, err := app.Shelf().ToggleSaved(ctx, "device-1", "art-21")
	require.NoError(t, err)
	assert.Equal(t, []string{"art-21"}, saved)
}

func TestApp_NewAssistant(t *testing.T) {
	app := openTestApp(t)
	ctx := context.Background()

	assistant, err := app.NewAssistant()
	require.NoError(t, err)

	exchange, err := assistant.Ask(ctx, "device-1", "Is peaceful protest legal?")
	require.NoError(t, err)
	assert.NotEmpty(t, exchange.Answer)
	require.NotEmpty(t, exchange.Sources)
	assert.Equal(t, "art-21", exchange.Sources[0].ID)
}

func TestApp_NewRecounter(t *testing.T) {
	app := openTestApp(t)
	ctx := context.Background()

	_, err := app.Feed().CastVote(ctx, "art-21", core.VoteTypeStay, "")
	require.NoError(t, err)

	recounter := app.NewRecounter(nil, io.Discard)
	require.NoError(t, recounter.Run(ctx))
}
