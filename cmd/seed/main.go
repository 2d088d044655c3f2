package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"bookstore/internal/book"
	"bookstore/internal/category"
	"bookstore/internal/config"
	"bookstore/internal/entity"
	"bookstore/internal/logger"
	"bookstore/internal/store"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
)

var genres = []string{"Fiction", "Science Fiction", "History", "Science", "Technology", "Romance", "Mystery", "Biography", "Philosophy", "Art"}

func main() {
	count := flag.Int("count", 1000, "number of books to generate")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	st, err := store.Open(ctx, store.Options{
		Driver:     cfg.DBDriver,
		DSN:        cfg.DBDSN,
		SQLitePath: cfg.SQLitePath,
		Timeout:    cfg.DBTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer st.Close()

	added, err := seed(ctx, st, *count, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Int("books", added).Msg("seed finished")
}

// seed adds the genre categories that are missing and count generated books
// through the services, so every business rule applies.
func seed(ctx context.Context, st store.Store, count int, out io.Writer) (int, error) {
	bookRepository := book.NewStoreRepo(st)
	categoryRepository := category.NewStoreRepo(st)
	books := book.NewService(bookRepository, categoryRepository)
	categories := category.NewService(categoryRepository, bookRepository)

	categoryIDs := make([]int64, 0, len(genres))
	for _, name := range genres {
		existing, err := categoryRepository.FindByName(ctx, name)
		if err != nil {
			return 0, err
		}
		if len(existing) > 0 {
			categoryIDs = append(categoryIDs, existing[0].ID)
			continue
		}
		c, err := categories.Add(ctx, entity.Category{Name: name})
		if err != nil {
			return 0, fmt.Errorf("add category %q: %w", name, err)
		}
		categoryIDs = append(categoryIDs, c.ID)
	}

	existing, err := bookRepository.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	start := len(existing)

	bar := progressbar.NewOptions(count,
		progressbar.OptionSetWriter(out),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Seeding books"),
		progressbar.OptionOnCompletion(func() { _, _ = fmt.Fprintln(out) }),
	)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	added := 0
	for i := 0; i < count; i++ {
		b := entity.Book{
			Name:        fmt.Sprintf("Book Title %d - %s", start+i+1, randomWord(rng)),
			Author:      fmt.Sprintf("%s %s", randomWord(rng), randomWord(rng)),
			Description: fmt.Sprintf("This is a book about %s.", randomWord(rng)),
			Value:       float64(500+rng.Intn(9500)) / 100,
			PublishDate: time.Date(1950+rng.Intn(75), time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC),
			CategoryID:  categoryIDs[rng.Intn(len(categoryIDs))],
		}
		_, err := books.Add(ctx, b)
		switch {
		case errors.Is(err, entity.ErrValidation):
			log.Debug().Err(err).Str("name", b.Name).Msg("skipped book")
		case err != nil:
			return added, fmt.Errorf("add book %q: %w", b.Name, err)
		default:
			added++
		}
		_ = bar.Add(1)
	}
	return added, nil
}

func randomWord(rng *rand.Rand) string {
	words := []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
	return words[rng.Intn(len(words))]
}
