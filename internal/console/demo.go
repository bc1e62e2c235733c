// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package console

import (
	"context"
	"strconv"
	"strings"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/validation"
)

// Section sizes.
const (
	recentShown          = 5
	genresShown          = 5
	similarUsersShown    = 5
	overlapShown         = 5
	exclusiveSampleShown = 3
)

func (c *Console) printUserStats(userID int) {
	p := c.out
	stats, ok := c.data.Ratings.Stats(userID)
	if !ok {
		p.printf("User %d not found in the dataset.\n", userID)
		return
	}

	p.banner("USER " + strconv.Itoa(userID) + " STATISTICS")
	p.printf("Total movies rated: %d\n", stats.TotalRated)
	p.printf("Average rating given: %.2f\n", stats.AverageRating)
	p.printf("\nRecently rated movies:\n")

	for _, r := range c.data.Ratings.Recent(userID, recentShown) {
		if m, ok := c.data.Catalog.Get(r.MovieID); ok {
			p.printf("  • %s - Rated: %s\n", m.Title, formatRating(r.Value))
		}
	}
	if stats.TotalRated > recentShown {
		p.printf("  ... and %d more movies\n", stats.TotalRated-recentShown)
	}
}

func (c *Console) genreDemo(ctx context.Context, userID int) error {
	p := c.out
	p.banner("GENRE-BASED RECOMMENDATIONS FOR USER " + strconv.Itoa(userID))

	genres := c.engine.Genre.PreferredGenres(userID, c.engine.Config().GenreMinRating)
	if len(genres) > 0 {
		p.printf("\nUser's preferred genres:\n")
		for _, g := range head(genres, genresShown) {
			p.printf("  • %s: %.2f average rating\n", g.Genre, g.Average)
		}
	}

	recs, err := c.engine.Genre.Recommend(ctx, userID, demoCount)
	if err != nil {
		return err
	}
	c.printRecommendations("Top 10 Recommended Movies:", recs)
	return p.err
}

// similarityDemo lists the closest users and their recommendations. A
// depth above 1 runs the decayed multi-hop search for both.
func (c *Console) similarityDemo(ctx context.Context, userID, depth int) error {
	p := c.out
	cfg := c.engine.Config()
	p.banner("USER SIMILARITY-BASED RECOMMENDATIONS FOR USER " + strconv.Itoa(userID))

	similar, stats, err := c.engine.Similarity.FindSimilarUsersRecursiveStats(ctx, userID, depth, similarUsersShown, cfg.DecayRate)
	if err != nil {
		return err
	}
	if stats.Depth > 1 {
		p.printf("\nSearch depth: %d (%d expansions)\n", stats.Depth, stats.Expansions)
	}
	if len(similar) > 0 {
		p.printf("\nMost Similar Users:\n")
		for _, s := range similar {
			p.printf("  • User %d: %.1f%% similar\n", s.UserID, s.Score*100)
		}
	}

	recs, err := c.engine.Similarity.RecommendWithOptions(ctx, userID, recommend.RecommendOptions{
		N:              demoCount,
		RecursiveDepth: depth,
	})
	if err != nil {
		return err
	}
	c.printRecommendations("Top 10 Recommended Movies (liked by similar users):", recs)
	return p.err
}

func (c *Console) compare(ctx context.Context, userID int) error {
	p := c.out
	p.banner("COMPARISON: DIFFERENT RECOMMENDERS FOR USER " + strconv.Itoa(userID))

	cmp, err := c.engine.Compare(ctx, userID, demoCount)
	if err != nil {
		return err
	}

	p.printf("\nOverlapping recommendations: %d\n", len(cmp.Overlap))
	c.printTitles("  Movies:", cmp.Overlap, overlapShown)

	p.printf("\nOnly in Genre Recommender: %d\n", len(cmp.OnlyGenre))
	c.printTitles("  Sample movies:", cmp.OnlyGenre, exclusiveSampleShown)

	p.printf("\nOnly in Similarity Recommender: %d\n", len(cmp.OnlySimilarity))
	c.printTitles("  Sample movies:", cmp.OnlySimilarity, exclusiveSampleShown)
	return p.err
}

// rateMovie records a rating read from the prompts. It returns false when
// input ended mid-way.
func (c *Console) rateMovie(ctx context.Context, lines <-chan string) bool {
	p := c.out
	userID, ok := c.promptUserID(ctx, lines)
	if !ok {
		return false
	}

	text, ok := c.prompt(ctx, lines, "Enter movie id: ")
	if !ok {
		return false
	}
	movieID, err := strconv.Atoi(text)
	if err != nil || !c.data.Catalog.Has(movieID) {
		p.printf("Movie %s not found.\n", text)
		return true
	}

	text, ok = c.prompt(ctx, lines, "Enter rating (0.5-5.0): ")
	if !ok {
		return false
	}
	value, err := strconv.ParseFloat(text, 64)
	if err == nil {
		err = validation.ValidateRating(value)
	}
	if err != nil {
		p.printf("Invalid rating: %v\n", err)
		return true
	}

	change := c.data.RecordRating(userID, movieID, value)
	movie, _ := c.data.Catalog.Get(movieID)
	if change.Updated {
		p.printf("✓ Updated %s for user %d: %s (was %s)\n", movie.Title, userID, formatRating(value), formatRating(change.Previous))
	} else {
		p.printf("✓ Rated %s for user %d: %s\n", movie.Title, userID, formatRating(value))
	}
	p.printf("    Average Rating: %.2f\n", movie.AverageRating)

	c.logger.Info().
		Int("user_id", userID).
		Int("movie_id", movieID).
		Float64("rating", value).
		Bool("updated", change.Updated).
		Msg("Rating recorded")
	return true
}

func (c *Console) printRecommendations(title string, recs []catalog.Movie) {
	p := c.out
	if len(recs) == 0 {
		p.printf("\nNo recommendations available.\n")
		return
	}
	p.printf("\n%s\n", title)
	for i, m := range recs {
		p.printf("\n%d. Movie ID: %d\n", i+1, m.ID)
		c.printMovie(m)
	}
}

func (c *Console) printMovie(m catalog.Movie) {
	p := c.out
	p.printf("  • %s\n", m.Title)
	p.printf("    Genres: %s\n", strings.Join(m.Genres, ", "))
	p.printf("    Average Rating: %.2f\n", m.AverageRating)
	p.printf("    Number of Ratings: %d\n", m.RatingCount)
}

func (c *Console) printTitles(label string, movies []catalog.Movie, limit int) {
	if len(movies) == 0 {
		return
	}
	c.out.printf("%s\n", label)
	for _, m := range head(movies, limit) {
		c.out.printf("    • %s\n", m.Title)
	}
}

// formatRating prints whole ratings with one decimal, as in "4.0".
func formatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
