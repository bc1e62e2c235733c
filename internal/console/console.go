// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/dataset"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// DemoUserID is analysed at startup unless another user is configured.
const DemoUserID = 1

// demoCount is the list length used by every demo section.
const demoCount = 10

// Console is an interactive text front end over a loaded dataset.
type Console struct {
	data       *dataset.Dataset
	engine     *recommend.Engine
	out        *printer
	in         io.Reader
	testUserID int
	logger     zerolog.Logger
}

// New creates a console reading commands from in and writing to out.
// A testUserID of zero selects DemoUserID.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(data *dataset.Dataset, engine *recommend.Engine, in io.Reader, out io.Writer, testUserID int, logger zerolog.Logger) *Console {
	if testUserID == 0 {
		testUserID = DemoUserID
	}
	return &Console{
		data:       data,
		engine:     engine,
		out:        &printer{w: out},
		in:         in,
		testUserID: testUserID,
		logger:     logger.With().Str("component", "console").Logger(),
	}
}

// Run prints the startup demo and then serves the menu until the user
// exits, input ends or ctx is canceled. Run returns nil on exit and EOF.
func (c *Console) Run(ctx context.Context) error {
	lines := readLines(c.in)

	if err := c.Demo(ctx); err != nil {
		return err
	}
	if err := c.menu(ctx, lines); err != nil {
		return err
	}
	return c.out.err
}

// Demo prints the dataset summary and every section for the test user.
func (c *Console) Demo(ctx context.Context) error {
	p := c.out
	p.banner("MOVIE RECOMMENDATION SYSTEM")
	p.printf("\n✓ Loaded %d movies\n", c.data.Catalog.Len())
	p.printf("✓ Loaded ratings from %d users\n", c.data.Ratings.Len())
	p.printf("✓ Mapped %d genres\n", c.data.Genres.Len())

	userID := c.testUserID
	if !c.data.Ratings.HasUser(userID) {
		p.printf("\nUser %d not found. Using first available user.\n", userID)
		userID = c.firstUserID()
	}

	c.printUserStats(userID)
	if err := c.genreDemo(ctx, userID); err != nil {
		return err
	}
	if err := c.similarityDemo(ctx, userID, 1); err != nil {
		return err
	}
	if err := c.compare(ctx, userID); err != nil {
		return err
	}

	p.banner("DEMONSTRATION COMPLETE")
	p.printf("\n")
	return p.err
}

func (c *Console) menu(ctx context.Context, lines <-chan string) error {
	p := c.out
	for {
		p.printf("\nMAIN MENU\n")
		p.printf("1. Show genre-based demo\n")
		p.printf("2. Show user-similarity demo\n")
		p.printf("3. Compare recommenders\n")
		p.printf("4. Interactive user-similarity (choose depth)\n")
		p.printf("5. Rate a movie\n")
		p.printf("6. Exit\n")

		choice, ok := c.prompt(ctx, lines, "Enter choice: ")
		if !ok {
			return ctx.Err()
		}

		var err error
		switch choice {
		case "1":
			userID, ok := c.promptUserID(ctx, lines)
			if !ok {
				return ctx.Err()
			}
			err = c.genreDemo(ctx, userID)
		case "2":
			userID, ok := c.promptUserID(ctx, lines)
			if !ok {
				return ctx.Err()
			}
			err = c.similarityDemo(ctx, userID, 1)
		case "3":
			userID, ok := c.promptUserID(ctx, lines)
			if !ok {
				return ctx.Err()
			}
			err = c.compare(ctx, userID)
		case "4":
			userID, ok := c.promptUserID(ctx, lines)
			if !ok {
				return ctx.Err()
			}
			depthText, ok := c.prompt(ctx, lines, "Enter recursive depth (1 = direct, 2 = friends-of-friends): ")
			if !ok {
				return ctx.Err()
			}
			err = c.similarityDemo(ctx, userID, parseDepth(depthText, c.engine.Config().SearchDepth))
		case "5":
			if !c.rateMovie(ctx, lines) {
				return ctx.Err()
			}
		case "6":
			p.printf("Exiting.\n")
			return p.err
		default:
			p.printf("Invalid choice\n")
		}

		if err != nil {
			return err
		}
		if p.err != nil {
			return p.err
		}
	}
}

// prompt writes label and waits for the next input line. ok is false
// when input has ended or ctx is done.
func (c *Console) prompt(ctx context.Context, lines <-chan string, label string) (string, bool) {
	c.out.printf("%s", label)
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-lines:
		return strings.TrimSpace(line), ok
	}
}

// promptUserID reads a user id. Blank or unparsable input selects the
// smallest user id.
func (c *Console) promptUserID(ctx context.Context, lines <-chan string) (int, bool) {
	text, ok := c.prompt(ctx, lines, "Enter user id (blank for first user): ")
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(text)
	if err != nil {
		return c.firstUserID(), true
	}
	return id, true
}

// parseDepth reads the depth prompt: blank or unparsable input gives def,
// anything below 1 gives 1.
func parseDepth(text string, def int) int {
	if text == "" {
		return def
	}
	depth, err := strconv.Atoi(text)
	if err != nil {
		return def
	}
	if depth < 1 {
		return 1
	}
	return depth
}

func (c *Console) firstUserID() int {
	id, _ := c.data.Ratings.MinUserID()
	return id
}

// readLines feeds input lines to a channel that is closed at EOF. The
// goroutine blocks on the reader, so it outlives a canceled Run until the
// next line or EOF arrives.
func readLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

// printer remembers the first write error so callers can check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) banner(title string) {
	p.printf("\n%s\n%s\n%s\n", rule, title, rule)
}

var rule = strings.Repeat("=", 70)
