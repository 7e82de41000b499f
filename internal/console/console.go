// Package console is the terminal front end: it draws the board and turns
// typed lines into session operations.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"aiseek/internal/assistant"
	"aiseek/internal/models"
	"aiseek/internal/service"

	log "github.com/sirupsen/logrus"
)

// Console runs the interactive loop. Session state is only touched from the
// goroutine running Run; assistant tasks report back over a channel.
type Console struct {
	session *service.GameSession
	scores  *service.ScoreService
	in      io.Reader
	out     io.Writer

	completed chan *assistant.Task
	pending   int
}

func New(session *service.GameSession, scores *service.ScoreService, in io.Reader, out io.Writer) *Console {
	return &Console{
		session:   session,
		scores:    scores,
		in:        in,
		out:       out,
		completed: make(chan *assistant.Task),
	}
}

// Run reads commands until :quit, end of input or ctx is done. Assistant
// requests still in flight are cancelled when it returns.
func (c *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	fmt.Fprint(c.out, helpText)
	c.render()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			return err
		case task := <-c.completed:
			c.pending--
			c.session.Apply(task)
			c.render()
		case line := <-lines:
			quit, err := c.Execute(ctx, line)
			if err != nil {
				fmt.Fprintf(c.out, "%s\n", err)
			}
			if quit {
				return nil
			}
			c.render()
		}
	}
}

// Execute applies one input line. It reports true when the player wants to quit.
func (c *Console) Execute(ctx context.Context, line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	if !strings.HasPrefix(line, ":") {
		for _, r := range line {
			c.session.Guess(ctx, r)
		}
		return false, nil
	}

	command, arg, _ := strings.Cut(line[1:], " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(command) {
	case "q", "quit", "exit":
		return true, nil
	case "h", "help":
		fmt.Fprint(c.out, helpText)
	case "hint":
		task, err := c.session.RequestHint(ctx)
		if err != nil {
			return false, err
		}
		c.track(ctx, task)
	case "ask":
		task, err := c.session.AskQuestion(ctx, arg)
		if err != nil {
			return false, err
		}
		c.track(ctx, task)
	case "r", "restart":
		return false, c.session.Restart()
	case "difficulty":
		d, err := models.ParseDifficulty(arg)
		if err != nil {
			return false, err
		}
		return false, c.session.Start(d)
	case "ai":
		enabled := c.session.ToggleAssistant()
		log.WithField("enabled", enabled).Debug("Assistant toggled")
	case "scores":
		summary, err := c.scores.Summary(ctx)
		if err != nil {
			return false, fmt.Errorf("could not read scores: %w", err)
		}
		RenderSummary(c.out, summary)
	default:
		return false, errors.New("unknown command, type :help")
	}
	return false, nil
}

// track forwards task to the loop once it completes
func (c *Console) track(ctx context.Context, task *assistant.Task) {
	c.pending++
	go func() {
		select {
		case <-task.Done():
		case <-ctx.Done():
			return
		}
		select {
		case c.completed <- task:
		case <-ctx.Done():
		}
	}()
}

func (c *Console) render() {
	Render(c.out, c.session.Snapshot(), c.pending)
	fmt.Fprint(c.out, "> ")
}
