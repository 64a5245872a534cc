// Package main is the planner CLI: it creates a trip through the creation
// wizard, shows the trip being planned and edits it against the API.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/pkordes/trip-planner/internal/client"
	"github.com/pkordes/trip-planner/internal/config"
	"github.com/pkordes/trip-planner/internal/terminal"
	"github.com/pkordes/trip-planner/internal/tripstore"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := &planner{}
	if err := p.app().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// planner holds the dependencies shared by every command.
type planner struct {
	log    *slog.Logger
	api    *client.Client
	store  *tripstore.Store
	prompt *terminal.Prompt
	nav    *terminal.Navigator
}

func (p *planner) app() *cli.App {
	return &cli.App{
		Name:  "planner",
		Usage: "plan a trip with your friends",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}, Usage: "answer yes to every confirmation"},
		},
		Before: p.open,
		After:  p.close,
		Action: p.resume,
		Commands: []*cli.Command{
			{
				Name:  "create",
				Usage: "create a new trip and invite guests",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "destination", Aliases: []string{"d"}, Required: true},
					&cli.StringFlag{Name: "from", Usage: "first day, YYYY-MM-DD", Required: true},
					&cli.StringFlag{Name: "to", Usage: "last day, YYYY-MM-DD (defaults to --from)"},
					&cli.StringSliceFlag{Name: "invite", Aliases: []string{"i"}, Usage: "guest e-mail, repeatable"},
				},
				Action: p.create,
			},
			{
				Name:   "show",
				Usage:  "show the trip being planned",
				Flags:  []cli.Flag{tripFlag()},
				Action: p.show,
			},
			{
				Name:  "edit",
				Usage: "change the destination or dates of the trip",
				Flags: []cli.Flag{
					tripFlag(),
					&cli.StringFlag{Name: "destination", Aliases: []string{"d"}},
					&cli.StringFlag{Name: "from", Usage: "first day, YYYY-MM-DD"},
					&cli.StringFlag{Name: "to", Usage: "last day, YYYY-MM-DD (defaults to --from)"},
				},
				Action: p.edit,
			},
			{
				Name:  "link",
				Usage: "add an important link to the trip",
				Flags: []cli.Flag{
					tripFlag(),
					&cli.StringFlag{Name: "title", Required: true},
					&cli.StringFlag{Name: "url", Required: true},
				},
				Action: p.addLink,
			},
			{
				Name:  "activity",
				Usage: "plan an activity on a day of the trip",
				Flags: []cli.Flag{
					tripFlag(),
					&cli.StringFlag{Name: "title", Required: true},
					&cli.StringFlag{Name: "day", Usage: "YYYY-MM-DD", Required: true},
					&cli.StringFlag{Name: "at", Usage: "HH:MM", Required: true},
				},
				Action: p.addActivity,
			},
			{
				Name:      "confirm",
				Usage:     "confirm a guest's participation",
				ArgsUsage: "PARTICIPANT_ID",
				Action:    p.confirmParticipant,
			},
			{
				Name:   "forget",
				Usage:  "forget the trip being planned",
				Action: p.forget,
			},
		},
	}
}

func (p *planner) open(c *cli.Context) error {
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}
	p.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.Level(cfg.LogLevel),
	}))

	p.store, err = tripstore.Open(cfg.StorePath)
	if err != nil {
		return err
	}
	p.api = client.New(cfg.APIURL,
		client.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		client.WithRetries(cfg.Retries),
		client.WithLogger(p.log),
	)

	// Without a terminal to answer from, confirmations decline unless --yes.
	var in io.Reader = os.Stdin
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		in = strings.NewReader("")
	}
	p.prompt = terminal.NewPrompt(in, os.Stdout, c.Bool("yes"))
	p.nav = terminal.NewNavigator(os.Stdout)
	return nil
}

func (p *planner) close(*cli.Context) error {
	if p.store == nil {
		return nil
	}
	return p.store.Close()
}
