package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/pkordes/trip-planner/internal/calendar"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/terminal"
	"github.com/pkordes/trip-planner/internal/wizard"
)

func tripFlag() cli.Flag {
	return &cli.StringFlag{Name: "trip", Usage: "trip id (defaults to the trip being planned)"}
}

// resume shows the trip being planned, if any.
func (p *planner) resume(c *cli.Context) error {
	trip, ok := wizard.Resume(c.Context, p.store, p.api, p.log)
	if !ok {
		fmt.Println("No trip planned yet. Start one with:")
		fmt.Println("  planner create --destination CITY --from YYYY-MM-DD --to YYYY-MM-DD --invite EMAIL")
		return nil
	}
	return p.render(c.Context, trip.ID)
}

func (p *planner) create(c *cli.Context) error {
	form := wizard.NewTripForm(p.api, p.store, p.prompt, p.nav, wizard.WithLogger(p.log))
	if err := form.SetDestination(c.String("destination")); err != nil {
		return err
	}
	from, to, err := dayFlags(c)
	if err != nil {
		return err
	}
	if err := tapRange(form.TapDay, from, to); err != nil {
		return err
	}
	if err := form.Advance(c.Context); err != nil {
		return err
	}
	for _, email := range c.StringSlice("invite") {
		if err := form.AddEmail(email); err != nil {
			return err
		}
	}

	state := form.State()
	fmt.Printf("%s, %s\n", state.Destination, state.DatesLabel())
	if summary := state.Emails.Summary(); summary != "" {
		fmt.Printf("%s: %s\n", summary, strings.Join(state.Emails.Slice(), ", "))
	}

	err = form.Advance(c.Context)
	if errors.Is(err, wizard.ErrPersist) {
		fmt.Fprintf(os.Stderr, "trip %s was created but could not be remembered; use --trip with it\n", form.State().TripID)
	}
	if err != nil {
		return err
	}
	id, ok := p.nav.Trip()
	if !ok {
		fmt.Println("Trip not created.")
		return nil
	}
	return p.render(c.Context, id)
}

func (p *planner) show(c *cli.Context) error {
	id, err := p.tripID(c)
	if err != nil {
		return err
	}
	return p.render(c.Context, id)
}

func (p *planner) edit(c *cli.Context) error {
	id, err := p.tripID(c)
	if err != nil {
		return err
	}
	editor := wizard.NewTripEditor(id, p.api, p.nav, wizard.WithLogger(p.log))
	if err := editor.Load(c.Context); err != nil {
		return err
	}
	editor.OpenUpdate()
	if d := c.String("destination"); d != "" {
		editor.SetDestination(d)
	}
	if c.IsSet("from") || c.IsSet("to") {
		from, to, err := dayFlags(c)
		if err != nil {
			return err
		}
		editor.OpenCalendar()
		if err := tapRange(editor.TapDay, from, to); err != nil {
			return err
		}
		editor.ConfirmCalendar()
	}
	if err := editor.Submit(c.Context); err != nil {
		return err
	}
	fmt.Println(editor.State().Header)
	return nil
}

func (p *planner) addLink(c *cli.Context) error {
	id, err := p.tripID(c)
	if err != nil {
		return err
	}
	details := wizard.NewDetails(id, p.api, p.api, wizard.WithLogger(p.log))
	if err := details.AddLink(c.Context, c.String("title"), c.String("url")); err != nil {
		return err
	}
	for _, l := range details.State().Links {
		fmt.Printf("%s\t%s\n", l.Title, l.URL)
	}
	return nil
}

func (p *planner) addActivity(c *cli.Context) error {
	id, err := p.tripID(c)
	if err != nil {
		return err
	}
	day, err := calendar.ParseDay(c.String("day"))
	if err != nil {
		return fmt.Errorf("%w: --day must be YYYY-MM-DD", domain.ErrValidation)
	}
	trip, err := p.api.GetTrip(c.Context, id)
	if err != nil {
		return err
	}
	activities := wizard.NewActivities(trip, p.api, wizard.WithLogger(p.log))
	if err := activities.Add(c.Context, c.String("title"), day, c.String("at")); err != nil {
		return err
	}
	return p.render(c.Context, id)
}

func (p *planner) confirmParticipant(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("usage: planner confirm PARTICIPANT_ID")
	}
	id, err := uuid.Parse(c.Args().First())
	if err != nil {
		return fmt.Errorf("%w: invalid participant id", domain.ErrValidation)
	}
	if err := p.api.ConfirmParticipant(c.Context, id); err != nil {
		return err
	}
	fmt.Println("Participant confirmed.")
	return nil
}

func (p *planner) forget(c *cli.Context) error {
	if err := p.store.Clear(c.Context); err != nil {
		return err
	}
	fmt.Println("Forgot the trip being planned.")
	return nil
}

// render loads every tab of trip id and prints the trip screen.
func (p *planner) render(ctx context.Context, id uuid.UUID) error {
	editor := wizard.NewTripEditor(id, p.api, p.nav, wizard.WithLogger(p.log))
	if err := editor.Load(ctx); err != nil {
		return err
	}
	trip := editor.State().Trip

	details := wizard.NewDetails(id, p.api, p.api, wizard.WithLogger(p.log))
	activities := wizard.NewActivities(trip, p.api, wizard.WithLogger(p.log))
	if err := details.Refresh(ctx); err != nil {
		return err
	}
	if err := activities.Refresh(ctx); err != nil {
		return err
	}
	return terminal.TripScreen(os.Stdout, editor.State().Header, activities.ByDay(), details.State())
}

// tripID returns the --trip flag or, without it, the stored trip id.
func (p *planner) tripID(c *cli.Context) (uuid.UUID, error) {
	if raw := c.String("trip"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%w: invalid trip id", domain.ErrValidation)
		}
		return id, nil
	}
	id, ok, err := p.store.Get(c.Context)
	if err != nil {
		return uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, errors.New("no trip planned yet, run planner create")
	}
	return id, nil
}

// dayFlags parses --from and --to; --to defaults to --from.
func dayFlags(c *cli.Context) (calendar.Day, calendar.Day, error) {
	if c.String("from") == "" {
		return calendar.Day{}, calendar.Day{}, fmt.Errorf("%w: --from is required with --to", domain.ErrValidation)
	}
	from, err := calendar.ParseDay(c.String("from"))
	if err != nil {
		return calendar.Day{}, calendar.Day{}, fmt.Errorf("%w: --from must be YYYY-MM-DD", domain.ErrValidation)
	}
	to := from
	if raw := c.String("to"); raw != "" {
		if to, err = calendar.ParseDay(raw); err != nil {
			return calendar.Day{}, calendar.Day{}, fmt.Errorf("%w: --to must be YYYY-MM-DD", domain.ErrValidation)
		}
	}
	return from, to, nil
}

// tapRange selects from..to the way a user would on the calendar: two taps.
func tapRange(tap func(calendar.Day) error, from, to calendar.Day) error {
	if err := tap(from); err != nil {
		return err
	}
	return tap(to)
}
