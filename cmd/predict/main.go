package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"sport-predict/internal/client"
	"sport-predict/internal/config"
	"sport-predict/internal/filter"
	"sport-predict/internal/odds"
	"sport-predict/internal/predictions"
)

const usage = `usage: predict <command> [arguments]

commands:
  matches [-sport S] [-range all|today|week] [-search Q] [-status S]
                               list upcoming matches with saved predictions
  predict <matchID> <home%>    save a win probability for the home side
  clear <matchID>              remove a saved prediction
  list                         show every saved prediction
`

// maxFetch is the largest page the API serves
const maxFetch = 100

type app struct {
	api   *client.Client
	store *predictions.Store
	out   io.Writer
	now   func() time.Time
}

func main() {
	log.SetFlags(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	a := &app{
		api:   client.NewClient(cfg.Client.APIBaseURL),
		store: predictions.OpenStore(predictions.NewLocalStorage(cfg.Client.StorageDir)),
		out:   os.Stdout,
		now:   time.Now,
	}

	if err := a.run(context.Background(), os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return flag.ErrHelp
	}

	switch args[0] {
	case "matches":
		return a.matches(ctx, args[1:])
	case "predict":
		return a.predict(ctx, args[1:])
	case "clear":
		return a.clear(args[1:])
	case "list":
		return a.list()
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *app) matches(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("matches", flag.ContinueOnError)
	fs.SetOutput(a.out)
	sport := fs.String("sport", filter.AllSports, "sport name, or all")
	dateRange := fs.String("range", string(filter.RangeAll), "all, today or week")
	search := fs.String("search", "", "team name substring")
	status := fs.String("status", "", "scheduled, in_progress or completed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rng, err := filter.ParseDateRange(*dateRange)
	if err != nil {
		return err
	}

	fetched, err := a.fetchMatches(ctx, *sport, *status)
	if err != nil {
		return err
	}

	matches := filter.FilterMatches(fetched, filter.Options{
		Sport:     *sport,
		DateRange: rng,
		Search:    *search,
	}, a.now())

	if len(matches) == 0 {
		fmt.Fprintln(a.out, "No matches found")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSPORT\tDATE\tSTATUS\tHOME\tAWAY\tPREDICTION")
	for _, m := range matches {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			m.ID, m.SportName, a.displayDate(m.MatchDate), m.Status,
			m.HomeTeamName, m.AwayTeamName, a.predictionSummary(strconv.Itoa(m.ID)))
	}
	return w.Flush()
}

// fetchMatches narrows the listing on the server where a dedicated route
// exists; the local filter still applies afterwards.
func (a *app) fetchMatches(ctx context.Context, sport, status string) ([]client.Match, error) {
	bySport := sport != "" && sport != filter.AllSports
	switch {
	case bySport && status == "":
		return a.api.GetMatchesBySport(ctx, sport, maxFetch, 0)
	case !bySport && status != "":
		return a.api.GetMatchesByStatus(ctx, status, maxFetch, 0)
	case bySport:
		return a.api.GetMatches(ctx, client.MatchQuery{Sport: sport, Status: status, Limit: maxFetch})
	default:
		return a.api.GetMatches(ctx, client.MatchQuery{Limit: maxFetch})
	}
}

func (a *app) predict(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: predict <matchID> <home%%>")
	}
	matchID, prob := args[0], args[1]

	p, err := predictions.ParsePrediction(prob)
	if err != nil {
		return err
	}

	match, err := a.api.GetMatch(ctx, matchID)
	if err != nil {
		return err
	}

	if err := a.store.Save(strconv.Itoa(match.ID), p); err != nil {
		return fmt.Errorf("failed to save prediction: %w", err)
	}

	fmt.Fprintf(a.out, "Saved prediction for %s vs %s\n", match.HomeTeamName, match.AwayTeamName)
	fmt.Fprintf(a.out, "  %s: %s (odds %s)\n", match.HomeTeamName, odds.FormatProbability(p.TeamA), odds.CalculateImpliedOdds(p.TeamA))
	fmt.Fprintf(a.out, "  %s: %s (odds %s)\n", match.AwayTeamName, odds.FormatProbability(p.TeamB), odds.CalculateImpliedOdds(p.TeamB))
	return nil
}

func (a *app) clear(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: clear <matchID>")
	}
	if _, ok := a.store.Get(args[0]); !ok {
		fmt.Fprintf(a.out, "No prediction saved for match %s\n", args[0])
		return nil
	}
	if err := a.store.Clear(args[0]); err != nil {
		return fmt.Errorf("failed to clear prediction: %w", err)
	}
	fmt.Fprintf(a.out, "Cleared prediction for match %s\n", args[0])
	return nil
}

func (a *app) list() error {
	ids := a.store.MatchIDs()
	if len(ids) == 0 {
		fmt.Fprintln(a.out, "No predictions saved")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MATCH\tHOME\tODDS\tAWAY\tODDS")
	for _, id := range ids {
		p, _ := a.store.Get(id)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", id,
			odds.FormatProbability(p.TeamA), odds.CalculateImpliedOdds(p.TeamA),
			odds.FormatProbability(p.TeamB), odds.CalculateImpliedOdds(p.TeamB))
	}
	return w.Flush()
}

func (a *app) predictionSummary(matchID string) string {
	p, ok := a.store.Get(matchID)
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%s @ %s / %s @ %s",
		odds.FormatProbability(p.TeamA), odds.CalculateImpliedOdds(p.TeamA),
		odds.FormatProbability(p.TeamB), odds.CalculateImpliedOdds(p.TeamB))
}

func (a *app) displayDate(raw string) string {
	if raw == "" {
		return "TBD"
	}
	now := a.now()
	t, ok := filter.ParseMatchDate(raw, now.Location())
	if !ok {
		return raw
	}
	return t.In(now.Location()).Format("Mon Jan 2 15:04")
}
