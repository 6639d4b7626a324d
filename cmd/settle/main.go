package main

import (
	"context"
	"flag"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/f1tipp/F1Tipp_Go/internal/bootstrap"
	"github.com/f1tipp/F1Tipp_Go/internal/config"
	"github.com/f1tipp/F1Tipp_Go/internal/database"
	"github.com/f1tipp/F1Tipp_Go/internal/ergast"
	"github.com/f1tipp/F1Tipp_Go/internal/settlement"
)

// One-shot settlement runner for cron jobs and manual catch-up. The HTTP
// endpoints cover the same ground; this skips the server entirely.
func main() {
	rounds := flag.String("rounds", "", "comma-separated round numbers to settle")
	all := flag.Bool("all", false, "settle every race whose date has passed")
	bets := flag.Int("bets", 0, "settle only the bets of this round")
	season := flag.Bool("season", false, "settle season predictions against current standings")
	recompute := flag.Bool("recompute", false, "recompute profile aggregates from scored rows")
	flag.Parse()

	if *rounds == "" && !*all && *bets == 0 && !*season && !*recompute {
		log.Fatal("Nothing to do: pass -rounds, -all, -bets, -season or -recompute")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	ctx := context.Background()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), 4, 30*time.Minute, time.Hour)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	repos := bootstrap.InitializeRepositories(dbPool)
	ergastClient := ergast.NewClient(ergast.WithBaseURL(cfg.ErgastBaseURL))

	svc, err := settlement.NewService(ergastClient, repos.Race, repos.Prediction, repos.Profile, repos.Bet, cfg.Season)
	if err != nil {
		log.Fatalf("Settlement service init failed: %v", err)
	}

	if *rounds != "" {
		list, err := parseRounds(*rounds)
		if err != nil {
			log.Fatalf("Invalid -rounds value: %v", err)
		}
		printReports(svc.SettleRounds(ctx, list))
	}

	if *all {
		reports, err := svc.SettleAllPassed(ctx)
		if err != nil {
			log.Fatalf("Settlement failed: %v", err)
		}
		printReports(reports)
	}

	if *bets > 0 {
		report, err := svc.SettleBets(ctx, *bets)
		if err != nil {
			log.Fatalf("Bet settlement failed: %v", err)
		}
		log.Printf("Round %d: %d bets settled", report.Round, report.BetsSettled)
	}

	if *season {
		report, err := svc.SettleSeason(ctx)
		if err != nil {
			log.Fatalf("Season settlement failed: %v", err)
		}
		log.Printf("Season %d: %d predictions scored (standings known: %v)",
			report.Season, report.PredictionsScored, report.StandingsKnown)
	}

	if *recompute {
		if err := svc.RecomputeAggregates(ctx); err != nil {
			log.Fatalf("Aggregate recompute failed: %v", err)
		}
		log.Println("Profile aggregates recomputed")
	}
}

func parseRounds(value string) ([]int, error) {
	var list []int
	for _, part := range strings.Split(value, ",") {
		round, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		list = append(list, round)
	}
	return list, nil
}

func printReports(reports []settlement.RoundReport) {
	for _, r := range reports {
		if r.Error != "" {
			log.Printf("Round %d: FAILED: %s", r.Round, r.Error)
			continue
		}
		log.Printf("Round %d: %d sessions, %d predictions, %d bonus, %d bets (finished: %v)",
			r.Round, r.SessionsSettled, r.PredictionsScored, r.BonusScored, r.BetsSettled, r.RaceFinished)
	}
}
