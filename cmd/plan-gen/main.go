package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fitglue/planner/pkg/bootstrap"
	"github.com/fitglue/planner/pkg/domain/file_generators"
	"github.com/fitglue/planner/pkg/domain/planner"
	"github.com/fitglue/planner/pkg/domain/profile"
)

func main() {
	text := flag.String("text", "", "Free-text training request, e.g. \"30 year old male, muscle gain, 4 days a week\"")
	weeks := flag.Int("weeks", 4, "Number of weeks to plan")
	asJSON := flag.Bool("json", false, "Print the plan as JSON instead of text")
	fitOut := flag.String("fit", "", "Also write week 1's first training day as a FIT file to this path")
	flag.Parse()

	if *text == "" {
		flag.Usage()
		os.Exit(1)
	}

	ctx := context.Background()
	svc, err := bootstrap.NewService(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	logger := bootstrap.NewLogger("plan-gen")

	p := profile.Parse(*text)
	plan, err := svc.Planner.Generate(ctx, logger, p, *weeks)
	if err != nil {
		log.Fatalf("Failed to generate plan: %v", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(plan); err != nil {
			log.Fatalf("Failed to encode plan: %v", err)
		}
	} else {
		fmt.Print(planner.RenderText(plan))
	}

	if *fitOut != "" {
		day, ok := firstTrainingDay(plan)
		if !ok {
			log.Fatalf("Plan has no training days to export")
		}
		data, err := file_generators.GenerateDayFile(day, time.Now().UTC())
		if err != nil {
			log.Fatalf("Failed to generate FIT file: %v", err)
		}
		if err := os.WriteFile(*fitOut, data, 0644); err != nil {
			log.Fatalf("Failed to write FIT file: %v", err)
		}
		fmt.Printf("Wrote %d bytes to %s\n", len(data), *fitOut)
	}
}

func firstTrainingDay(plan *planner.Plan) (planner.Day, bool) {
	if len(plan.Weeks) == 0 {
		return planner.Day{}, false
	}
	for _, day := range plan.Weeks[0].Days {
		if !day.Rest && len(day.Slots) > 0 {
			return day, true
		}
	}
	return planner.Day{}, false
}
