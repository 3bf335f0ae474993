package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/asistenciapp/backend/internal/config"
	"github.com/asistenciapp/backend/internal/domain"
	"github.com/asistenciapp/backend/internal/logger"
	"github.com/asistenciapp/backend/internal/store"
)

// Demo-data seeder: fills the store with plausible check-ins over the past
// weeks so the history and fault views have something to show.
func main() {
	days := flag.Int("days", 45, "How many days back to generate check-ins for")
	lateRate := flag.Float64("laterate", 0.25, "Fraction of check-ins that arrive late")
	seed := flag.Int64("seed", 0, "Random seed (0 uses the current time)")
	flag.Parse()

	ctx := context.Background()

	if err := config.LoadEnvConfig(); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)

	backend, err := store.NewFileBackend(config.DefaultEnvConfig.STORE_PATH)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	st := store.New(backend)

	employees, err := st.LoadEmployees(ctx)
	if err != nil {
		log.Fatalf("failed to load roster: %v", err)
	}

	if *seed != 0 {
		rand.Seed(*seed)
	} else {
		rand.Seed(time.Now().UnixNano())
	}

	var records []domain.AttendanceRecord
	now := time.Now()
	for _, e := range employees {
		for d := *days; d >= 1; d-- {
			day := now.AddDate(0, 0, -d)
			if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
				continue
			}
			records = append(records, domain.AttendanceRecord{
				ID:         uuid.NewString(),
				EmployeeID: e.ID,
				Timestamp:  checkInTime(day, rand.Float64() < *lateRate),
			})
		}
	}

	if err := st.SaveRecords(ctx, records); err != nil {
		log.Fatalf("failed to save records: %v", err)
	}

	fmt.Printf("Seeded %d check-ins for %d employees over %d days\n",
		len(records), len(employees), *days)
}

// checkInTime places an on-time arrival between 08:30 and 09:15 and a late
// one between 09:16 and 11:00.
func checkInTime(day time.Time, late bool) time.Time {
	var h, m int
	if late {
		minutes := 9*60 + 16 + rand.Intn(105)
		h, m = minutes/60, minutes%60
	} else {
		minutes := 8*60 + 30 + rand.Intn(46)
		h, m = minutes/60, minutes%60
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, rand.Intn(60), 0, day.Location())
}
