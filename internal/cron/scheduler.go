package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// UserPurger deletes unverified accounts older than the cutoff.
type UserPurger interface {
	PurgeStaleUnverified(ctx context.Context, cutoff time.Time) (int64, error)
}

// staleAfter is how long an unverified signup may linger before cleanup.
const staleAfter = 7 * 24 * time.Hour

type Scheduler struct {
	users UserPurger
	cron  *cron.Cron
}

func NewScheduler(users UserPurger) *Scheduler {
	return &Scheduler{users: users}
}

// Start registers the nightly cleanup at 12:00 AM and begins the scheduler.
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 0 * * *", s.purgeStaleSignups)
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (purging stale signups nightly at 12:00AM)")
	c.Start()
	s.cron = c
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

func (s *Scheduler) purgeStaleSignups() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-staleAfter)
	n, err := s.users.PurgeStaleUnverified(ctx, cutoff)
	if err != nil {
		log.Printf("Nightly cleanup failed: %v", err)
		return
	}
	log.Printf("Nightly cleanup removed %d stale unverified accounts", n)
}
