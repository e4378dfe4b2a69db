// services/scheduler.go
package services

import (
	"log"

	"github.com/go-co-op/gocron/v2"
)

// StartDailyChallengeScheduler pre-generates the challenge set just after
// midnight so the first request of the day doesn't pay for generation.
// Idempotent with the lazy path: whoever runs first wins the unique index.
func (s *ChallengeService) StartDailyChallengeScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 1, 0))),
		gocron.NewTask(func() {
			challenges, err := s.EnsureTodaysChallenges()
			if err != nil {
				log.Printf("[Scheduler] Failed to generate daily challenges: %v", err)
				return
			}
			log.Printf("✅ Daily challenges ready for %s (%d challenges)", s.Today(), len(challenges))
		}),
	)
}
