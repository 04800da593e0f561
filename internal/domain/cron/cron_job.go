package cron

import (
	"context"
	"sync"
	"time"

	"github.com/kunal12203/LifeGoal-Game/pkg/xcontext"
)

// CronJob is a unit of scheduled background work. Next tells the scheduler
// when the job wants to run again, RunNow whether it also runs at startup.
type CronJob interface {
	Do(context.Context)
	RunNow() bool
	Next() time.Time
}

// Scheduler runs registered jobs on their own timers. Register all jobs
// before Start; Start blocks until Stop is called.
type Scheduler struct {
	mutex sync.Mutex
	wait  sync.WaitGroup
	jobs  map[CronJob]*time.Timer
}

func NewScheduler() *Scheduler {
	return &Scheduler{jobs: make(map[CronJob]*time.Timer)}
}

func (s *Scheduler) Register(job CronJob) {
	s.jobs[job] = nil
}

func (s *Scheduler) Start(ctx context.Context) {
	xcontext.Logger(ctx).Infof("Scheduler started with %d jobs", len(s.jobs))

	for job := range s.jobs {
		if job.RunNow() {
			go s.run(ctx, job)
		} else {
			s.schedule(ctx, job)
		}

		s.wait.Add(1)
	}

	s.wait.Wait()
	xcontext.Logger(ctx).Infof("Scheduler stopped")
}

func (s *Scheduler) Stop(ctx context.Context) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for job, timer := range s.jobs {
		if timer == nil {
			xcontext.Logger(ctx).Warnf("Stop a job that hasn't started: %T", job)
			continue
		}

		timer.Stop()
		s.wait.Done()
	}

	// Drop every job so a late timer cannot reschedule it.
	s.jobs = make(map[CronJob]*time.Timer)
}

func (s *Scheduler) run(ctx context.Context, job CronJob) {
	started := time.Now()
	xcontext.Logger(ctx).Infof("%T is running...", job)
	job.Do(ctx)
	xcontext.Logger(ctx).Infof("%T finished in %s", job, time.Since(started))

	s.schedule(ctx, job)
}

func (s *Scheduler) schedule(ctx context.Context, job CronJob) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Only reschedule jobs still registered.
	if _, ok := s.jobs[job]; ok {
		s.jobs[job] = time.AfterFunc(time.Until(job.Next()), func() { s.run(ctx, job) })
	}
}
