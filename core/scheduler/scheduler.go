package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"meditrack/core/logger"

	"github.com/robfig/cron/v3"
)

// CronTask describes a scheduled job
type CronTask struct {
	Name        string
	Description string
	CronExpr    string
	Handler     func(ctx context.Context) error
	Enabled     bool
}

// TaskStatus is the runtime state of a registered task
type TaskStatus struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CronExpr    string     `json:"cron_expr"`
	Enabled     bool       `json:"enabled"`
	LastRun     *time.Time `json:"last_run,omitempty"`
	LastError   string     `json:"last_error,omitempty"`
	RunCount    int64      `json:"run_count"`
}

type registeredTask struct {
	task    *CronTask
	entryID cron.EntryID
	status  TaskStatus
}

// CronScheduler runs registered tasks on cron schedules
type CronScheduler struct {
	cron   *cron.Cron
	logger logger.Logger

	mu    sync.Mutex
	tasks map[string]*registeredTask
}

// NewCronScheduler creates a scheduler; call Start to begin running tasks
func NewCronScheduler(log logger.Logger) *CronScheduler {
	return &CronScheduler{
		cron:   cron.New(),
		logger: log,
		tasks:  make(map[string]*registeredTask),
	}
}

// RegisterTask adds a task to the schedule
func (s *CronScheduler) RegisterTask(task *CronTask) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.Name]; exists {
		return fmt.Errorf("task already registered: %s", task.Name)
	}

	rt := &registeredTask{
		task: task,
		status: TaskStatus{
			Name:        task.Name,
			Description: task.Description,
			CronExpr:    task.CronExpr,
			Enabled:     task.Enabled,
		},
	}

	if task.Enabled {
		entryID, err := s.cron.AddFunc(task.CronExpr, func() { s.run(rt) })
		if err != nil {
			return fmt.Errorf("invalid cron expression for %s: %w", task.Name, err)
		}
		rt.entryID = entryID
	}

	s.tasks[task.Name] = rt
	return nil
}

func (s *CronScheduler) run(rt *registeredTask) {
	start := time.Now()
	err := rt.task.Handler(context.Background())

	s.mu.Lock()
	now := time.Now()
	rt.status.LastRun = &now
	rt.status.RunCount++
	if err != nil {
		rt.status.LastError = err.Error()
	} else {
		rt.status.LastError = ""
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("scheduled task failed",
			logger.String("task", rt.task.Name),
			logger.String("error", err.Error()),
			logger.Duration("duration", time.Since(start)))
		return
	}
	s.logger.Info("scheduled task completed",
		logger.String("task", rt.task.Name),
		logger.Duration("duration", time.Since(start)))
}

// RunNow executes a task immediately, outside its schedule
func (s *CronScheduler) RunNow(name string) error {
	s.mu.Lock()
	rt, ok := s.tasks[name]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("task not registered: %s", name)
	}
	s.run(rt)
	return nil
}

// Tasks returns the status of every registered task
func (s *CronScheduler) Tasks() []TaskStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	statuses := make([]TaskStatus, 0, len(s.tasks))
	for _, rt := range s.tasks {
		statuses = append(statuses, rt.status)
	}
	return statuses
}

// Start begins executing scheduled tasks
func (s *CronScheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler, waiting for running tasks to finish
func (s *CronScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
