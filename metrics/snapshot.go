package metrics

import (
	"context"
	"log/slog"

	"github.com/nomis52/activities/registry"
)

// RosterSource provides an ordered view of the current registry state.
type RosterSource interface {
	Snapshot() []registry.NamedActivity
}

// Snapshotter pushes per-activity roster gauges to a remote write endpoint.
// It implements the cron Runnable interface so it can run on a schedule.
type Snapshotter struct {
	source RosterSource
	pusher *Pusher
	logger *slog.Logger
}

// NewSnapshotter creates a Snapshotter reading from source and pushing via pusher.
func NewSnapshotter(source RosterSource, pusher *Pusher, logger *slog.Logger) *Snapshotter {
	return &Snapshotter{
		source: source,
		pusher: pusher,
		logger: logger,
	}
}

// Run takes a registry snapshot and pushes a participants gauge and a capacity
// gauge per activity.
func (s *Snapshotter) Run() error {
	snapshot := s.source.Snapshot()

	ms := make([]Metric, 0, len(snapshot)*2)
	for _, act := range snapshot {
		labels := map[string]string{"activity": act.Name}
		ms = append(ms,
			Metric{
				Name:   "participants",
				Value:  float64(len(act.Participants)),
				Labels: labels,
			},
			Metric{
				Name:   "capacity",
				Value:  float64(act.MaxParticipants),
				Labels: labels,
			},
		)
	}

	if err := s.pusher.Push(context.Background(), ms...); err != nil {
		return err
	}

	s.logger.Debug("roster snapshot pushed", "activities", len(snapshot))
	return nil
}
