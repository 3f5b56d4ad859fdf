package domain

import "context"

// ActivityTracker records which profiles are being looked at
type ActivityTracker interface {
	Touch(profile string)
}

// BoardWarmer re-pulls the state of a profile and refreshes its snapshot
type BoardWarmer interface {
	Warm(ctx context.Context, profile string) error
}

type DailyCycleWorker interface {
	ActivityTracker
	Start(ctx context.Context)
}
