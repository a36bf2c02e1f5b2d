package pipeline

import "time"

// Clock abstracts time for the scheduler, monitor and retry controller so
// timeout and backoff behavior is deterministic under test.
type Clock func() time.Time

func systemClock() time.Time { return time.Now() }
