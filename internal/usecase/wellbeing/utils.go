package wellbeing

import (
	"strconv"
	"time"
)

func nowUTCString(now time.Time) string {
	return now.UTC().Format(time.RFC3339Nano)
}

func cacheWorkerRiskKey(workerID uint64) string {
	return "worker_risk:" + strconv.FormatUint(workerID, 10)
}
