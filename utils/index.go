package utils

import (
	"log"
	"time"
)

// TimeTrack logs how long a tracked operation took. Calls faster than 5ms are
// not worth the noise and are dropped.
func TimeTrack(start time.Time, name string) {
	elapsed := time.Since(start)

	if elapsed <= 5*time.Millisecond {
		return
	}

	log.Printf("%s ~TOOK~ %s", name, elapsed.Round(time.Millisecond))
}
