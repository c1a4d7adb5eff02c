package helpers

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// SchoolYearSpan renders a record's school-year span for certificates,
// e.g. "2023/2024".
func SchoolYearSpan(startYear, endYear int) string {
	return fmt.Sprintf("%d/%d", startYear, endYear)
}
