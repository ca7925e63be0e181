// Package util holds small formatting helpers shared by the services and the CLI.
package util

import (
	"fmt"
	"time"
)

// FormatBytes renders a size with binary units, e.g. "512 B" or "1.5 KB".
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration renders a duration rounded to the second, e.g. "45s", "5m10s" or "24h0m".
// Negative durations render as "0s".
func FormatDuration(duration time.Duration) string {
	duration = max(duration.Round(time.Second), 0)

	switch {
	case duration < time.Minute:
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	case duration < time.Hour:
		return fmt.Sprintf("%dm%ds", int(duration.Minutes()), int(duration.Seconds())%60)
	default:
		return fmt.Sprintf("%dh%dm", int(duration.Hours()), int(duration.Minutes())%60)
	}
}
