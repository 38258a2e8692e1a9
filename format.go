package main

import "fmt"

const (
	humanMsg    = "Response times (s): min: %.4f max: %.4f avg: %.4f\n"
	parsableMsg = "%.4f %.4f %.4f\n"
	reportMsg   = "Average: %.4f\nMinimum: %.4f\nMaximum: %.4f\n"
)

// FormatSummary renders a Summary in the configured output format.
func FormatSummary(s Summary, config *Config) string {
	switch {
	case config.Parsable:
		return fmt.Sprintf(parsableMsg, s.Min, s.Max, s.Avg)
	case config.Report:
		return fmt.Sprintf(reportMsg, s.Avg, s.Min, s.Max)
	default:
		return fmt.Sprintf(humanMsg, s.Min, s.Max, s.Avg)
	}
}

// FormatUsingURL renders the banner printed before a measurement run,
// with the resolved IP when the hostname resolves.
func FormatUsingURL(url string) string {
	ip, err := HostIP(url)
	if err != nil {
		return fmt.Sprintf("Using URL: %s\n", url)
	}
	return fmt.Sprintf("Using URL: %s (%s)\n", url, ip)
}
