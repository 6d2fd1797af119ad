package scoring

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Salary and availability are scraped from the free-text summary. These are
// heuristics: a miss yields the sentinel, never an empty string.
var (
	salaryPattern = regexp.MustCompile(
		`(?i)(?:₦|NGN|\$|USD|EUR|£)\s?[\d,]+(?:\.\d+)?\s?(?:k|m|million|thousand)?(?:\s?(?:-|to)\s?(?:₦|NGN|\$|USD|EUR|£)?\s?[\d,]+(?:\.\d+)?\s?(?:k|m|million|thousand)?)?(?:\s?(?:per|/)\s?(?:year|annum|month|hour))?`)

	availabilityPattern = regexp.MustCompile(
		`(?i)available\s+(?:from\s+|to\s+start\s+)?(immediately|asap|[a-z]+\s+\d{4}|\d{1,2}(?:st|nd|rd|th)?\s+[a-z]+(?:\s+\d{4})?|in\s+\d+\s+(?:days?|weeks?|months?))`)

	noticePattern = regexp.MustCompile(`(?i)(\d+\s+(?:days?|weeks?|months?))\s+notice`)
)

// extractSalary scans the summary for a salary-like phrase.
func extractSalary(summary string) string {
	if match := salaryPattern.FindString(summary); match != "" {
		return strings.TrimSpace(match)
	}
	return types.NotSpecified
}

// extractAvailability scans the summary for an availability-like phrase.
func extractAvailability(summary string) string {
	if m := availabilityPattern.FindStringSubmatch(summary); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	if m := noticePattern.FindStringSubmatch(summary); len(m) > 1 {
		return strings.TrimSpace(m[1]) + " notice"
	}
	return types.NotSpecified
}
