package notifier

import (
	"fmt"
	"strings"
	"time"
)

// FormatInsightSummary formats the per-symbol trading insights into a short
// push message.
func FormatInsightSummary(symbols []string, insights map[string]string, reportPath string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>Market analysis</b> | %s\n\n", time.Now().Format("2006-01-02")))
	for _, sym := range symbols {
		insight, ok := insights[sym]
		if !ok {
			continue
		}
		b.WriteString(fmt.Sprintf("<b>%s</b>: %s\n", sym, insight))
	}
	if reportPath != "" {
		b.WriteString(fmt.Sprintf("\nFull report: %s\n", reportPath))
	}
	return b.String()
}
