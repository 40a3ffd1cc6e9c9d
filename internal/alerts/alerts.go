// Package alerts evaluates threshold rules over parking statistics.
package alerts

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/pricing"
)

var printer = message.NewPrinter(language.English)

// Evaluate returns alerts in a fixed order: occupancy, overstay, revenue, peak pricing.
// The order does not depend on input ordering and the result fully replaces any previous list.
func Evaluate(stats domain.Statistics, now time.Time, cfg domain.PricingConfig, thresholds domain.AlertThresholds) []domain.Alert {
	alerts := make([]domain.Alert, 0, 4)

	add := func(kind domain.AlertKind, format string, args ...interface{}) {
		alerts = append(alerts, domain.Alert{
			Kind:    kind,
			Message: printer.Sprintf(format, args...),
			Time:    now,
		})
	}

	switch {
	case stats.OccupancyRate > thresholds.CriticalOccupancy:
		add(domain.AlertCritical, "Critical: %.1f%% occupancy - Near full!", stats.OccupancyRate)
	case stats.OccupancyRate > thresholds.WarningOccupancy:
		add(domain.AlertWarning, "Warning: %.1f%% occupancy - High demand", stats.OccupancyRate)
	}

	if stats.OverstayCount > 0 {
		add(domain.AlertWarning, "%d vehicle(s) overstaying - %s %.0f in fines",
			stats.OverstayCount, cfg.Currency, stats.TotalFine)
	}

	if stats.TotalEarnings > thresholds.RevenueMilestone {
		add(domain.AlertSuccess, "Revenue milestone: %s %.0f earned", cfg.Currency, stats.TotalEarnings)
	}

	if pricing.IsPeak(now, cfg) {
		add(domain.AlertInfo, "Peak hour pricing active - Rate: %s %.1f/hour",
			cfg.Currency, pricing.DynamicRate(now, cfg))
	}

	return alerts
}

// CountByKind counts alerts per kind
func CountByKind(alerts []domain.Alert) map[string]int {
	counts := make(map[string]int, len(Kinds))
	for _, a := range alerts {
		counts[string(a.Kind)]++
	}
	return counts
}

// Kinds lists every alert kind
var Kinds = []string{
	string(domain.AlertCritical),
	string(domain.AlertWarning),
	string(domain.AlertSuccess),
	string(domain.AlertInfo),
}
