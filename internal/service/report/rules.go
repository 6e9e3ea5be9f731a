package report

import (
	"fmt"

	"github.com/emsuite/ems-backend-go/internal/domain/report"
)

type ruleDirection int

const (
	// The metric is unfavorable when it falls below the threshold.
	belowThreshold ruleDirection = iota
	// The metric is unfavorable when it rises above the threshold.
	aboveThreshold
)

const (
	severityLow    = "low"
	severityMedium = "medium"
	severityHigh   = "high"
)

// recommendationRule is one row of the declarative recommendation table.
// Severity escalates with the distance past the threshold: within mediumBand
// it is low, within highBand medium, beyond that high.
type recommendationRule struct {
	metric     string
	direction  ruleDirection
	threshold  float64
	mediumBand float64
	highBand   float64
	category   string
	message    string
}

// performanceRules is evaluated in order; every crossing rule emits one
// recommendation and no rule suppresses another.
var performanceRules = []recommendationRule{
	{
		metric:     "attendance_rate",
		direction:  belowThreshold,
		threshold:  90,
		mediumBand: 5,
		highBand:   15,
		category:   "attendance",
		message:    "Attendance rate of %.2f%% is below the expected 90%%. Review recent absences and agree on a catch-up plan.",
	},
	{
		metric:     "punctuality_rate",
		direction:  belowThreshold,
		threshold:  85,
		mediumBand: 5,
		highBand:   15,
		category:   "punctuality",
		message:    "Punctuality rate of %.2f%% is below the expected 85%%. Frequent late check-ins are affecting the score.",
	},
	{
		metric:     "leave_planning_score",
		direction:  belowThreshold,
		threshold:  70,
		mediumBand: 10,
		highBand:   25,
		category:   "leave_planning",
		message:    "Leave planning score of %.2f indicates short-notice or clustered leave. Encourage earlier requests spread across the year.",
	},
	{
		metric:     "overtime_contribution",
		direction:  aboveThreshold,
		threshold:  90,
		mediumBand: 5,
		highBand:   10,
		category:   "work_life_balance",
		message:    "Overtime is at %.2f%% of the annual ceiling. Sustained overtime at this level risks burnout; review workload distribution.",
	},
}

func metricValue(c report.PerformanceComponents, metric string) float64 {
	switch metric {
	case "attendance_rate":
		return c.AttendanceRate
	case "punctuality_rate":
		return c.PunctualityRate
	case "leave_planning_score":
		return c.LeavePlanningScore
	case "overtime_contribution":
		return c.OvertimeContribution
	default:
		return 0
	}
}

// evaluateRules runs every rule independently over the score components and
// collects the recommendations of those that crossed their threshold.
func evaluateRules(c report.PerformanceComponents) []report.Recommendation {
	recommendations := make([]report.Recommendation, 0, len(performanceRules))

	for _, rule := range performanceRules {
		value := metricValue(c, rule.metric)

		var distance float64
		switch rule.direction {
		case belowThreshold:
			distance = rule.threshold - value
		case aboveThreshold:
			distance = value - rule.threshold
		}
		if distance <= 0 {
			continue
		}

		severity := severityLow
		if distance > rule.highBand {
			severity = severityHigh
		} else if distance > rule.mediumBand {
			severity = severityMedium
		}

		recommendations = append(recommendations, report.Recommendation{
			Category: rule.category,
			Severity: severity,
			Message:  fmt.Sprintf(rule.message, value),
		})
	}

	return recommendations
}
