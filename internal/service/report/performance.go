package report

import "github.com/emsuite/ems-backend-go/internal/domain/report"

// Composite weights of the appraisal score. They sum to 1.0.
const (
	weightAttendance    = 0.40
	weightPunctuality   = 0.30
	weightLeavePlanning = 0.20
	weightOvertime      = 0.10
)

// Rating tiers on the rounded overall score. Boundary values belong to the
// higher tier: exactly 90.00 is Excellent.
const (
	RatingExcellent        = "Excellent"
	RatingVeryGood         = "Very Good"
	RatingGood             = "Good"
	RatingSatisfactory     = "Satisfactory"
	RatingNeedsImprovement = "Needs Improvement"
)

// overtimeContribution normalizes overtime hours against the configured
// annual ceiling to a 0-100 component. Overtime beyond the ceiling earns no
// extra score; it never subtracts.
func overtimeContribution(overtimeHours, ceilingHours float64) float64 {
	if ceilingHours <= 0 || overtimeHours <= 0 {
		return 0
	}
	contribution := overtimeHours / ceilingHours * 100
	if contribution > 100 {
		contribution = 100
	}
	return round2(contribution)
}

// overallScore blends the four components into the composite appraisal score.
func overallScore(c report.PerformanceComponents) float64 {
	return round2(weightAttendance*c.AttendanceRate +
		weightPunctuality*c.PunctualityRate +
		weightLeavePlanning*c.LeavePlanningScore +
		weightOvertime*c.OvertimeContribution)
}

// ratingFor maps a rounded overall score onto its tier.
func ratingFor(score float64) string {
	switch {
	case score >= 90:
		return RatingExcellent
	case score >= 80:
		return RatingVeryGood
	case score >= 70:
		return RatingGood
	case score >= 60:
		return RatingSatisfactory
	default:
		return RatingNeedsImprovement
	}
}
