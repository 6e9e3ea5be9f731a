package report

import (
	"math"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/report"
)

// round2 rounds half away from zero to two decimal places. Every rate, score
// and hour quantity in a report passes through this exactly once.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// aggregateAttendance folds one employee's records over a period into the
// summary counts and derived rates.
//
// Pinned formulas (stable across endpoints):
//   - attendance_rate    = (present + 0.5*half) / total_days * 100, 0 when the period is empty
//   - punctuality_rate   = on_time / present * 100, 100 when no present days
//   - consistency_score  = attendance_rate
//   - reliability_score  = 0.60*attendance_rate + 0.40*punctuality_rate
//   - average_daily_hours = hours_worked / present, 0 when no present days
func aggregateAttendance(records []attendance.Record, period report.Period) (report.AttendanceSummary, report.AttendanceMetrics) {
	var summary report.AttendanceSummary

	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
			if !rec.IsLate {
				summary.OnTimeDays++
			}
		case attendance.StatusAbsent:
			summary.AbsentDays++
		case attendance.StatusLate:
			summary.LateDays++
		case attendance.StatusHalfDay:
			summary.HalfDays++
		}

		summary.TotalHoursWorked += rec.HoursWorked
		summary.TotalOvertimeHours += rec.OvertimeHours

		for _, br := range rec.Breaks {
			summary.BreakCount++
			summary.TotalBreakMinutes += br.Minutes()
		}
	}

	attendanceRate := 0.0
	if period.TotalDays > 0 {
		attendanceRate = (float64(summary.PresentDays) + 0.5*float64(summary.HalfDays)) / float64(period.TotalDays) * 100
	}

	// No present days means no lateness was possible.
	punctualityRate := 100.0
	if summary.PresentDays > 0 {
		punctualityRate = float64(summary.OnTimeDays) / float64(summary.PresentDays) * 100
	}

	metrics := report.AttendanceMetrics{
		AttendanceRate:   round2(attendanceRate),
		PunctualityRate:  round2(punctualityRate),
		ConsistencyScore: round2(attendanceRate),
		ReliabilityScore: round2(0.60*attendanceRate + 0.40*punctualityRate),
	}
	if summary.PresentDays > 0 {
		metrics.AverageDailyHours = round2(summary.TotalHoursWorked / float64(summary.PresentDays))
	}

	if summary.BreakCount > 0 {
		summary.AverageBreakMinutes = round2(summary.TotalBreakMinutes / float64(summary.BreakCount))
	}
	summary.TotalHoursWorked = round2(summary.TotalHoursWorked)
	summary.TotalOvertimeHours = round2(summary.TotalOvertimeHours)
	summary.TotalBreakMinutes = round2(summary.TotalBreakMinutes)

	return summary, metrics
}

// groupRecordsByEmployee splits a period-wide record set into per-employee
// slices, preserving the gateway's date order within each slice.
func groupRecordsByEmployee(records []attendance.Record) map[string][]attendance.Record {
	grouped := make(map[string][]attendance.Record)
	for _, rec := range records {
		grouped[rec.EmployeeID] = append(grouped[rec.EmployeeID], rec)
	}
	return grouped
}
