package payroll

import (
	"slices"
	"time"

	"github.com/payroll-hub/payroll-backend-go/internal/domain/attendance"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/payroll"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
)

// Classifier turns one employee's attendance for a period into day codes
// and counts. It holds no state and is safe for concurrent use.
type Classifier struct {
}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify runs three passes, each over a fresh slice: the initial punch
// classification, the late-day escalation and the absence tolerance.
// MissingDays is left at zero; it needs the working calendar, see WithMissingDays.
func (c *Classifier) Classify(cfg payroll.TimingConfig, records attendance.Chronological, approved payroll.ApprovedLeaveSet) payroll.AttendanceMetrics {
	initial := c.classifyDays(cfg, records, approved)
	escalated := c.escalateLateDays(initial)
	masks := c.markAbsences(escalated)

	return c.aggregate(escalated, masks)
}

// classifyDays builds one DayStatus per attended or approved date, in date order.
func (c *Classifier) classifyDays(cfg payroll.TimingConfig, records attendance.Chronological, approved payroll.ApprovedLeaveSet) []payroll.DayStatus {
	days := make([]payroll.DayStatus, 0, records.Len()+len(approved))
	excused := make(map[civil.Date]bool, len(approved))

	for i := 0; i < records.Len(); i++ {
		rec := records.At(i)
		if approved.Has(rec.Date) {
			if !excused[rec.Date] {
				excused[rec.Date] = true
				days = append(days, payroll.DayStatus{Date: rec.Date, Code: payroll.DayApprovedLeave})
			}
			continue
		}
		days = append(days, c.classifyRecord(cfg, rec))
	}

	// Approved dates nobody punched on still appear in the sequence.
	leaveOnly := false
	for d := range approved {
		if !excused[d] {
			days = append(days, payroll.DayStatus{Date: d, Code: payroll.DayApprovedLeave})
			leaveOnly = true
		}
	}
	if leaveOnly {
		slices.SortStableFunc(days, func(a, b payroll.DayStatus) int {
			return a.Date.Compare(b.Date)
		})
	}

	return days
}

func (c *Classifier) classifyRecord(cfg payroll.TimingConfig, rec attendance.Record) payroll.DayStatus {
	absent := payroll.DayStatus{Date: rec.Date, Code: payroll.DayAbsent}

	in, okIn := civil.ParseTimeOfDay(rec.PunchIn)
	out, okOut := civil.ParseTimeOfDay(rec.PunchOut)
	if !okIn || !okOut {
		return absent
	}

	// Whole minutes, truncated toward zero, before any rule applies.
	workedMin := int(out.Sub(in) / time.Minute)
	if workedMin <= 0 || workedMin > payroll.MaxWorkedMinutes {
		return absent
	}
	lateMin := int(in.Sub(cfg.ReportingTime) / time.Minute)

	isLate := lateMin >= 1
	isFullDay := workedMin >= cfg.DutyMinutes

	status := payroll.DayStatus{
		Date:          rec.Date,
		WorkedMinutes: workedMin,
	}
	if isLate {
		status.LateMinutes = lateMin
	}

	switch {
	case isFullDay && !isLate:
		status.Code = payroll.DayPresent
	case isFullDay && isLate:
		status.Code = payroll.DayPresentLate
	case !isFullDay && !isLate:
		status.Code = payroll.DayHalfDay
	default:
		status.Code = payroll.DayHalfDayLate
	}
	return status
}

// escalateLateDays turns every late full day past the tolerance into a late half day.
// Late half days still count toward the tolerance.
func (c *Classifier) escalateLateDays(days []payroll.DayStatus) []payroll.DayStatus {
	out := slices.Clone(days)

	lateSeen := 0
	for i := range out {
		if !out[i].Code.IsLate() {
			continue
		}
		lateSeen++
		if lateSeen > payroll.LateTolerance && out[i].Code == payroll.DayPresentLate {
			out[i].Code = payroll.DayHalfDayLate
		}
	}
	return out
}

// markAbsences charges the first AbsenceTolerance absences normally and the
// rest as excess. Approved leave is always regular.
func (c *Classifier) markAbsences(days []payroll.DayStatus) map[civil.Date]payroll.StreakMask {
	masks := make(map[civil.Date]payroll.StreakMask)

	absences := 0
	for _, d := range days {
		switch d.Code {
		case payroll.DayApprovedLeave:
			masks[d.Date] = payroll.StreakMask{Absent: 1, Approved: true}
		case payroll.DayAbsent:
			absences++
			if absences <= payroll.AbsenceTolerance {
				masks[d.Date] = payroll.StreakMask{Absent: 1}
			} else {
				masks[d.Date] = payroll.StreakMask{Excess: 1}
			}
		}
	}
	return masks
}

func (c *Classifier) aggregate(days []payroll.DayStatus, masks map[civil.Date]payroll.StreakMask) payroll.AttendanceMetrics {
	m := payroll.AttendanceMetrics{
		DayStatus:   days,
		StreakMasks: masks,
	}

	for _, d := range days {
		switch {
		case d.Code.IsFullDay():
			m.PresentDays++
		case d.Code.IsHalfDay():
			m.HalfDays++
		case d.Code == payroll.DayApprovedLeave:
			m.ApprovedLeaveDays++
		case d.Code == payroll.DayAbsent:
			if masks[d.Date].Excess == 1 {
				m.ExcessLeaves++
			} else {
				m.RegularAbsentDays++
			}
		}
		if d.Code.IsLate() {
			m.LateDays++
		}
	}
	return m
}

// WithMissingDays returns a copy of m whose MissingDays counts the working
// days that have neither a record nor an approved leave.
func WithMissingDays(m payroll.AttendanceMetrics, wd payroll.WorkingDays) payroll.AttendanceMetrics {
	m.MissingDays = len(MissingDates(m, wd))
	return m
}

// MissingDates lists the working days absent from m.DayStatus.
func MissingDates(m payroll.AttendanceMetrics, wd payroll.WorkingDays) []civil.Date {
	classified := make(map[civil.Date]struct{}, len(m.DayStatus))
	for _, d := range m.DayStatus {
		classified[d.Date] = struct{}{}
	}

	var missing []civil.Date
	for _, d := range wd.Days {
		if _, ok := classified[d]; !ok {
			missing = append(missing, d)
		}
	}
	return missing
}
