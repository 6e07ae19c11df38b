package payroll

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/payroll-hub/payroll-backend-go/internal/domain/attendance"
	"github.com/payroll-hub/payroll-backend-go/internal/domain/payroll"
	"github.com/payroll-hub/payroll-backend-go/internal/pkg/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) civil.Date {
	return civil.NewDate(2024, time.March, d)
}

func rec(d int, in, out string) attendance.Record {
	return attendance.Record{EmployeeID: "EMP001", Date: day(d), PunchIn: in, PunchOut: out}
}

func classify(records []attendance.Record, approved ...civil.Date) payroll.AttendanceMetrics {
	return NewClassifier().Classify(
		payroll.DefaultTimingConfig(),
		attendance.Chronologically(records),
		payroll.NewApprovedLeaveSet(approved...),
	)
}

func codes(m payroll.AttendanceMetrics) []payroll.DayCode {
	out := make([]payroll.DayCode, 0, len(m.DayStatus))
	for _, d := range m.DayStatus {
		out = append(out, d.Code)
	}
	return out
}

func assertBuckets(t *testing.T, m payroll.AttendanceMetrics) {
	t.Helper()
	total := m.PresentDays + m.HalfDays + m.RegularAbsentDays + m.ApprovedLeaveDays + m.ExcessLeaves
	assert.Equal(t, len(m.DayStatus), total, "every classified day falls into exactly one bucket")
	assert.LessOrEqual(t, m.RegularAbsentDays, payroll.AbsenceTolerance)
}

func TestClassify_OnTimeFullDayIsPresent(t *testing.T) {
	m := classify([]attendance.Record{rec(4, "09:00", "17:00")})

	require.Len(t, m.DayStatus, 1)
	assert.Equal(t, payroll.DayPresent, m.DayStatus[0].Code)
	assert.Equal(t, 480, m.DayStatus[0].WorkedMinutes)
	assert.Equal(t, 1, m.PresentDays)
	assert.Zero(t, m.LateDays)
	assertBuckets(t, m)
}

func TestClassify_DayCodes(t *testing.T) {
	tests := []struct {
		name     string
		in, out  string
		wantCode payroll.DayCode
	}{
		{"present", "09:00:00", "17:00:00", payroll.DayPresent},
		{"present with seconds under a minute late", "09:00:59", "17:01:00", payroll.DayPresent},
		{"present late", "09:01", "17:01", payroll.DayPresentLate},
		{"half day", "08:30", "12:30", payroll.DayHalfDay},
		{"half day late", "10:00", "14:00", payroll.DayHalfDayLate},
		{"one minute short is half day", "09:00", "16:59", payroll.DayHalfDay},
		{"empty punch in", "", "17:00", payroll.DayAbsent},
		{"empty punch out", "09:00", "", payroll.DayAbsent},
		{"zero sentinel", "00:00", "17:00", payroll.DayAbsent},
		{"zero sentinel with seconds", "09:00", "00:00:00", payroll.DayAbsent},
		{"garbage", "nine", "17:00", payroll.DayAbsent},
		{"out before in", "17:00", "09:00", payroll.DayAbsent},
		{"zero worked", "09:00", "09:00", payroll.DayAbsent},
		{"sub-minute worked", "09:00:00", "09:00:30", payroll.DayAbsent},
		{"59 seconds worked", "09:00:00", "09:00:59", payroll.DayAbsent},
		{"one minute worked is half day", "09:00:00", "09:01:00", payroll.DayHalfDay},
		{"one second short of duty is half day", "09:00:00", "16:59:59", payroll.DayHalfDay},
		{"late by 59 seconds is on time", "09:00:59", "17:00:58", payroll.DayHalfDay},
		{"single digit hour", "9:00", "17:00", payroll.DayAbsent},
		{"hour 24", "09:00", "24:00", payroll.DayAbsent},
		{"second 60", "09:00:60", "17:00", payroll.DayAbsent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := classify([]attendance.Record{rec(4, tt.in, tt.out)})
			require.Len(t, m.DayStatus, 1)
			assert.Equal(t, tt.wantCode, m.DayStatus[0].Code)
			assertBuckets(t, m)
		})
	}
}

func TestClassify_SubMinuteSpansEnterAbsenceTolerance(t *testing.T) {
	records := []attendance.Record{
		rec(4, "09:00:00", "09:00:30"),
		rec(5, "09:00:00", "09:00:10"),
		rec(6, "09:00:00", "09:00:45"),
	}

	m := classify(records)

	assert.Zero(t, m.HalfDays)
	assert.Equal(t, 2, m.RegularAbsentDays)
	assert.Equal(t, 1, m.ExcessLeaves)
	for _, d := range m.DayStatus {
		assert.Zero(t, d.WorkedMinutes)
	}
	assertBuckets(t, m)
}

func TestClassify_FourthLateDayEscalates(t *testing.T) {
	records := []attendance.Record{
		rec(4, "09:05", "17:05"),
		rec(5, "09:05", "17:05"),
		rec(6, "09:05", "17:05"),
		rec(7, "09:05", "17:05"),
	}

	m := classify(records)

	assert.Equal(t, []payroll.DayCode{
		payroll.DayPresentLate, payroll.DayPresentLate, payroll.DayPresentLate, payroll.DayHalfDayLate,
	}, codes(m))
	assert.Equal(t, 3, m.PresentDays)
	assert.Equal(t, 1, m.HalfDays)
	assert.Equal(t, 4, m.LateDays)
	assert.Equal(t, 5, m.DayStatus[3].LateMinutes)
	assertBuckets(t, m)
}

func TestClassify_LateHalfDaysCountTowardTolerance(t *testing.T) {
	records := []attendance.Record{
		rec(4, "10:00", "13:00"), // late half day, 1st late
		rec(5, "09:30", "17:30"), // 2nd
		rec(6, "09:30", "17:30"), // 3rd
		rec(7, "09:30", "17:30"), // 4th, escalates
		rec(8, "09:00", "17:00"),
	}

	m := classify(records)

	assert.Equal(t, []payroll.DayCode{
		payroll.DayHalfDayLate, payroll.DayPresentLate, payroll.DayPresentLate, payroll.DayHalfDayLate, payroll.DayPresent,
	}, codes(m))
	assert.Equal(t, 3, m.PresentDays)
	assert.Equal(t, 2, m.HalfDays)
	assert.Equal(t, 4, m.LateDays)
}

func TestClassify_EscalationFollowsDateOrderNotInputOrder(t *testing.T) {
	records := []attendance.Record{
		rec(20, "09:10", "17:10"),
		rec(2, "09:10", "17:10"),
		rec(11, "09:10", "17:10"),
		rec(5, "09:10", "17:10"),
	}

	m := classify(records)

	last := m.DayStatus[len(m.DayStatus)-1]
	assert.Equal(t, day(20), last.Date)
	assert.Equal(t, payroll.DayHalfDayLate, last.Code)
	for _, d := range m.DayStatus[:3] {
		assert.Equal(t, payroll.DayPresentLate, d.Code, d.Date.String())
	}
}

func TestClassify_ThreeAbsencesOneExcess(t *testing.T) {
	records := []attendance.Record{
		rec(4, "", ""),
		rec(5, "00:00", "00:00"),
		rec(6, "x", "y"),
	}

	m := classify(records)

	assert.Equal(t, 2, m.RegularAbsentDays)
	assert.Equal(t, 1, m.ExcessLeaves)
	assert.Equal(t, payroll.StreakMask{Absent: 1}, m.StreakMasks[day(4)])
	assert.Equal(t, payroll.StreakMask{Absent: 1}, m.StreakMasks[day(5)])
	assert.Equal(t, payroll.StreakMask{Excess: 1}, m.StreakMasks[day(6)])
	assertBuckets(t, m)
}

func TestClassify_ApprovedLeavesNeverBecomeExcess(t *testing.T) {
	approved := []civil.Date{day(4), day(5), day(6), day(7), day(8)}

	m := classify(nil, approved...)

	assert.Equal(t, 5, m.ApprovedLeaveDays)
	assert.Zero(t, m.ExcessLeaves)
	assert.Zero(t, m.RegularAbsentDays)
	require.Len(t, m.DayStatus, 5)
	for _, d := range approved {
		assert.Equal(t, payroll.StreakMask{Absent: 1, Approved: true}, m.StreakMasks[d])
	}
	assertBuckets(t, m)
}

func TestClassify_ApprovedLeavesDoNotMoveTheAbsenceCount(t *testing.T) {
	records := []attendance.Record{
		rec(10, "", ""),
		rec(11, "", ""),
		rec(12, "", ""),
	}
	few := classify(records, day(1))
	many := classify(records, day(1), day(2), day(3), day(4), day(5), day(6))

	assert.Equal(t, few.ExcessLeaves, many.ExcessLeaves)
	assert.Equal(t, few.RegularAbsentDays, many.RegularAbsentDays)
	assert.Equal(t, 1, many.ExcessLeaves)
	assertBuckets(t, few)
	assertBuckets(t, many)
}

func TestClassify_ApprovedDateIgnoresPunches(t *testing.T) {
	m := classify([]attendance.Record{rec(4, "09:00", "17:00"), rec(5, "", "")}, day(4), day(5))

	assert.Equal(t, []payroll.DayCode{payroll.DayApprovedLeave, payroll.DayApprovedLeave}, codes(m))
	assert.Zero(t, m.PresentDays)
	assert.Zero(t, m.RegularAbsentDays)
	assert.Equal(t, 2, m.ApprovedLeaveDays)
}

func TestClassify_ApprovedDatesMergeInOrder(t *testing.T) {
	m := classify([]attendance.Record{rec(3, "09:00", "17:00"), rec(9, "09:00", "17:00")}, day(6), day(1))

	var dates []civil.Date
	for _, d := range m.DayStatus {
		dates = append(dates, d.Date)
	}
	assert.Equal(t, []civil.Date{day(1), day(3), day(6), day(9)}, dates)
}

func TestClassify_UsesTimingConfig(t *testing.T) {
	cfg := payroll.NewTimingConfig("07:30", 6)
	records := attendance.Chronologically([]attendance.Record{
		rec(4, "07:30", "13:30"),
		rec(5, "07:45", "13:45"),
	})

	m := NewClassifier().Classify(cfg, records, nil)

	assert.Equal(t, []payroll.DayCode{payroll.DayPresent, payroll.DayPresentLate}, codes(m))
}

func TestClassify_EmptyInput(t *testing.T) {
	m := classify(nil)

	assert.Empty(t, m.DayStatus)
	assert.Empty(t, m.StreakMasks)
	assert.Equal(t, payroll.AttendanceMetrics{DayStatus: m.DayStatus, StreakMasks: m.StreakMasks}, m)
}

func TestClassify_DoesNotMutateInput(t *testing.T) {
	records := []attendance.Record{rec(9, "09:00", "17:00"), rec(2, "", "")}
	ordered := attendance.Chronologically(records)

	_ = NewClassifier().Classify(payroll.DefaultTimingConfig(), ordered, nil)

	assert.Equal(t, day(9), records[0].Date)
	assert.Equal(t, day(2), ordered.At(0).Date)
}

func TestClassify_InvariantsOnRandomPeriods(t *testing.T) {
	punches := []string{"", "00:00", "08:00", "08:55", "09:00", "09:01", "09:30", "12:00", "13:00", "17:00", "17:45", "18:30", "bad"}
	rng := rand.New(rand.NewSource(42))
	classifier := NewClassifier()

	for i := 0; i < 300; i++ {
		var records []attendance.Record
		var approved []civil.Date
		for d := 1; d <= 31; d++ {
			switch rng.Intn(4) {
			case 0:
				continue
			case 1:
				approved = append(approved, day(d))
				if rng.Intn(2) == 0 {
					continue
				}
			}
			records = append(records, rec(d, punches[rng.Intn(len(punches))], punches[rng.Intn(len(punches))]))
		}
		rng.Shuffle(len(records), func(a, b int) { records[a], records[b] = records[b], records[a] })

		set := payroll.NewApprovedLeaveSet(approved...)
		ordered := attendance.Chronologically(records)
		first := classifier.Classify(payroll.DefaultTimingConfig(), ordered, set)
		second := classifier.Classify(payroll.DefaultTimingConfig(), ordered, set)

		t.Run(fmt.Sprintf("period_%d", i), func(t *testing.T) {
			assertBuckets(t, first)
			assert.Equal(t, len(approved), first.ApprovedLeaveDays)
			assert.Equal(t, first, second, "classification is deterministic")
			for j := 1; j < len(first.DayStatus); j++ {
				assert.True(t, first.DayStatus[j-1].Date.Before(first.DayStatus[j].Date))
			}
			for _, d := range approved {
				assert.Zero(t, first.StreakMasks[d].Excess)
			}
		})
	}
}

func TestMissingDates(t *testing.T) {
	m := classify([]attendance.Record{rec(4, "09:00", "17:00"), rec(6, "", "")}, day(7))
	wd := payroll.WorkingDays{Count: 5, Days: []civil.Date{day(4), day(5), day(6), day(7), day(8)}}

	assert.Equal(t, []civil.Date{day(5), day(8)}, MissingDates(m, wd))

	withMissing := WithMissingDays(m, wd)
	assert.Equal(t, 2, withMissing.MissingDays)
	assert.Zero(t, m.MissingDays, "original metrics left untouched")
}
