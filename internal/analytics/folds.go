// Package analytics holds the in-memory folds behind the organization reports.
// Every function is pure: callers pass the rows, the clock and the time zone.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/Soumendu22/NSBack/internal/constants"
	"github.com/Soumendu22/NSBack/internal/model"
)

const dateLayout = "2006-01-02"

// TrendWindowStart returns midnight, in loc, of the first of the days buckets ending today.
func TrendWindowStart(days int, now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return midnight.AddDate(0, 0, -(days - 1))
}

// RegistrationTrend returns exactly days buckets, oldest first and ending today,
// with every day present even when nothing was registered.
func RegistrationTrend(devices []*model.EndpointUser, days int, now time.Time, loc *time.Location) []DayBucket {
	start := TrendWindowStart(days, now, loc)
	buckets := make([]DayBucket, days)
	index := make(map[string]int, days)
	for i := range buckets {
		key := start.AddDate(0, 0, i).Format(dateLayout)
		buckets[i] = DayBucket{Date: key}
		index[key] = i
	}

	for _, d := range devices {
		i, ok := index[d.CreatedAt.In(loc).Format(dateLayout)]
		if !ok {
			continue
		}
		b := &buckets[i]
		b.Total++
		switch d.ReportedStatus() {
		case constants.StatusApproved:
			b.Approved++
		case constants.StatusRejected:
			b.Rejected++
		default:
			b.Pending++
		}
	}
	return buckets
}

// OSDistribution buckets devices by operating system, largest first.
func OSDistribution(devices []*model.EndpointUser) []CategoryBucket {
	byName := map[string]*CategoryBucket{}
	for _, d := range devices {
		name := osName(d)
		b, ok := byName[name]
		if !ok {
			b = &CategoryBucket{Name: name}
			byName[name] = b
		}
		b.Total++
		switch d.ReportedStatus() {
		case constants.StatusApproved:
			b.Approved++
		case constants.StatusRejected:
			b.Rejected++
		default:
			b.Pending++
		}
	}

	result := make([]CategoryBucket, 0, len(byName))
	for _, b := range byName {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// ApprovalBreakdown counts devices by reported status.
func ApprovalBreakdown(devices []*model.EndpointUser) ApprovalStatus {
	var approved, pending, rejected int
	for _, d := range devices {
		switch d.ReportedStatus() {
		case constants.StatusApproved:
			approved++
		case constants.StatusRejected:
			rejected++
		default:
			pending++
		}
	}
	total := len(devices)
	return ApprovalStatus{
		Approved: StatusShare{Count: approved, Percentage: Percentage(approved, total)},
		Pending:  StatusShare{Count: pending, Percentage: Percentage(pending, total)},
		Rejected: StatusShare{Count: rejected, Percentage: Percentage(rejected, total)},
		Total:    total,
	}
}

// Snapshot returns total devices, approved devices and distinct operating systems.
func Snapshot(devices []*model.EndpointUser) (total, active, departments int) {
	seen := map[string]struct{}{}
	for _, d := range devices {
		if d.IsApproved() {
			active++
		}
		seen[osName(d)] = struct{}{}
	}
	return len(devices), active, len(seen)
}

// RecentActivity maps devices, already ordered newest first, onto feed entries.
func RecentActivity(devices []*model.EndpointUser) []Activity {
	activities := make([]Activity, 0, len(devices))
	for _, d := range devices {
		status := d.ReportedStatus()
		activityType := constants.ActivityRegistration
		timestamp := d.CreatedAt
		switch status {
		case constants.StatusApproved:
			activityType = constants.ActivityApproval
			timestamp = d.UpdatedAt
		case constants.StatusRejected:
			activityType = constants.ActivityRejection
			timestamp = d.UpdatedAt
		}
		activities = append(activities, Activity{
			ID:           fmt.Sprintf("%s-%s", d.FullName, timestamp.UTC().Format(time.RFC3339Nano)),
			Type:         activityType,
			Status:       status,
			User:         d.FullName,
			Organization: d.OrganizationCompanyName,
			Timestamp:    timestamp,
			Description:  fmt.Sprintf("%s from %s - %s", d.FullName, d.OrganizationCompanyName, activityType),
		})
	}
	return activities
}

// DeviceTrends counts devices per operating system over all time and compares the
// last seven days with the seven days before them.
func DeviceTrends(devices []*model.EndpointUser, now time.Time) []DeviceStat {
	window := constants.DeviceWindowDays * 24 * time.Hour
	weekAgo := now.Add(-window)
	twoWeeksAgo := now.Add(-2 * window)

	counts := map[string]int{}
	current := map[string]int{}
	previous := map[string]int{}
	for _, d := range devices {
		name := osName(d)
		counts[name]++
		switch {
		case !d.CreatedAt.Before(weekAgo):
			current[name]++
		case !d.CreatedAt.Before(twoWeeksAgo):
			previous[name]++
		}
	}

	result := make([]DeviceStat, 0, len(counts))
	for name, count := range counts {
		change := PercentChange(previous[name], current[name])
		result = append(result, DeviceStat{
			Device:     name,
			Count:      count,
			Percentage: Percentage(count, len(devices)),
			Trend:      TrendLabel(change),
			Change:     int(roundHalfUp(change)),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Device < result[j].Device
	})
	return result
}

// HourlyActivity fills 24 hour-of-day buckets from devices created within the last
// seven days. A device counts at its creation hour and again at its update hour
// when the update time differs from the creation time.
func HourlyActivity(devices []*model.EndpointUser, now time.Time, loc *time.Location) []HourBucket {
	buckets := make([]HourBucket, 24)
	for h := range buckets {
		buckets[h].Time = fmt.Sprintf("%02d:00", h)
	}

	since := now.Add(-constants.HourlyWindowDays * 24 * time.Hour)
	for _, d := range devices {
		if d.CreatedAt.Before(since) {
			continue
		}
		buckets[d.CreatedAt.In(loc).Hour()].Value++
		if !d.UpdatedAt.IsZero() && !d.UpdatedAt.Equal(d.CreatedAt) {
			buckets[d.UpdatedAt.In(loc).Hour()].Value++
		}
	}
	return buckets
}

// Security derives the synthetic security score. Base 50, +25 with Wazuh linked,
// up to +20 by approval rate, up to -15 by pending rate, clamped to [0,100].
func Security(devices []*model.EndpointUser, wazuhIntegrated bool, now time.Time) SecurityMetrics {
	total := len(devices)
	var approved, pending int
	for _, d := range devices {
		switch d.ReportedStatus() {
		case constants.StatusApproved:
			approved++
		case constants.StatusPending:
			pending++
		}
	}

	var approvalRate, pendingRate float64
	if total > 0 {
		approvalRate = float64(approved) / float64(total)
		pendingRate = float64(pending) / float64(total)
	}

	score := 50
	if wazuhIntegrated {
		score += 25
	}
	score += int(roundHalfUp(approvalRate * 20))
	score -= int(roundHalfUp(pendingRate * 15))
	score = max(0, min(100, score))

	threat := constants.ThreatLow
	switch {
	case score < 60:
		threat = constants.ThreatHigh
	case score < 80:
		threat = constants.ThreatMedium
	}

	return SecurityMetrics{
		ThreatLevel:     threat,
		SecurityScore:   score,
		Vulnerabilities: (100 - score) / 20,
		LastScan:        now,
		Incidents:       0,
		WazuhIntegrated: wazuhIntegrated,
		ApprovalRate:    int(roundHalfUp(approvalRate * 100)),
		PendingRate:     int(roundHalfUp(pendingRate * 100)),
	}
}

// GrowthWindows returns the boundaries of the previous [prevStart, curStart) and
// current [curStart, now] windows of days length.
func GrowthWindows(days int, now time.Time) (prevStart, curStart time.Time) {
	curStart = now.AddDate(0, 0, -days)
	prevStart = now.AddDate(0, 0, -2*days)
	return prevStart, curStart
}

// GrowthOver compares registrations in the latest days window with the one before it.
func GrowthOver(devices []*model.EndpointUser, days int, now time.Time) Growth {
	prevStart, curStart := GrowthWindows(days, now)

	var current, previous int
	for _, d := range devices {
		switch {
		case d.CreatedAt.After(now):
		case !d.CreatedAt.Before(curStart):
			current++
		case !d.CreatedAt.Before(prevStart):
			previous++
		}
	}

	rate := PercentChange(previous, current)
	return Growth{
		CurrentPeriod:  current,
		PreviousPeriod: previous,
		GrowthRate:     math.Floor(rate*10+0.5) / 10,
		Trend:          TrendLabel(rate),
		TimeRange:      days,
	}
}

// PercentChange is the change from previous to current in percent. A category that
// appears from nothing reports +100.
func PercentChange(previous, current int) float64 {
	switch {
	case previous > 0:
		return float64(current-previous) / float64(previous) * 100
	case current > 0:
		return 100
	default:
		return 0
	}
}

// TrendLabel classifies a percent change with a ±5% dead band.
func TrendLabel(change float64) string {
	switch {
	case change > constants.TrendThreshold:
		return constants.TrendUp
	case change < -constants.TrendThreshold:
		return constants.TrendDown
	default:
		return constants.TrendStable
	}
}

// Percentage returns part/total in whole percent, 0 when total is 0.
func Percentage(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(roundHalfUp(float64(part) / float64(total) * 100))
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func osName(d *model.EndpointUser) string {
	if d.OperatingSystem == "" {
		return constants.UnknownValue
	}
	return d.OperatingSystem
}
