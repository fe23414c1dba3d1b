package analytics

import "time"

// DayBucket counts registrations created on one calendar day.
type DayBucket struct {
	Date     string `json:"date"`
	Total    int    `json:"total"`
	Approved int    `json:"approved"`
	Pending  int    `json:"pending"`
	Rejected int    `json:"rejected"`
}

// CategoryBucket counts devices sharing one operating system.
type CategoryBucket struct {
	Name     string `json:"name"`
	Total    int    `json:"total"`
	Approved int    `json:"approved"`
	Pending  int    `json:"pending"`
	Rejected int    `json:"rejected"`
}

// StatusShare is a count and its share of the total, in whole percent.
type StatusShare struct {
	Count      int `json:"count"`
	Percentage int `json:"percentage"`
}

// ApprovalStatus is the three-way status breakdown of an organization.
type ApprovalStatus struct {
	Approved StatusShare `json:"approved"`
	Pending  StatusShare `json:"pending"`
	Rejected StatusShare `json:"rejected"`
	Total    int         `json:"total"`
}

// StatusSnapshot summarises an organization's fleet.
type StatusSnapshot struct {
	TotalUsers       int       `json:"totalUsers"`
	ActiveEndpoints  int       `json:"activeEndpoints"`
	TotalDepartments int       `json:"totalDepartments"`
	OrganizationName string    `json:"organizationName"`
	WazuhIntegrated  bool      `json:"wazuhIntegrated"`
	SystemHealth     string    `json:"systemHealth"`
	LastUpdated      time.Time `json:"lastUpdated"`
}

// Activity is one entry of the recent activity feed.
type Activity struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	User         string    `json:"user"`
	Organization string    `json:"organization"`
	Timestamp    time.Time `json:"timestamp"`
	Description  string    `json:"description"`
}

// DeviceStat reports one operating system with its week over week trend.
type DeviceStat struct {
	Device     string `json:"device"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
	Trend      string `json:"trend"`
	Change     int    `json:"change"`
}

// HourBucket counts activity within one hour of the day.
type HourBucket struct {
	Time  string `json:"time"`
	Value int    `json:"value"`
}

// SecurityMetrics is a synthetic posture score derived from approval state and
// Wazuh linkage. Vulnerabilities and Incidents are placeholders, not scan results.
type SecurityMetrics struct {
	ThreatLevel     string    `json:"threatLevel"`
	SecurityScore   int       `json:"securityScore"`
	Vulnerabilities int       `json:"vulnerabilities"`
	LastScan        time.Time `json:"lastScan"`
	Incidents       int       `json:"incidents"`
	WazuhIntegrated bool      `json:"wazuhIntegrated"`
	ApprovalRate    int       `json:"approvalRate"`
	PendingRate     int       `json:"pendingRate"`
}

// Growth compares registrations in the latest window with the one before it.
type Growth struct {
	CurrentPeriod  int     `json:"currentPeriod"`
	PreviousPeriod int     `json:"previousPeriod"`
	GrowthRate     float64 `json:"growthRate"`
	Trend          string  `json:"trend"`
	TimeRange      int     `json:"timeRange"`
}
