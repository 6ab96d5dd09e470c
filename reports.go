package dashboard

import (
	"math"
	"sort"
	"time"
)

// Summary provides the at-a-glance KPI view of the portfolio: category
// counts, live velocity, attention items and budget totals.
type Summary struct {
	Date     time.Time
	Currency string

	Total    int
	Live     int
	Pipeline int
	SOW      int
	Closed   int
	Archived int

	// AvgProgress is the average progress of live projects, rounded.
	AvgProgress int
	// Attention counts live projects that are Delayed or Critical.
	Attention int

	StatusCounts []StatusCount
	TopOwners    []OwnerCount

	TotalBudget Budget
	LiveBudget  Budget
}

// StatusCount is one bar of the status distribution.
type StatusCount struct {
	Status Status
	Count  int
}

// OwnerCount is one bar of the per-owner workload distribution.
type OwnerCount struct {
	Owner string
	Count int
}

// statusOrder fixes the rendering order of the distribution.
var statusOrder = []Status{NotStarted, OnTrack, Delayed, Critical, Completed}

// NewSummary computes the KPI summary over the given projects.
func NewSummary(projects []Project, currency string, on time.Time) *Summary {
	s := &Summary{Date: on, Currency: currency, Total: len(projects)}

	statusCounts := make(map[Status]int)
	ownerCounts := make(map[string]int)
	liveProgress := 0

	for _, p := range projects {
		switch p.Category {
		case Live:
			s.Live++
			liveProgress += p.Progress
			s.LiveBudget = s.LiveBudget.Add(p.Budget)
			if p.Status == Delayed || p.Status == Critical {
				s.Attention++
			}
		case Pipeline:
			s.Pipeline++
		case SOW:
			s.SOW++
		case Closed:
			s.Closed++
		case Archive:
			s.Archived++
		}
		statusCounts[p.Status]++
		ownerCounts[p.Owner]++
		s.TotalBudget = s.TotalBudget.Add(p.Budget)
	}

	if s.Live > 0 {
		s.AvgProgress = int(math.Round(float64(liveProgress) / float64(s.Live)))
	}

	for _, status := range statusOrder {
		if n := statusCounts[status]; n > 0 {
			s.StatusCounts = append(s.StatusCounts, StatusCount{Status: status, Count: n})
		}
	}

	for owner, n := range ownerCounts {
		s.TopOwners = append(s.TopOwners, OwnerCount{Owner: owner, Count: n})
	}
	sort.Slice(s.TopOwners, func(i, j int) bool {
		if s.TopOwners[i].Count != s.TopOwners[j].Count {
			return s.TopOwners[i].Count > s.TopOwners[j].Count
		}
		return s.TopOwners[i].Owner < s.TopOwners[j].Owner
	})
	if len(s.TopOwners) > 5 {
		s.TopOwners = s.TopOwners[:5]
	}

	return s
}
