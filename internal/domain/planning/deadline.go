package planning

import (
	"math"
	"sort"
	"strconv"
	"time"
)

// DueKind classifies a due date relative to the current time. It is derived
// for presentation and never persisted.
type DueKind string

const (
	DueOverdue  DueKind = "overdue"
	DueToday    DueKind = "due_today"
	DueTomorrow DueKind = "tomorrow"
	DueDaysLeft DueKind = "days_left"
)

// DueClassification is the result of classifying a due date. Days carries
// the remaining day count and is meaningful for DueDaysLeft.
type DueClassification struct {
	Kind DueKind
	Days int
}

// Label renders the classification the way the dashboard shows it
func (c DueClassification) Label() string {
	switch c.Kind {
	case DueOverdue:
		return "Overdue"
	case DueToday:
		return "Today"
	case DueTomorrow:
		return "Tomorrow"
	default:
		return strconv.Itoa(c.Days) + "d left"
	}
}

// ClassifyDue classifies a due date relative to now. The day difference is
// rounded up, so any remaining fraction of a day counts as a full day.
func ClassifyDue(now, due time.Time) DueClassification {
	days := int(math.Ceil(due.Sub(now).Hours() / 24))
	switch {
	case days < 0:
		return DueClassification{Kind: DueOverdue, Days: days}
	case days == 0:
		return DueClassification{Kind: DueToday}
	case days == 1:
		return DueClassification{Kind: DueTomorrow, Days: 1}
	default:
		return DueClassification{Kind: DueDaysLeft, Days: days}
	}
}

// UpcomingDeadlines returns the projects with a due date after now,
// ascending by date, truncated to limit. A non-positive limit returns all
// matches.
func UpcomingDeadlines(now time.Time, projects []*Project, limit int) []*Project {
	upcoming := make([]*Project, 0, len(projects))
	for _, p := range projects {
		if p.DueDate != nil && p.DueDate.After(now) {
			upcoming = append(upcoming, p)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(*upcoming[j].DueDate)
	})
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}
