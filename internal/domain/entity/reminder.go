package entity

import "time"

// Reminder is an agent task with a due date. RelatedTo is free text like
// "Lead: Sara Khan", not a foreign key.
type Reminder struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	DueDate     time.Time `json:"dueDate"`
	RelatedTo   string    `json:"relatedTo"`
	IsCompleted bool      `json:"isCompleted"`
	AgentID     string    `json:"agentId"`
}

// IsOverdue reports whether the reminder is past due and still open.
func (r Reminder) IsOverdue(now time.Time) bool {
	return r.DueDate.Before(now) && !r.IsCompleted
}
