package models

import "time"

// ActivityLog keeps a best-effort trail of user-visible actions (quote
// created, settings updated, PDF generated). Failures to record are logged
// and swallowed; auditing never blocks the main flow.
type ActivityLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Action    string    `gorm:"not null;index" json:"action"`
	Entity    string    `gorm:"index" json:"entity"`
	EntityID  uint      `json:"entityId"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"createdAt"`
}
