package models

import "time"

// Settings is the single-row (id=1) placement cell configuration.
type Settings struct {
	ID                  int64     `json:"id" db:"id"`
	CollegeName         string    `json:"collegeName" db:"college_name"`
	AdminEmail          string    `json:"adminEmail" db:"admin_email"`
	PlacementYear       string    `json:"placementYear" db:"placement_year"`
	NotifyOnApplication bool      `json:"notifyOnApplication" db:"notify_on_application"`
	NotifyOnResult      bool      `json:"notifyOnResult" db:"notify_on_result"`
	AutoSyncSheets      bool      `json:"autoSyncSheets" db:"auto_sync_sheets"`
	UpdatedAt           time.Time `json:"updatedAt" db:"updated_at"`
}
