package dto

// UpdateSettingsRequest edits the singleton placement cell settings.
type UpdateSettingsRequest struct {
	CollegeName         *string `json:"collegeName"`
	AdminEmail          *string `json:"adminEmail" binding:"omitempty,email"`
	PlacementYear       *string `json:"placementYear"`
	NotifyOnApplication *bool   `json:"notifyOnApplication"`
	NotifyOnResult      *bool   `json:"notifyOnResult"`
	AutoSyncSheets      *bool   `json:"autoSyncSheets"`
}
