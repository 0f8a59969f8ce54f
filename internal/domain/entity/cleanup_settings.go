package entity

// CleanupSettings is the `settings/cleanup` singleton gating the repair purge.
// A missing document or Enabled=false disables the job entirely.
// RepairRetentionDays is a pointer so an absent field (default 30) can be told
// apart from an explicit non-positive value (run skipped).
type CleanupSettings struct {
	Enabled             bool `firestore:"enabled"`
	RepairRetentionDays *int `firestore:"repairRetentionDays"`
}

// DefaultRepairRetentionDays applies when the settings document does not
// carry a retention value.
const DefaultRepairRetentionDays = 30

// RetentionDays returns the configured retention window, applying the default
// when the field is absent. A non-positive result means the run must be skipped.
func (s *CleanupSettings) RetentionDays() int {
	if s.RepairRetentionDays == nil {
		return DefaultRepairRetentionDays
	}
	return *s.RepairRetentionDays
}
