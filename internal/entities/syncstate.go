package entities

type SyncStatusType string

const (
	SyncSynced  SyncStatusType = "synced"
	SyncPending SyncStatusType = "pending"
	SyncSyncing SyncStatusType = "syncing"
	SyncOffline SyncStatusType = "offline"
	SyncError   SyncStatusType = "error"
)

func (t SyncStatusType) String() string {
	return string(t)
}

// SyncState наблюдаемое состояние машины синхронизации.
// PendingCount значим для Pending и Offline, LastError для Offline, Message для Error.
type SyncState struct {
	Status       SyncStatusType `json:"status"`
	PendingCount int            `json:"pending_count,omitempty"`
	LastError    string         `json:"last_error,omitempty"`
	Message      string         `json:"message,omitempty"`
	LastSync     int64          `json:"last_sync,omitempty"`
}
