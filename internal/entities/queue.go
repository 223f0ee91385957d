package entities

// PendingChangesQueue сериализуемая форма журнала несинхронизированных изменений.
type PendingChangesQueue struct {
	Changes    []Change `json:"changes"`
	RetryCount int      `json:"retry_count"`
}
