package entities

type DeliverySession struct {
	SessionID   string             `json:"session_id"`
	Packages    map[string]Package `json:"packages"`
	Addresses   map[string]Address `json:"addresses"`
	IsOptimized bool               `json:"is_optimized"`
	Stats       SessionStats       `json:"stats"`
}

// SessionStats производные счетчики, пересчитываются после каждой мутации статуса.
type SessionStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Scanned   int `json:"scanned"`
	Delivered int `json:"delivered"`
	Failed    int `json:"failed"`
}

func NewSessionStats(packages map[string]Package) SessionStats {
	stats := SessionStats{Total: len(packages)}
	for _, pkg := range packages {
		switch pkg.Status {
		case PackageDelivered:
			stats.Delivered++
		case PackageFailed:
			stats.Failed++
		case PackageScanned:
			stats.Scanned++
		default:
			stats.Pending++
		}
	}
	return stats
}
