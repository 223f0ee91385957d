package entities

// PackagesCache персистируемый снапшот пакетов с производными партициями.
// Партиции пересчитываются при каждом обновлении и никогда не мутируются отдельно.
type PackagesCache struct {
	Version          int                  `json:"version"`
	Packages         []Package            `json:"packages"`
	Singles          []Package            `json:"singles"`
	Groups           map[string][]Package `json:"groups"`
	Problematic      []Package            `json:"problematic"`
	Timestamp        int64                `json:"timestamp"`
	Checksum         uint64               `json:"checksum"`
	OptimizationData *OptimizationData    `json:"optimization_data,omitempty"`
}

type OptimizationData struct {
	OrderedIDs      []string `json:"ordered_ids"`
	TotalDistanceKm float64  `json:"total_distance_km,omitempty"`
	AppliedAt       int64    `json:"applied_at"`
}
