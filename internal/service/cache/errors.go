package cache

import "errors"

var ErrNamespaceRequired = errors.New("cache namespace is required")

// Причины инвалидации, попадают в метрику cache_invalidations_total.
const (
	reasonVersion  = "version"
	reasonExpired  = "expired"
	reasonChecksum = "checksum"
	reasonCorrupt  = "corrupt"
	reasonExplicit = "explicit"
)
