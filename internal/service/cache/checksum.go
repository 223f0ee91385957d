package cache

import (
	"sort"
	"strings"

	"github.com/NexusAndromeda/route-optimiser-pwa-sub000/internal/entities"
	"github.com/cespare/xxhash/v2"
)

// Checksum хеш по упорядоченному множеству identity+status пакетов.
// Ловит частичную запись и внешнюю порчу кеша, криптографии тут нет.
func Checksum(packages []entities.Package) uint64 {
	pairs := make([]string, 0, len(packages))
	for _, pkg := range packages {
		pairs = append(pairs, pkg.InternalID+"="+pkg.Status.String())
	}
	sort.Strings(pairs)
	return xxhash.Sum64String(strings.Join(pairs, "\n"))
}
