package create_booking

import (
	"strconv"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SelectSlot выбирает слот для нового бронирования
// Если в предпочитаемой зоне есть подходящий слот, берется слот с наименьшим id в этой зоне.
// Иначе берется слот с наименьшим id по всей парковке.
// Слоты на обслуживании, зарезервированные и занятые никогда не выбираются.
func SelectSlot(snapshot []domain.Slot, zone string) (*domain.Slot, bool) {
	var best, bestInZone *domain.Slot

	for i := range snapshot {
		s := &snapshot[i]
		if !s.IsAllocatable() {
			continue
		}
		if best == nil || lessSlotID(s.ID, best.ID) {
			best = s
		}
		if zone != "" && s.Zone == zone && (bestInZone == nil || lessSlotID(s.ID, bestInZone.ID)) {
			bestInZone = s
		}
	}

	if bestInZone != nil {
		return bestInZone, true
	}
	return best, best != nil
}

// lessSlotID сравнивает id вида P007 и P100 по числовой части, если префиксы совпадают
func lessSlotID(a, b string) bool {
	pa, na, okA := splitSlotID(a)
	pb, nb, okB := splitSlotID(b)
	if okA && okB && pa == pb && na != nb {
		return na < nb
	}
	return a < b
}

func splitSlotID(id string) (string, int, bool) {
	i := len(id)
	for i > 0 && id[i-1] >= '0' && id[i-1] <= '9' {
		i--
	}
	if i == len(id) {
		return id, 0, false
	}
	n, err := strconv.Atoi(id[i:])
	if err != nil {
		return id, 0, false
	}
	return id[:i], n, true
}
