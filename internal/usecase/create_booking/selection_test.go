package create_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func TestSelectSlot(t *testing.T) {
	occupied := domain.Slot{ID: "P001", Zone: "Zone-A", RawStatus: domain.RawStatusOccupied}
	reserved := domain.Slot{ID: "P002", Zone: "Zone-A", RawStatus: domain.RawStatusAvailable, IsReserved: true}
	maintenance := domain.Slot{ID: "P003", Zone: "Zone-A", RawStatus: domain.RawStatusAvailable, Maintenance: true}
	freeA := domain.Slot{ID: "P004", Zone: "Zone-A", RawStatus: domain.RawStatusAvailable}
	freeB := domain.Slot{ID: "P030", Zone: "Zone-B", RawStatus: domain.RawStatusAvailable}
	freeB2 := domain.Slot{ID: "P027", Zone: "Zone-B", RawStatus: domain.RawStatusAvailable}

	tests := []struct {
		name     string
		snapshot []domain.Slot
		zone     string
		expected string
		found    bool
	}{
		{
			name:     "smallest eligible id overall",
			snapshot: []domain.Slot{freeB, occupied, reserved, maintenance, freeA},
			expected: "P004",
			found:    true,
		},
		{
			name:     "preferred zone",
			snapshot: []domain.Slot{freeA, freeB, freeB2},
			zone:     "Zone-B",
			expected: "P027",
			found:    true,
		},
		{
			name:     "preferred zone without eligible slot falls back",
			snapshot: []domain.Slot{freeB, reserved, freeA},
			zone:     "Zone-A",
			expected: "P004",
			found:    true,
		},
		{
			name:     "unknown zone falls back",
			snapshot: []domain.Slot{freeB, freeA},
			zone:     "Zone-Z",
			expected: "P004",
			found:    true,
		},
		{
			name:     "nothing eligible",
			snapshot: []domain.Slot{occupied, reserved, maintenance},
			found:    false,
		},
		{
			name:  "empty snapshot",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, ok := SelectSlot(tt.snapshot, tt.zone)

			require.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, slot.ID)
				assert.True(t, slot.IsAllocatable())
			} else {
				assert.Nil(t, slot)
			}
		})
	}
}

func TestLessSlotID(t *testing.T) {
	assert.True(t, lessSlotID("P007", "P100"))
	assert.True(t, lessSlotID("P99", "P100"))
	assert.False(t, lessSlotID("P100", "P99"))
	assert.True(t, lessSlotID("A1", "B1"))
	assert.True(t, lessSlotID("P", "P1"))
}
