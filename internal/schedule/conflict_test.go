package schedule

import (
	"math/rand"
	"testing"

	"github.com/skylt-tv/signage-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func entry(day Weekday, start, end int32) *domain.Schedule {
	return &domain.Schedule{
		DayOfWeek: int32(day),
		StartSlot: start,
		EndSlot:   end,
		VideoName: "lunchmeny.mp4",
		IsActive:  true,
	}
}

func TestHasConflict(t *testing.T) {
	existing := []*domain.Schedule{entry(Monday, 32, 36)} // 周一 16:00-18:00

	// 完全重叠、部分重叠、被包含
	assert.True(t, HasConflict(Monday, 32, 36, existing))
	assert.True(t, HasConflict(Monday, 34, 38, existing))
	assert.True(t, HasConflict(Monday, 30, 34, existing))
	assert.True(t, HasConflict(Monday, 33, 34, existing))

	// 首尾相接不算冲突（半开区间）
	assert.False(t, HasConflict(Monday, 36, 40, existing))
	assert.False(t, HasConflict(Monday, 30, 32, existing))

	// 不同的天互不影响
	assert.False(t, HasConflict(Tuesday, 32, 36, existing))
}

func TestHasConflictIgnoresInactiveEntries(t *testing.T) {
	inactive := entry(Monday, 32, 36)
	inactive.IsActive = false

	assert.False(t, HasConflict(Monday, 32, 36, []*domain.Schedule{inactive}))
}

// 用“槽位集合求交”做参照实现，随机区间对拍半开区间相交测试。
func TestHasConflictMatchesSlotSetOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	randomRange := func() (int32, int32) {
		start := int32(rng.Intn(SlotsPerDay - 1))
		end := start + int32(rng.Intn(int(SlotsPerDay-start-1))) + 1
		return start, end
	}

	for i := 0; i < 1000; i++ {
		s1, e1 := randomRange()
		s2, e2 := randomRange()

		overlap := false
		for slot := s1; slot < e1; slot++ {
			if slot >= s2 && slot < e2 {
				overlap = true
				break
			}
		}

		got := HasConflict(Monday, s1, e1, []*domain.Schedule{entry(Monday, s2, e2)})
		assert.Equal(t, overlap, got, "[%d,%d) vs [%d,%d)", s1, e1, s2, e2)
	}
}
