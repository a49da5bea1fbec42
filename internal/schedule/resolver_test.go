package schedule

import (
	"testing"
	"time"

	"github.com/skylt-tv/signage-manager/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentDaySlot(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		wantDay  Weekday
		wantSlot int32
	}{
		// 2025-01-06 是周一
		{"周一零点", time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), Monday, 0},
		{"向下取整到整点", time.Date(2025, 1, 6, 10, 29, 59, 0, time.UTC), Monday, 20},
		{"半点边界", time.Date(2025, 1, 6, 10, 30, 0, 0, time.UTC), Monday, 21},
		{"当天最后一个槽位", time.Date(2025, 1, 6, 23, 59, 59, 0, time.UTC), Monday, 47},
		{"周日映射为 7", time.Date(2025, 1, 12, 12, 0, 0, 0, time.UTC), Sunday, 24},
		{"周六", time.Date(2025, 1, 11, 8, 45, 0, 0, time.UTC), Saturday, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, slot := CurrentDaySlot(tt.now, time.UTC)
			assert.Equal(t, tt.wantDay, day)
			assert.Equal(t, tt.wantSlot, slot)
		})
	}
}

func TestCurrentDaySlotConvertsTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Stockholm")
	require.NoError(t, err)

	// 2025-01-06 23:30 UTC 在斯德哥尔摩（UTC+1）已经是周二 00:30
	day, slot := CurrentDaySlot(time.Date(2025, 1, 6, 23, 30, 0, 0, time.UTC), loc)
	assert.Equal(t, Tuesday, day)
	assert.Equal(t, int32(1), slot)
}

func TestResolveActive(t *testing.T) {
	entries := []*domain.Schedule{
		entry(Monday, 32, 36),  // 周一 16:00-18:00
		entry(Tuesday, 20, 24), // 周二 10:00-12:00
	}
	entries[0].VideoName = "lunchmeny.mp4"
	entries[1].VideoName = "frukost.mp4"

	clock := MockClock{MockTime: time.Date(2025, 1, 6, 17, 15, 0, 0, time.UTC)}
	got := ResolveActive(clock.Now(), time.UTC, entries)
	require.NotNil(t, got)
	assert.Equal(t, "lunchmeny.mp4", got.VideoName)

	// 区间右端是开的：18:00 已经不在 [16:00, 18:00) 内
	got = ResolveActive(time.Date(2025, 1, 6, 18, 0, 0, 0, time.UTC), time.UTC, entries)
	assert.Nil(t, got)

	// 没有覆盖当前槽位的排播
	got = ResolveActive(time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC), time.UTC, entries)
	assert.Nil(t, got)

	// 停用的排播不参与播放
	entries[0].IsActive = false
	got = ResolveActive(clock.Now(), time.UTC, entries)
	assert.Nil(t, got)
}

func TestResolveActiveReturnsFirstOnOverlap(t *testing.T) {
	// 不变量被并发写入破坏时，确定性地返回遍历顺序中的第一条
	first := entry(Monday, 32, 36)
	first.VideoName = "dagens_ratt.mp4"
	second := entry(Monday, 30, 40)
	second.VideoName = "dessertmeny.mp4"

	got := ResolveActive(time.Date(2025, 1, 6, 16, 30, 0, 0, time.UTC), time.UTC, []*domain.Schedule{first, second})
	require.NotNil(t, got)
	assert.Equal(t, "dagens_ratt.mp4", got.VideoName)
}
