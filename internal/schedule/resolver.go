package schedule

import (
	"time"

	"github.com/skylt-tv/signage-manager/backend/internal/domain"
)

// CurrentDaySlot 把时间点换算到固定时区下的 (星期, 槽位)：
// 星期以周一为 1，槽位是把当天时间向下取整到半点得到的。
func CurrentDaySlot(now time.Time, loc *time.Location) (Weekday, int32) {
	local := now.In(loc)

	day := Weekday(local.Weekday())
	if local.Weekday() == time.Sunday {
		day = Sunday
	}

	slot := int32(local.Hour()) * 2
	if local.Minute() >= 30 {
		slot++
	}

	return day, slot
}

// ResolveActive 返回当前时间点应该播放的排播，没有则返回 nil。
// 按不变量，同一天的有效排播两两不重叠，最多只会有一条命中；如果
// 数据被并发写入破坏出现了重叠，这里确定性地返回遍历顺序中的第一条
// ——这是有意保留的既定行为，不做静默修复。
func ResolveActive(now time.Time, loc *time.Location, entries []*domain.Schedule) *domain.Schedule {
	day, slot := CurrentDaySlot(now, loc)

	for _, entry := range entries {
		if entry.DayOfWeek != int32(day) {
			continue
		}
		if !entry.IsActive {
			continue
		}
		if slot >= entry.StartSlot && slot < entry.EndSlot {
			return entry
		}
	}

	return nil
}
