package schedule

import (
	"github.com/skylt-tv/signage-manager/backend/internal/domain"
)

// HasConflict 判断候选区间 [startSlot, endSlot) 是否与 entries 中同一天的
// 已有排播重叠。判定用标准的半开区间相交测试 max(s,s') < min(e,e')，
// 所以首尾相接（前一条的 EndSlot 等于后一条的 StartSlot）不算冲突。
// 每天最多只有 48 个互不重叠的区间，线性扫描足够了。
func HasConflict(day Weekday, startSlot, endSlot int32, entries []*domain.Schedule) bool {
	for _, entry := range entries {
		if entry.DayOfWeek != int32(day) {
			continue
		}
		if !entry.IsActive {
			continue
		}
		if max(startSlot, entry.StartSlot) < min(endSlot, entry.EndSlot) {
			return true
		}
	}
	return false
}
