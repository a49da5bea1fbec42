package schedule

import (
	"errors"
	"fmt"
)

// 一天被固定切分为 48 个半小时槽位，所有餐厅共用同一个网格。
const SlotsPerDay = 48

// Weekday 是以周一为第一天的星期序数，1 = 周一，7 = 周日。
type Weekday int32

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) Label() string {
	if !w.Valid() {
		return ""
	}
	return weekdayLabels[w-1]
}

// SlotLabel 返回槽位对应的 HH:MM 标签，例如 0 -> "00:00"，1 -> "00:30"。
// 槽位不在 [0,47] 范围内时返回空字符串。
func SlotLabel(slot int32) string {
	if slot < 0 || slot >= SlotsPerDay {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", slot/2, (slot%2)*30)
}

// LabelToSlot 是 SlotLabel 的逆运算，标签必须是零填充的 HH:MM 且恰好落在半点上。
// 四个数字位逐一检查，空格或正负号都不接受。
func LabelToSlot(label string) (int32, bool) {
	if len(label) != 5 || label[2] != ':' {
		return 0, false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if label[i] < '0' || label[i] > '9' {
			return 0, false
		}
	}

	hour := int32(label[0]-'0')*10 + int32(label[1]-'0')
	minute := int32(label[3]-'0')*10 + int32(label[4]-'0')
	if hour > 23 {
		return 0, false
	}
	if minute != 0 && minute != 30 {
		return 0, false
	}

	return hour*2 + minute/30, true
}

var (
	// S001/S002 与前端展示的错误码保持一致
	ErrSlotConflict = errors.New("S001: 时段冲突，所选时间范围内已经安排了其他视频")
	ErrInvalidRange = errors.New("S002: 无效的时间范围")
)

// ValidateRange 检查一条排播的基本不变量：星期合法，槽位都落在 [0,47]，
// 且区间 [start, end) 非空。
func ValidateRange(day Weekday, startSlot, endSlot int32) error {
	if !day.Valid() {
		return ErrInvalidRange
	}
	if startSlot < 0 || startSlot >= SlotsPerDay {
		return ErrInvalidRange
	}
	if endSlot < 0 || endSlot >= SlotsPerDay {
		return ErrInvalidRange
	}
	if startSlot >= endSlot {
		return ErrInvalidRange
	}
	return nil
}
