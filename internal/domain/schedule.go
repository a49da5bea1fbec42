package domain

import (
	"fmt"
	"time"
)

// Schedule 表示某个餐厅在一周中的某一天里的一段排播：
// [StartSlot, EndSlot) 是半小时槽位的左闭右开区间，一天共 48 个槽位。
type Schedule struct {
	ID           int64     `json:"id"`
	RestaurantID int64     `json:"restaurantId"`
	DayOfWeek    int32     `json:"dayOfWeek"` // 1 = 周一，7 = 周日
	StartSlot    int32     `json:"startSlot"`
	EndSlot      int32     `json:"endSlot"`
	VideoName    string    `json:"videoName"`
	VideoURL     string    `json:"videoUrl"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DataLossError 表示保存排班时“先删除后插入”的第二步失败了。
// 此时数据库中该餐厅的排班已经被删除但没有全部写回，必须明确告知
// 调用方数据可能已丢失，需要重新保存，而不能当作普通的保存失败。
type DataLossError struct {
	RestaurantID int64
	Err          error
}

func (e *DataLossError) Error() string {
	return fmt.Sprintf("保存排班失败：原有排班已被删除，但新排班未能全部写入，当前排班数据可能已被清空，请重新保存（原因：%v）", e.Err)
}

func (e *DataLossError) Unwrap() error {
	return e.Err
}
