package schedule

import "time"

// Clock 抽象“当前时间”，方便在测试中注入假时间。
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (c RealClock) Now() time.Time {
	return time.Now()
}

// MockClock 用于测试特定场景，例如“假装现在是周五 23:59”。
type MockClock struct {
	MockTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.MockTime
}
