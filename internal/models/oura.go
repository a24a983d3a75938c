package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Date — календарная дата без времени в формате Oura API ("YYYY-MM-DD").
// Отдельный тип нужен, потому что стандартный time.Time не принимает
// дату без временной зоны при декодировании JSON.
type Date struct {
	time.Time
}

// UnmarshalJSON декодирует дату из "YYYY-MM-DD"; пустая строка и null
// дают нулевое значение.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("models: invalid date %q: %w", s, err)
	}

	d.Time = t
	return nil
}

// MarshalJSON кодирует дату обратно в "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte(`null`), nil
	}

	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

// PersonalInfo — профиль пользователя (одна запись, обновляется при каждом проходе).
type PersonalInfo struct {
	ID            string  `json:"id"`
	Email         string  `json:"email"`
	Age           int     `json:"age"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	BiologicalSex string  `json:"biological_sex"`
}

// DailyActivity — суточная активность.
type DailyActivity struct {
	ID                        string          `json:"id"`
	Day                       Date            `json:"day"`
	Score                     int             `json:"score"`
	ActiveCalories            int             `json:"active_calories"`
	AverageMETMinutes         float64         `json:"average_met_minutes"`
	Contributors              json.RawMessage `json:"contributors"`
	EquivalentWalkingDistance int             `json:"equivalent_walking_distance"`
	HighActivityMETMinutes    int             `json:"high_activity_met_minutes"`
	HighActivityTime          int             `json:"high_activity_time"`
	InactivityAlerts          int             `json:"inactivity_alerts"`
	LowActivityMETMinutes     int             `json:"low_activity_met_minutes"`
	LowActivityTime           int             `json:"low_activity_time"`
	MediumActivityMETMinutes  int             `json:"medium_activity_met_minutes"`
	MediumActivityTime        int             `json:"medium_activity_time"`
	MET                       json.RawMessage `json:"met"`
	MetersToTarget            int             `json:"meters_to_target"`
	NonWearTime               int             `json:"non_wear_time"`
	RestingTime               int             `json:"resting_time"`
	SedentaryMETMinutes       int             `json:"sedentary_met_minutes"`
	SedentaryTime             int             `json:"sedentary_time"`
	Steps                     int             `json:"steps"`
	TargetCalories            int             `json:"target_calories"`
	TargetMeters              int             `json:"target_meters"`
	TotalCalories             int             `json:"total_calories"`
	Class5Min                 string          `json:"class_5_min"`
	Timestamp                 time.Time       `json:"timestamp"`
}

// DailySleep — суточная оценка сна.
type DailySleep struct {
	ID           string          `json:"id"`
	Day          Date            `json:"day"`
	Score        int             `json:"score"`
	Contributors json.RawMessage `json:"contributors"`
	Timestamp    time.Time       `json:"timestamp"`
}

// DailyReadiness — суточная готовность.
type DailyReadiness struct {
	ID                        string          `json:"id"`
	Day                       Date            `json:"day"`
	Score                     int             `json:"score"`
	Contributors              json.RawMessage `json:"contributors"`
	TemperatureDeviation      float64         `json:"temperature_deviation"`
	TemperatureTrendDeviation float64         `json:"temperature_trend_deviation"`
	Timestamp                 time.Time       `json:"timestamp"`
}

// DailyStress — суточный стресс/восстановление (секунды).
type DailyStress struct {
	ID           string `json:"id"`
	Day          Date   `json:"day"`
	StressHigh   int    `json:"stress_high"`
	RecoveryHigh int    `json:"recovery_high"`
	DaySummary   string `json:"day_summary"`
}

// DailySpO2 — суточная сатурация крови.
type DailySpO2 struct {
	ID                        string          `json:"id"`
	Day                       Date            `json:"day"`
	SpO2Percentage            json.RawMessage `json:"spo2_percentage"`
	BreathingDisturbanceIndex float64         `json:"breathing_disturbance_index"`
}

// CardiovascularAge — «сосудистый возраст»; ключ — день, id может отсутствовать.
type CardiovascularAge struct {
	ID          string `json:"id"`
	Day         Date   `json:"day"`
	VascularAge int    `json:"vascular_age"`
}

// Resilience — суточная устойчивость к стрессу.
type Resilience struct {
	ID           string          `json:"id"`
	Day          Date            `json:"day"`
	Level        string          `json:"level"`
	Contributors json.RawMessage `json:"contributors"`
}

// Sleep — детальный период сна (длительности в секундах).
type Sleep struct {
	ID                    string          `json:"id"`
	Day                   Date            `json:"day"`
	BedtimeStart          time.Time       `json:"bedtime_start"`
	BedtimeEnd            time.Time       `json:"bedtime_end"`
	AverageBreath         float64         `json:"average_breath"`
	AverageHeartRate      float64         `json:"average_heart_rate"`
	AverageHRV            int             `json:"average_hrv"`
	AwakeTime             int             `json:"awake_time"`
	DeepSleepDuration     int             `json:"deep_sleep_duration"`
	Efficiency            int             `json:"efficiency"`
	HeartRate             json.RawMessage `json:"heart_rate"`
	HRV                   json.RawMessage `json:"hrv"`
	Latency               int             `json:"latency"`
	LightSleepDuration    int             `json:"light_sleep_duration"`
	LowBatteryAlert       bool            `json:"low_battery_alert"`
	LowestHeartRate       int             `json:"lowest_heart_rate"`
	Movement30Sec         string          `json:"movement_30_sec"`
	Period                int             `json:"period"`
	Readiness             json.RawMessage `json:"readiness"`
	ReadinessScoreDelta   int             `json:"readiness_score_delta"`
	REMSleepDuration      int             `json:"rem_sleep_duration"`
	RestlessPeriods       int             `json:"restless_periods"`
	SleepPhase5Min        string          `json:"sleep_phase_5_min"`
	SleepScoreDelta       int             `json:"sleep_score_delta"`
	SleepAlgorithmVersion string          `json:"sleep_algorithm_version"`
	TimeInBed             int             `json:"time_in_bed"`
	TotalSleepDuration    int             `json:"total_sleep_duration"`
	Type                  string          `json:"type"`
	RingID                string          `json:"ring_id"`
	SleepAnalysisReason   string          `json:"sleep_analysis_reason"`
}

// SleepTime — рекомендация оптимального времени отхода ко сну.
type SleepTime struct {
	ID             string          `json:"id"`
	Day            Date            `json:"day"`
	OptimalBedtime json.RawMessage `json:"optimal_bedtime"`
	Recommendation string          `json:"recommendation"`
	Status         string          `json:"status"`
}

// HeartRate — точка пульса (5-минутные интервалы); естественный ключ — timestamp.
type HeartRate struct {
	Timestamp time.Time `json:"timestamp"`
	BPM       int       `json:"bpm"`
	Source    string    `json:"source"`
}

// VO2Max — оценка VO2 max.
type VO2Max struct {
	ID        string    `json:"id"`
	Day       Date      `json:"day"`
	VO2Max    float64   `json:"vo2_max"`
	Timestamp time.Time `json:"timestamp"`
}

// Workout — тренировка.
type Workout struct {
	ID            string    `json:"id"`
	Day           Date      `json:"day"`
	Activity      string    `json:"activity"`
	Calories      float64   `json:"calories"`
	Distance      float64   `json:"distance"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
	Intensity     string    `json:"intensity"`
	Label         string    `json:"label"`
	Source        string    `json:"source"`
}

// Session — сессия медитации/дыхания/дневного сна.
type Session struct {
	ID            string          `json:"id"`
	Day           Date            `json:"day"`
	StartDatetime time.Time       `json:"start_datetime"`
	EndDatetime   time.Time       `json:"end_datetime"`
	Type          string          `json:"type"`
	Mood          string          `json:"mood"`
	HeartRate     json.RawMessage `json:"heart_rate"`
	HRV           json.RawMessage `json:"hrv"`
	MotionCount   json.RawMessage `json:"motion_count"`
}

// EnhancedTag — пользовательская метка.
type EnhancedTag struct {
	ID          string     `json:"id"`
	TagTypeCode string     `json:"tag_type_code"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	StartDay    Date       `json:"start_day"`
	EndDay      Date       `json:"end_day"`
	Comment     string     `json:"comment"`
}

// RingConfiguration — конфигурация кольца.
type RingConfiguration struct {
	ID              string     `json:"id"`
	Color           string     `json:"color"`
	Design          string     `json:"design"`
	FirmwareVersion string     `json:"firmware_version"`
	HardwareType    string     `json:"hardware_type"`
	SetUpAt         *time.Time `json:"set_up_at"`
	Size            int        `json:"size"`
}

// RestModePeriod — период «режима отдыха».
type RestModePeriod struct {
	ID        string          `json:"id"`
	StartDay  Date            `json:"start_day"`
	EndDay    Date            `json:"end_day"`
	StartTime time.Time       `json:"start_time"`
	EndTime   *time.Time      `json:"end_time"`
	Episodes  json.RawMessage `json:"episodes"`
}
