package types

import (
	"time"
)

// CheckResult 개별 검사 결과
type CheckResult struct {
	RuleID      string      `json:"rule_id" yaml:"rule_id" toml:"rule_id"`
	Description string      `json:"description" yaml:"description" toml:"description"`
	Criterion   string      `json:"criterion" yaml:"criterion" toml:"criterion"`
	Threshold   interface{} `json:"threshold" yaml:"threshold" toml:"threshold"`
	Result      interface{} `json:"result" yaml:"result" toml:"result"`
	Passed      bool        `json:"passed" yaml:"passed" toml:"passed"`
}

// Summary 검사 요약 정보
type Summary struct {
	Total     int     `json:"total" yaml:"total" toml:"total"`
	Passed    int     `json:"passed" yaml:"passed" toml:"passed"`
	Failed    int     `json:"failed" yaml:"failed" toml:"failed"`
	Score     float64 `json:"score" yaml:"score" toml:"score"`
	PassedAll bool    `json:"passed_all" yaml:"passed_all" toml:"passed_all"`
}

// Report 한 번의 실행 결과
type Report struct {
	File      string        `json:"file" yaml:"file" toml:"file"`
	Language  string        `json:"language" yaml:"language" toml:"language"`
	Checks    []CheckResult `json:"checks" yaml:"checks" toml:"checks"`
	Summary   Summary       `json:"summary" yaml:"summary" toml:"summary"`
	StartTime time.Time     `json:"start_time" yaml:"start_time" toml:"start_time"`
	EndTime   time.Time     `json:"end_time" yaml:"end_time" toml:"end_time"`
}

// Duration 실행 시간
func (r *Report) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}
