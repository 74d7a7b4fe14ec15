package checker

import (
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"style-checker/internal/codefile"
	"style-checker/internal/config"
	"style-checker/internal/reporter"
	"style-checker/internal/rules"
	"style-checker/internal/types"
)

var (
	// ErrNotConfigured SetChecks 이전에 CheckAll 호출
	ErrNotConfigured = errors.New("검사가 설정되지 않았습니다")
	// ErrNotExecuted CheckAll 이전에 결과 출력 시도
	ErrNotExecuted = errors.New("검사가 실행되지 않았습니다")
)

// State 검사기 진행 상태
type State int

const (
	StateUnconfigured State = iota
	StateConfigured
	StateExecuted
	StateReported
)

func (s State) String() string {
	switch s {
	case StateUnconfigured:
		return "unconfigured"
	case StateConfigured:
		return "configured"
	case StateExecuted:
		return "executed"
	case StateReported:
		return "reported"
	default:
		return "unknown"
	}
}

// Checker 한 번의 실행에 쓰이는 검사 묶음
type Checker struct {
	config   *config.Config
	codefile *codefile.CodeFile
	logger   *log.Logger

	Checks    []*Check
	PassedAll bool

	state     State
	startTime time.Time
	endTime   time.Time
}

// New 새로운 검사기 생성
func New(cfg *config.Config, file *codefile.CodeFile) *Checker {
	return &Checker{
		config:   cfg,
		codefile: file,
		logger:   log.New(io.Discard, "", 0),
	}
}

// SetLogger 상세 로그 출력 대상 지정
func (c *Checker) SetLogger(l *log.Logger) {
	if l != nil {
		c.logger = l
	}
}

func (c *Checker) State() State { return c.state }

// SetChecks 설정 순서대로 규칙을 파일에 바인딩. 등록되지 않은 규칙은 건너뛴다.
func (c *Checker) SetChecks() {
	c.Checks = nil
	for setting := range c.config.Options() {
		rule, ok := rules.Lookup(setting.ID)
		if !ok {
			c.logger.Printf("알 수 없는 규칙 %q 건너뜀", setting.ID)
			continue
		}
		c.Checks = append(c.Checks, NewCheck(rule, c.codefile, setting.Threshold))
	}
	c.state = StateConfigured
}

// CheckAll 모든 검사 실행. 실패한 검사가 있어도 중단하지 않는다.
func (c *Checker) CheckAll() error {
	if c.state == StateUnconfigured {
		return ErrNotConfigured
	}

	c.startTime = time.Now()
	for _, chk := range c.Checks {
		chk.Execute()
		c.logger.Printf("%s: result=%s threshold=%s passed=%t",
			chk.RuleID(), chk.Result, chk.Threshold, chk.Passed)
	}
	c.endTime = time.Now()

	c.state = StateExecuted
	return nil
}

// Counts 통과한 검사 수와 전체 검사 수
func (c *Checker) Counts() (passed, total int) {
	for _, chk := range c.Checks {
		if chk.Passed {
			passed++
		}
	}
	return passed, len(c.Checks)
}

// Score 통과 비율. 검사가 없으면 1.
func (c *Checker) Score() float64 {
	return reporter.Score(c.Counts())
}

// Report 실행 결과 스냅샷
func (c *Checker) Report() (*types.Report, error) {
	if c.state < StateExecuted {
		return nil, ErrNotExecuted
	}

	passed, total := c.Counts()
	report := &types.Report{
		File:      c.codefile.Filename,
		Language:  c.codefile.Language,
		Checks:    make([]types.CheckResult, 0, total),
		StartTime: c.startTime,
		EndTime:   c.endTime,
		Summary: types.Summary{
			Total:     total,
			Passed:    passed,
			Failed:    total - passed,
			Score:     reporter.Score(passed, total),
			PassedAll: passed == total,
		},
	}
	for _, chk := range c.Checks {
		report.Checks = append(report.Checks, chk.Snapshot())
	}
	return report, nil
}

// PrintResult 결과를 리포터로 출력하고 PassedAll 설정
func (c *Checker) PrintResult(w io.Writer, rep reporter.Reporter) error {
	report, err := c.Report()
	if err != nil {
		return err
	}

	c.PassedAll = report.Summary.PassedAll
	c.state = StateReported

	if err := rep.Generate(report, w); err != nil {
		return fmt.Errorf("리포트 생성 실패: %w", err)
	}
	return nil
}
