package checker

import (
	"style-checker/internal/codefile"
	"style-checker/internal/reporter"
	"style-checker/internal/rules"
	"style-checker/internal/types"
)

// Check 규칙 하나를 파일과 임계값에 묶은 검사
type Check struct {
	rule      rules.Rule
	codefile  *codefile.CodeFile
	Threshold rules.Value

	Result   rules.Value
	Passed   bool
	Executed bool
}

// NewCheck 새로운 검사 생성
func NewCheck(rule rules.Rule, file *codefile.CodeFile, threshold rules.Value) *Check {
	return &Check{
		rule:      rule,
		codefile:  file,
		Threshold: threshold,
	}
}

func (c *Check) RuleID() string      { return c.rule.ID() }
func (c *Check) Description() string { return c.rule.Description() }

// Execute 측정값을 계산하고 임계값과 비교
func (c *Check) Execute() {
	c.Result = c.rule.Metric(c.codefile)
	c.Passed = c.rule.Compare(c.Result, c.Threshold)
	c.Executed = true
}

// Snapshot 리포트용 결과
func (c *Check) Snapshot() types.CheckResult {
	return types.CheckResult{
		RuleID:      c.rule.ID(),
		Description: c.rule.Description(),
		Criterion:   c.rule.Criterion(),
		Threshold:   c.Threshold.Interface(),
		Result:      c.Result.Interface(),
		Passed:      c.Passed,
	}
}

// Render 콘솔 리포트의 한 줄
func (c *Check) Render() string {
	return reporter.FormatCheckLine(c.Snapshot())
}
