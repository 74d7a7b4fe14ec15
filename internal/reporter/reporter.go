package reporter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	toml "github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"style-checker/internal/types"
)

// ErrUnsupportedFormat 지원하지 않는 출력 형식
var ErrUnsupportedFormat = errors.New("지원하지 않는 출력 형식")

// 콘솔 리포트 열 너비
const (
	DescriptionWidth = 40
	CriterionWidth   = 37
	ruleWidth        = DescriptionWidth + CriterionWidth + 2
)

var (
	passMark = color.New(color.FgGreen)
	failMark = color.New(color.FgRed)
)

// Reporter 리포터 인터페이스
type Reporter interface {
	Generate(report *types.Report, w io.Writer) error
}

// Formats 지원하는 출력 형식
func Formats() []string {
	return []string{"console", "json", "yaml", "toml"}
}

// New 새로운 리포터 생성
func New(format string) (Reporter, error) {
	switch strings.ToLower(format) {
	case "console", "text":
		return &ConsoleReporter{}, nil
	case "json":
		return &JSONReporter{}, nil
	case "yaml", "yml":
		return &YAMLReporter{}, nil
	case "toml":
		return &TOMLReporter{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// Glyph 통과/실패 표시
func Glyph(passed bool) string {
	if passed {
		return passMark.Sprint("✓")
	}
	return failMark.Sprint("✗")
}

// fit 문자열을 width 문자에 맞게 자르거나 공백으로 채운다
func fit(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		return string([]rune(s)[:width])
	}
	return s + strings.Repeat(" ", width-n)
}

// FormatCheckLine 검사 한 건의 결과 줄
func FormatCheckLine(c types.CheckResult) string {
	criterion := fmt.Sprintf(" - %s : %v", c.Criterion, c.Result)
	return fit(c.Description, DescriptionWidth) + fit(criterion, CriterionWidth) + Glyph(c.Passed)
}

// FormatScore 점수를 X.XX/1.00 형식으로 변환. 검사가 없으면 1.00.
func FormatScore(passed, total int) string {
	return fmt.Sprintf("%.2f/1.00", Score(passed, total))
}

// Score 통과 비율
func Score(passed, total int) float64 {
	if total == 0 {
		return 1
	}
	return float64(passed) / float64(total)
}

// ConsoleReporter 콘솔 출력 리포터
type ConsoleReporter struct{}

func (r *ConsoleReporter) Generate(report *types.Report, w io.Writer) error {
	var output strings.Builder

	output.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	for _, c := range report.Checks {
		output.WriteString(FormatCheckLine(c) + "\n")
	}
	output.WriteString(strings.Repeat("=", ruleWidth) + "\n")

	s := report.Summary
	if s.PassedAll {
		output.WriteString(fmt.Sprintf(" %s %s\n", fit("All passed", ruleWidth-3), Glyph(true)))
	} else {
		output.WriteString(fmt.Sprintf("%s %s\n",
			fit(fmt.Sprintf("Failed %d out of %d tests.", s.Failed, s.Total), ruleWidth-10),
			FormatScore(s.Passed, s.Total)))
	}

	_, err := io.WriteString(w, output.String())
	return err
}

// JSONReporter JSON 출력 리포터
type JSONReporter struct{}

func (r *JSONReporter) Generate(report *types.Report, w io.Writer) error {
	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON 마샬링 실패: %w", err)
	}

	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}

// YAMLReporter YAML 출력 리포터
type YAMLReporter struct{}

func (r *YAMLReporter) Generate(report *types.Report, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("YAML 마샬링 실패: %w", err)
	}
	return enc.Close()
}

// TOMLReporter TOML 출력 리포터
type TOMLReporter struct{}

func (r *TOMLReporter) Generate(report *types.Report, w io.Writer) error {
	checks := make([]map[string]interface{}, 0, len(report.Checks))
	for _, c := range report.Checks {
		checks = append(checks, map[string]interface{}{
			"rule_id":     c.RuleID,
			"description": c.Description,
			"criterion":   c.Criterion,
			"threshold":   c.Threshold,
			"result":      c.Result,
			"passed":      c.Passed,
		})
	}

	doc := map[string]interface{}{
		"file":       report.File,
		"language":   report.Language,
		"start_time": report.StartTime,
		"end_time":   report.EndTime,
		"summary": map[string]interface{}{
			"total":      report.Summary.Total,
			"passed":     report.Summary.Passed,
			"failed":     report.Summary.Failed,
			"score":      report.Summary.Score,
			"passed_all": report.Summary.PassedAll,
		},
	}
	if len(checks) > 0 {
		doc["checks"] = checks
	}

	tree, err := toml.TreeFromMap(doc)
	if err != nil {
		return fmt.Errorf("TOML 변환 실패: %w", err)
	}

	_, err = tree.WriteTo(w)
	return err
}
