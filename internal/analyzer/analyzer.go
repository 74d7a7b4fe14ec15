package analyzer

import (
	"fmt"
	"io"
	"log"

	"style-checker/internal/checker"
	"style-checker/internal/codefile"
	"style-checker/internal/config"
	"style-checker/internal/reporter"
)

// Analyzer 파일 하나에 대한 검사 실행기
type Analyzer struct {
	config *config.Config
	logger *log.Logger
}

// New 새로운 분석기 생성
func New(cfg *config.Config, logger *log.Logger) *Analyzer {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Analyzer{
		config: cfg,
		logger: logger,
	}
}

// Analyze 파일을 로드하고 모든 검사를 실행
func (a *Analyzer) Analyze(targetPath string) (*checker.Checker, error) {
	file, err := codefile.Load(targetPath)
	if err != nil {
		return nil, err
	}
	a.logger.Printf("대상 파일: %s (language=%q, %d lines)", file.Filename, file.Language, file.LineCount())

	chk := checker.New(a.config, file)
	chk.SetLogger(a.logger)
	chk.SetChecks()

	if err := chk.CheckAll(); err != nil {
		return nil, fmt.Errorf("검사 실행 실패: %w", err)
	}
	return chk, nil
}

// Run 검사 후 결과를 출력하고 전체 통과 여부 반환
func (a *Analyzer) Run(targetPath string, rep reporter.Reporter, w io.Writer) (bool, error) {
	chk, err := a.Analyze(targetPath)
	if err != nil {
		return false, err
	}

	if err := chk.PrintResult(w, rep); err != nil {
		return false, err
	}
	return chk.PassedAll, nil
}
