package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"style-checker/internal/analyzer"
	"style-checker/internal/config"
	"style-checker/internal/reporter"
	"style-checker/internal/rules"
)

// ErrUsage 검사할 파일이 지정되지 않음
var ErrUsage = errors.New("usage: stylecheck <file_to_check>")

const envPrefix = "STYLECHECK"

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "stylecheck <file_to_check>",
		Short: "Style Checker - 소스 파일 스타일 검사 도구",
		Long: `Style Checker

소스 파일 하나에 대해 줄 길이, 파일 길이, 헤더 주석 규칙을 검사하고 점수를 출력합니다.

종료 코드:
  0   - 모든 검사 통과
  1   - 하나 이상의 검사 실패
  255 - 사용법 오류 또는 파일 로드 실패

사용 예시:
  stylecheck main.py                  # 기본 규칙으로 검사
  stylecheck main.py --output=json    # JSON 리포트
  stylecheck --list-rules             # 규칙 목록`,
		Version:       Version,
		Args:          requireTarget(v),
		RunE:          func(cmd *cobra.Command, args []string) error { return runCheck(cmd, v, args) },
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// 플래그 설정
	cmd.Flags().StringP("config", "c", "", "설정 파일 경로")
	cmd.Flags().StringP("output", "o", "console", "출력 형식 ("+strings.Join(reporter.Formats(), "/")+")")
	cmd.Flags().Bool("no-color", false, "색상 출력 끄기")
	cmd.Flags().BoolP("verbose", "v", false, "상세 출력")
	cmd.Flags().Bool("list-rules", false, "등록된 규칙 목록 출력")

	// STYLECHECK_OUTPUT 등 환경 변수로 플래그 기본값 대체
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(cmd.Flags())

	return cmd
}

func requireTarget(v *viper.Viper) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && !v.GetBool("list-rules") {
			return ErrUsage
		}
		return nil
	}
}

func runCheck(cmd *cobra.Command, v *viper.Viper, args []string) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	if v.GetBool("no-color") {
		color.NoColor = true
	}

	if v.GetBool("list-rules") {
		return listRules(out)
	}

	format := v.GetString("output")
	rep, err := reporter.New(format)
	if err != nil {
		return err
	}
	if _, console := rep.(*reporter.ConsoleReporter); !console {
		color.NoColor = true
	}

	logger := log.New(io.Discard, "", 0)
	if v.GetBool("verbose") {
		logger = log.New(errOut, "stylecheck: ", 0)
		logger.Printf("대상 경로: %s", args[0])
		logger.Printf("출력 형식: %s", format)
	}

	cfg := config.Load(v.GetString("config"), errOut)

	passed, err := analyzer.New(cfg, logger).Run(args[0], rep, out)
	if err != nil {
		return err
	}
	if !passed {
		return &ExitError{Code: ExitFailed}
	}
	return nil
}

func listRules(w io.Writer) error {
	defaults := make(map[string]string)
	for s := range config.Default().Options() {
		defaults[s.ID] = s.Threshold.String()
	}

	for _, r := range rules.All() {
		if _, err := fmt.Fprintf(w, "%-22s %-38s default=%s\n", r.ID(), r.Description(), defaults[r.ID()]); err != nil {
			return err
		}
	}
	return nil
}
