package main

import (
	"errors"
	"fmt"
	"os"
)

// Version 빌드 시 ldflags로 덮어쓴다
var Version = "0.1"

// 종료 코드
const (
	ExitPassed = 0
	ExitFailed = 1
	ExitFatal  = -1
)

// ExitError 지정된 종료 코드로 끝내기 위한 에러
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintf(os.Stderr, "%s\n", exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "오류 발생: %v\n", err)
		os.Exit(ExitFatal)
	}
}
