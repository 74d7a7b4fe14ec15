package config

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"style-checker/internal/rules"
)

// ErrNotImplemented 설정 파일 로드는 지원하지 않는다
var ErrNotImplemented = errors.New("설정 파일 로드는 구현되지 않았습니다")

// 기본 임계값
const (
	DefaultLineLength           = 80
	DefaultFileLength           = 250
	DefaultRequireHeaderComment = true
)

// Source 설정 출처
type Source string

const (
	SourceDefault Source = "default"
	SourceFile    Source = "file"
)

// RuleSetting 개별 규칙 설정
type RuleSetting struct {
	ID        string
	Threshold rules.Value
}

// Config 전체 설정. 규칙 순서가 리포트 순서가 된다.
type Config struct {
	Source   Source
	Settings []RuleSetting
}

// Default 기본 설정 생성
func Default() *Config {
	cfg := &Config{}
	cfg.SetDefault()
	return cfg
}

// SetDefault 설정을 기본값으로 초기화
func (c *Config) SetDefault() {
	c.Source = SourceDefault
	c.Settings = []RuleSetting{
		{ID: rules.IDLineLength, Threshold: rules.Int(DefaultLineLength)},
		{ID: rules.IDFileLength, Threshold: rules.Int(DefaultFileLength)},
		{ID: rules.IDRequireHeaderComment, Threshold: rules.Bool(DefaultRequireHeaderComment)},
	}
}

// Add 규칙 설정 추가
func (c *Config) Add(id string, threshold rules.Value) {
	c.Settings = append(c.Settings, RuleSetting{ID: id, Threshold: threshold})
}

// Options 설정된 규칙을 순서대로 순회
func (c *Config) Options() iter.Seq[RuleSetting] {
	return func(yield func(RuleSetting) bool) {
		for _, s := range c.Settings {
			if !yield(s) {
				return
			}
		}
	}
}

// ReadFromFile 설정 파일 로드. 항상 실패한다.
func ReadFromFile(path string) (*Config, error) {
	return nil, fmt.Errorf("%w: %s", ErrNotImplemented, path)
}

// Load 설정 로드. 파일 로드에 실패하면 경고를 출력하고 기본 설정을 사용한다.
func Load(path string, warn io.Writer) *Config {
	if path == "" {
		return Default()
	}

	cfg, err := ReadFromFile(path)
	if err != nil {
		fmt.Fprintf(warn, "could not read %s. Falling back to default.\n", path)
		return Default()
	}
	return cfg
}
