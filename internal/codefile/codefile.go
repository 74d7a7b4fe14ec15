package codefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ErrLoad 파일 로드 실패
var ErrLoad = errors.New("파일 로드 실패")

// CodeFile 검사 대상 파일. 로드 이후에는 읽기 전용이다.
type CodeFile struct {
	Filename string
	Content  string
	Language string
}

// Load 파일 전체를 한 번만 읽어 CodeFile 생성
func Load(filename string) (*CodeFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	return New(filename, string(data)), nil
}

// New 이미 읽은 내용으로 CodeFile 생성
func New(filename, content string) *CodeFile {
	return &CodeFile{
		Filename: filename,
		Content:  content,
		Language: detectLanguage(filename),
	}
}

// detectLanguage 마지막 '.' 뒤의 확장자를 언어로 사용
func detectLanguage(filename string) string {
	base := filepath.Base(filename)
	idx := strings.LastIndex(base, ".")
	if idx < 0 {
		return ""
	}
	return base[idx+1:]
}

// lines 개행 기준 분할. 마지막 개행 뒤의 빈 줄도 포함된다.
func (f *CodeFile) lines() []string {
	return strings.Split(f.Content, "\n")
}

// MaxLineLength 가장 긴 줄의 길이(문자 수)
func (f *CodeFile) MaxLineLength() int {
	longest := 0
	for _, line := range f.lines() {
		if n := utf8.RuneCountInString(line); n > longest {
			longest = n
		}
	}
	return longest
}

// LineCount 개행으로 분할한 줄 수
func (f *CodeFile) LineCount() int {
	return len(f.lines())
}

// HasHeaderComment 헤더 주석 여부. 주석 탐지는 구현하지 않으며 항상 false.
func (f *CodeFile) HasHeaderComment() bool {
	return false
}
