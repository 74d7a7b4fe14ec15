package rules

import (
	"style-checker/internal/codefile"
)

// Kind 규칙 종류
type Kind int

const (
	KindLineLength Kind = iota
	KindFileLength
	KindRequireHeaderComment
)

// 규칙 ID. 설정과 리포트에서 사용하는 고정 문자열이다.
const (
	IDLineLength           = "lineLength"
	IDFileLength           = "fileLength"
	IDRequireHeaderComment = "requireHeaderComment"
)

func (k Kind) String() string {
	switch k {
	case KindLineLength:
		return IDLineLength
	case KindFileLength:
		return IDFileLength
	case KindRequireHeaderComment:
		return IDRequireHeaderComment
	default:
		return "unknown"
	}
}

// ParseKind ID 문자열을 Kind로 변환
func ParseKind(id string) (Kind, bool) {
	switch id {
	case IDLineLength:
		return KindLineLength, true
	case IDFileLength:
		return KindFileLength, true
	case IDRequireHeaderComment:
		return KindRequireHeaderComment, true
	default:
		return 0, false
	}
}

// Rule 규칙 인터페이스
type Rule interface {
	Kind() Kind
	ID() string
	Description() string
	Criterion() string
	Metric(file *codefile.CodeFile) Value
	Compare(result, threshold Value) bool
}

// New Kind에 해당하는 규칙 생성
func New(kind Kind) Rule {
	switch kind {
	case KindLineLength:
		return NewLineLengthRule()
	case KindFileLength:
		return NewFileLengthRule()
	case KindRequireHeaderComment:
		return NewHeaderCommentRule()
	default:
		return nil
	}
}

// Lookup ID로 규칙 조회. 등록되지 않은 ID는 false.
func Lookup(id string) (Rule, bool) {
	kind, ok := ParseKind(id)
	if !ok {
		return nil, false
	}
	return New(kind), true
}

// All 등록된 모든 규칙 (선언 순서)
func All() []Rule {
	return []Rule{
		New(KindLineLength),
		New(KindFileLength),
		New(KindRequireHeaderComment),
	}
}
