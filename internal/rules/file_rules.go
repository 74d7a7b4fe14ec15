package rules

import (
	"style-checker/internal/codefile"
)

// LineLengthRule 줄 길이 검사. 가장 긴 줄이 임계값보다 짧아야 통과.
type LineLengthRule struct{}

func NewLineLengthRule() Rule {
	return &LineLengthRule{}
}

func (r *LineLengthRule) Kind() Kind          { return KindLineLength }
func (r *LineLengthRule) ID() string          { return IDLineLength }
func (r *LineLengthRule) Description() string { return "Lines should not be too wide" }
func (r *LineLengthRule) Criterion() string   { return "max line length" }

func (r *LineLengthRule) Metric(file *codefile.CodeFile) Value {
	return Int(file.MaxLineLength())
}

func (r *LineLengthRule) Compare(result, threshold Value) bool {
	got, ok1 := result.AsInt()
	limit, ok2 := threshold.AsInt()
	return ok1 && ok2 && got < limit
}

// FileLengthRule 파일 길이 검사. 줄 수가 임계값 이하이면 통과.
type FileLengthRule struct{}

func NewFileLengthRule() Rule {
	return &FileLengthRule{}
}

func (r *FileLengthRule) Kind() Kind          { return KindFileLength }
func (r *FileLengthRule) ID() string          { return IDFileLength }
func (r *FileLengthRule) Description() string { return "File should not have too many lines" }
func (r *FileLengthRule) Criterion() string   { return "line count" }

func (r *FileLengthRule) Metric(file *codefile.CodeFile) Value {
	return Int(file.LineCount())
}

func (r *FileLengthRule) Compare(result, threshold Value) bool {
	got, ok1 := result.AsInt()
	limit, ok2 := threshold.AsInt()
	return ok1 && ok2 && got <= limit
}

// HeaderCommentRule 헤더 주석 검사
type HeaderCommentRule struct{}

func NewHeaderCommentRule() Rule {
	return &HeaderCommentRule{}
}

func (r *HeaderCommentRule) Kind() Kind          { return KindRequireHeaderComment }
func (r *HeaderCommentRule) ID() string          { return IDRequireHeaderComment }
func (r *HeaderCommentRule) Description() string { return "File should start with a comment" }
func (r *HeaderCommentRule) Criterion() string   { return "header comment" }

func (r *HeaderCommentRule) Metric(file *codefile.CodeFile) Value {
	return Bool(file.HasHeaderComment())
}

func (r *HeaderCommentRule) Compare(result, threshold Value) bool {
	got, ok1 := result.AsBool()
	want, ok2 := threshold.AsBool()
	return ok1 && ok2 && got == want
}
