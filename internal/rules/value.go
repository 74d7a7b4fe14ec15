package rules

import "strconv"

// ValueType 값 종류
type ValueType int

const (
	IntValue ValueType = iota
	BoolValue
)

// Value 규칙의 측정값 또는 임계값. 정수 또는 불리언 중 하나를 담는다.
type Value struct {
	typ ValueType
	n   int
	b   bool
}

// Int 정수 값 생성
func Int(n int) Value { return Value{typ: IntValue, n: n} }

// Bool 불리언 값 생성
func Bool(b bool) Value { return Value{typ: BoolValue, b: b} }

func (v Value) Type() ValueType { return v.typ }

// AsInt 정수 값과 종류 일치 여부
func (v Value) AsInt() (int, bool) { return v.n, v.typ == IntValue }

// AsBool 불리언 값과 종류 일치 여부
func (v Value) AsBool() (bool, bool) { return v.b, v.typ == BoolValue }

// Interface 직렬화용 원시 값
func (v Value) Interface() interface{} {
	if v.typ == BoolValue {
		return v.b
	}
	return v.n
}

func (v Value) String() string {
	if v.typ == BoolValue {
		return strconv.FormatBool(v.b)
	}
	return strconv.Itoa(v.n)
}
