package vm

import "testing"

var benchSink Value

func BenchmarkFromDouble(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = FromDouble(3.14159)
	}
}

func BenchmarkDoubleRoundTrip(b *testing.B) {
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = FromDouble(float64(i)).Double()
	}
	_ = sink
}

func BenchmarkFromInt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = FromInt(int32(i))
	}
}

func BenchmarkAddIntInt(b *testing.B) {
	lhs, rhs := FromInt(40), FromInt(2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = Add(lhs, rhs)
	}
}

func BenchmarkAddIntDouble(b *testing.B) {
	lhs, rhs := FromInt(40), FromDouble(2.5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = Add(lhs, rhs)
	}
}

func BenchmarkAddNonNumeric(b *testing.B) {
	lhs, rhs := Null, FromInt(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = Add(lhs, rhs)
	}
}

func BenchmarkVisitInt(b *testing.B) {
	v := FromInt(7)
	var total int32
	vis := Visitor{Int: func(n int32) { total += n }}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Visit(vis)
	}
	_ = total
}
