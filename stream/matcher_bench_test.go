package stream

import (
	"bytes"
	"testing"
)

func benchFind(b *testing.B, input []byte, patterns ...[]byte) {
	b.Helper()
	src := &memSource{data: input}
	s, err := New(src, WithTimeout(0))
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(input)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src.pos = 0
		s.FindMulti(patterns...)
	}
}

func BenchmarkFind_Single(b *testing.B) {
	input := append(bytes.Repeat([]byte("AT+CSQ\r\n+CSQ: 21,99\r\n"), 50), []byte("OK\r\n")...)
	benchFind(b, input, []byte("OK\r\n"))
}

func BenchmarkFind_Repetitive(b *testing.B) {
	input := append(bytes.Repeat([]byte("1"), 1024), '2')
	benchFind(b, input, []byte("1111111112"))
}

func BenchmarkFindMulti_Four(b *testing.B) {
	input := append(bytes.Repeat([]byte("+CREG: 0,2\r\n"), 50), []byte("NO CARRIER\r\n")...)
	benchFind(b, input, []byte("OK\r\n"), []byte("ERROR\r\n"), []byte("BUSY\r\n"), []byte("NO CARRIER\r\n"))
}

func BenchmarkParseInt(b *testing.B) {
	input := []byte("  -1234567890;")
	src := &memSource{data: input}
	s, err := New(src, WithTimeout(0))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src.pos = 0
		_, _ = s.ParseInt()
	}
}
