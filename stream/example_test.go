package stream_test

import (
	"fmt"
	"time"

	"github.com/arloliu/go-charstream/source"
	"github.com/arloliu/go-charstream/stream"
)

func Example() {
	src := source.NewBufferString("AT+CSQ\r\n+CSQ: 21,99\r\nOK\r\n")
	s, err := stream.New(src, stream.WithTimeout(10*time.Millisecond))
	if err != nil {
		panic(err)
	}

	if s.FindString("+CSQ: ") {
		rssi, _ := s.ParseInt()
		ber, _ := s.ParseInt()
		fmt.Println(rssi, ber)
	}

	switch s.FindMulti([]byte("OK\r\n"), []byte("ERROR\r\n")) {
	case 0:
		fmt.Println("ok")
	case 1:
		fmt.Println("error")
	default:
		fmt.Println("no response")
	}
	// Output:
	// 21 99
	// ok
}

func ExampleStream_ParseFloat() {
	s, _ := stream.New(source.NewBufferString("temp: 1,024.5 C"), stream.WithTimeout(10*time.Millisecond))

	v, err := s.ParseFloat(stream.WithIgnore(','))
	fmt.Println(v, err)

	_, err = s.ParseFloat(stream.WithLookahead(stream.SkipNone))
	fmt.Println(err)
	// Output:
	// 1024.5 <nil>
	// stream: no numeric value
}

func ExampleStream_ReadBytesUntil() {
	s, _ := stream.New(source.NewBufferString("abc,def"), stream.WithTimeout(10*time.Millisecond))

	buf := make([]byte, 10)
	n := s.ReadBytesUntil(',', buf)
	fmt.Printf("%d %q %q\n", n, buf[:n], s.ReadString())
	// Output:
	// 3 "abc" "def"
}
