package context_test

import (
	"fmt"

	"github.com/db47h/lexical/context"
)

// sumInts parses every entry in fields as a decimal int64 using ctx's
// options and returns their sum. If any entry fails to parse, ctx
// records the first such error, further calls become no-ops, and
// sumInts reports it.
func sumInts(ctx *context.Context, fields [][]byte) (sum int64, err error) {
	for _, f := range fields {
		sum += ctx.ParseInt64(f)
	}
	return sum, ctx.Err()
}

// Example demonstrates batching several conversions under one Context
// and checking for errors once at the end, instead of after every
// call.
func Example() {
	ctx, err := context.New(10)
	if err != nil {
		fmt.Println(err)
		return
	}

	sum, err := sumInts(ctx, [][]byte{[]byte("12"), []byte("30"), []byte("-5")})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	var buf [32]byte
	n := ctx.WriteInt64(buf[:], sum)
	fmt.Println(string(buf[:n]))

	_, err = sumInts(ctx, [][]byte{[]byte("12"), []byte("not-a-number")})
	fmt.Println("error:", err != nil)

	// Output:
	// 37
	// error: true
}
