package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"

	"github.com/vanHavel/oeis/common"
	"github.com/vanHavel/oeis/digits"
)

/*
Cross-checks the digit-buffer arithmetic used by the tail scan against an
independent decimal computation of 2^n mod 10^DIGITS.

Both sides start from 1 and double once per step. At every n the full digit
window is compared; any divergence is a bug in the buffer arithmetic and
aborts the run immediately. Along the way the values of n whose whole
window comes out even are collected, which are exactly the candidates the
tail scan would print.
*/

func main() {
	verbose := flag.Bool("verbose", false, "verbose output")
	limitString := flag.String(
		"limit",
		"10M",
		"Maximum value of N to check. Can use M, G, T, P and E as powers of ten",
	)
	width := flag.Int("digits", 40, "Number of trailing digits to track")
	flag.Parse()

	limit, err := common.ParseLimit(*limitString)
	if err != nil {
		log.Fatal(err)
	}
	if *verbose {
		log.Printf("Limit: %s", common.FormatCount(limit))
	}

	p := message.NewPrinter(message.MatchLanguage("en"))
	two := decimal.NewFromInt(2)
	mask := decimal.NewFromInt(10).Pow(decimal.NewFromInt(int64(*width)))

	tail := digits.New(*width)
	tail.SetUint64(1)
	z := decimal.NewFromInt(1)

	solutions := []uint64{}
	t0 := time.Now()
	for n := uint64(1); n <= limit; n++ {
		even := tail.MulSmall(2)
		z = z.Mul(two).Mod(mask)

		want := z.String()
		want = strings.Repeat("0", *width-len(want)) + want
		if got := tail.String(); got != want {
			log.Fatalf("divergence at n=%d: buffer %s, decimal %s", n, got, want)
		}
		if even {
			solutions = append(solutions, n)
		}

		if *verbose && n%10_000_000 == 0 {
			t := time.Since(t0).Seconds()
			rate := float64(n) / t
			_, _ = p.Printf(
				"%d candidates checked, %d all-even tails, %.0fs remaining\n",
				n, len(solutions), float64(limit-n)/rate,
			)
		}
	}
	_, _ = p.Printf("checked %d exponents in %.1fs\n", limit, time.Since(t0).Seconds())
	log.Printf("solutions = %v", solutions)
}
