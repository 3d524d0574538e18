package main

import (
	"context"
	"log"
	"os"
	"runtime"

	"github.com/vanHavel/oeis/scanner"
)

/*
Searches for values of n where every decimal digit of 2^n is even.

Instead of computing the entire decimal expansion of 2^n, only the last 40
digits are kept, i.e. the number 2^n mod 10^40. If that tail contains an odd
digit then so does 2^n, so only the tails that come out all even are worth
printing. After roughly 1.33 * 10^11 exponents a first tail appears whose 40
digits are all even; continuing the search past that point means restarting
with a wider digit window.

Four workers share the search. Worker i starts from 2^i and multiplies by
2^4 = 16 per step, so jointly the workers visit every exponent with stride
four. The factor is fixed here at build time, which is why the program
refuses to start unless the runtime actually offers four threads.

Matches are printed as a bare 40-digit line; each worker also prints a
`Steps: <count> from <id>` line once per billion steps.
*/

const (
	digitCount  = 40
	batchSize   = 1_000_000_000
	workerCount = 4
)

func main() {
	cfg := scanner.Config{
		Digits:  digitCount,
		Batch:   batchSize,
		Workers: workerCount,
	}
	if err := cfg.CheckThreads(runtime.GOMAXPROCS(0)); err != nil {
		log.Fatal(err)
	}

	s, err := scanner.New(cfg, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	// the search space is unbounded, only an external kill ends the scan
	log.Fatal(s.Run(context.Background()))
}
