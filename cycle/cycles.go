package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"slices"

	"golang.org/x/text/message"
)

/*
Surveys the repeating structure of the trailing digits of powers of two.

For every window size k the sequence 2^n mod 10^k is eventually periodic: a
short lead-in, then a cycle. Only the cycle positions whose value has all
even digits and did not wrap around the window can ever belong to a power
of two with all even digits, so their indexes form an accelerator table a
decimated scan can use. Their density also shows how quickly candidates
thin out as the window grows, which is what forces a wider window once the
tail scan runs dry.
*/

// Accelerator describes the periodic structure of 2^n mod Mask, together
// with the cycle positions whose value has entirely even digits.
type Accelerator struct {
	Mask      uint64
	Order     int
	Length    uint64
	Leadin    uint64
	EvenItems int
	Gain      float64
	Cycle     []uint64
	Index     []uint64
}

func main() {
	p := message.NewPrinter(message.MatchLanguage("en"))

	exports := map[uint64]bool{
		10:                    true,
		100:                   true,
		1000:                  true,
		1_000_000:             true,
		1_000_000_000:         true,
		1_000_000_000_000:     true,
		10_000_000_000_000:    true,
		100_000_000_000_000:   true,
		1_000_000_000_000_000: true,
	}

	fmt.Printf("%8s %8s %18s %8s %12s\n", "digits", "leadin", "cycle", "even", "gain")
	for mask, width := uint64(10), 1; mask <= 1_000_000_000_000_000; mask, width = 10*mask, width+1 {
		acc := survey(mask, width)
		_, _ = p.Printf(
			"%8d %8d %18d %8d %12.2f\n",
			acc.Order, acc.Leadin, acc.Length, acc.EvenItems, acc.Gain,
		)

		if exports[mask] {
			if err := export(acc); err != nil {
				log.Fatal(err)
			}
		}
	}
}

// survey finds the lead-in and cycle of 2^n mod mask and walks the cycle
// once to collect the all-even members.
func survey(mask uint64, width int) Accelerator {
	leadin, length, entry := findCycle(mask)

	indexes := []uint64{}
	cycle := []uint64{}
	v := entry
	for i := uint64(0); i < length; i++ {
		tmp := v * 2
		v = tmp % mask
		// a wrapped value says nothing about the digits above the window
		if tmp == v && evenDigits(v) {
			indexes = append(indexes, i+leadin+1)
			cycle = append(cycle, v)
		}
	}
	slices.Sort(cycle)

	return Accelerator{
		Mask:      mask,
		Order:     width,
		Length:    length,
		Leadin:    leadin,
		EvenItems: len(cycle),
		Gain:      float64(length) / float64(max(len(cycle), 1)),
		Cycle:     cycle,
		Index:     indexes,
	}
}

// findCycle runs Floyd's tortoise and hare over x -> 2x mod mask starting
// from 1 and returns the lead-in length, the cycle length and a value
// inside the cycle.
func findCycle(mask uint64) (leadin, length, entry uint64) {
	fast, slow := uint64(1), uint64(1)
	for {
		fast = fast * 4 % mask
		slow = slow * 2 % mask
		if fast == slow {
			break
		}
	}

	slow = 1
	for {
		fast = fast * 2 % mask
		slow = slow * 2 % mask
		leadin++
		if fast == slow {
			break
		}
	}

	entry = slow
	for {
		fast = fast * 2 % mask
		length++
		if fast == slow {
			break
		}
	}
	return leadin, length, entry
}

func export(acc Accelerator) error {
	name := fmt.Sprintf("cycle-%03d.json", acc.Order)
	txt, err := json.MarshalIndent(acc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(name, txt, 0666)
}

func evenDigits(x uint64) bool {
	for z := x; z > 0; z = z / 10 {
		if z%10%2 == 1 {
			return false
		}
	}
	return true
}
