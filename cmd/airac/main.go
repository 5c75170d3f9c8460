package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/aeronav/airac-api/internal/airac"
)

// Command line lookup of AIRAC cycles: by date, by identifier, a whole
// year's schedule, or (with no flags) the cycle in effect right now.

func main() {
	date := flag.String("date", "", "Print the cycle in effect on this UTC date (YYYY-MM-DD)")
	id := flag.String("id", "", "Print the cycle with this four digit identifier (YYOO)")
	year := flag.Int("year", 0, "Print the full cycle schedule for this year")
	flag.Parse()

	switch {
	case *date != "":
		parsed, err := time.Parse("2006-01-02", *date)
		if err != nil {
			fail("invalid date %q: use YYYY-MM-DD", *date)
		}
		fmt.Println(airac.FromInstant(parsed.UTC()).LongString())

	case *id != "":
		cycle, err := airac.FromIdentifier(*id)
		if err != nil {
			fail("%v", err)
		}
		fmt.Println(cycle.LongString())

	case *year != 0:
		printSchedule(*year)

	default:
		fmt.Println(airac.FromInstant(time.Now().UTC()).LongString())
	}
}

// printSchedule prints every cycle effective in the given year.
func printSchedule(year int) {
	fmt.Printf("AIRAC schedule for %d:\n", year)

	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	first := airac.FromInstant(jan1)
	if first.Year() < year {
		first = first.Next()
	}

	for c := first; c.Year() == year; c = c.Next() {
		fmt.Printf("  %s\n", c.LongString())
	}
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "airac: "+format+"\n", args...)
	os.Exit(1)
}
