// Calendar date picker limited to the next year.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/willoughby/ask"
)

func main() {
	when, err := ask.NewDateSelect("When do you want to travel?").
		WithMinDate(time.Now()).
		WithMaxDate(time.Now().AddDate(1, 0, 0)).
		WithWeekStart(time.Monday).
		Prompt()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Booked for %s.\n", when.Format("Monday, January 2 2006"))
}
