// Select and MultiSelect prompts with filtering and pagination.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/willoughby/ask"
)

func main() {
	fruit, err := ask.NewSelect("What's your favorite fruit?", []string{
		"Banana", "Apple", "Strawberry", "Grapes", "Lemon", "Tangerine",
		"Watermelon", "Orange", "Pear", "Avocado", "Pineapple",
	}).WithVimMode(true).Prompt()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s! Good choice.\n", fruit)

	toppings, err := ask.NewMultiSelect("Pick your toppings:", []string{
		"Cheese", "Mushrooms", "Olives", "Pepperoni", "Onions", "Peppers",
	}).WithValidator(func(selection []ask.ListOption) error {
		if len(selection) == 0 {
			return errors.New("pick at least one topping")
		}
		return nil
	}).Prompt()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Coming up: %v\n", toppings)
}
