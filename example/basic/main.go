// Basic text and confirmation prompts.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/willoughby/ask"
)

func main() {
	name, err := ask.NewText("What is your name?").
		WithDefault("anonymous").
		WithValidator(func(v string) error {
			if len(v) > 64 {
				return errors.New("that's too long, 64 characters at most")
			}
			return nil
		}).
		Prompt()
	if errors.Is(err, ask.ErrCanceled) {
		fmt.Println("No name given.")
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	ok, err := ask.NewConfirm(fmt.Sprintf("Is %q correct?", name)).
		WithDefault(true).
		Prompt()
	if err != nil {
		log.Fatal(err)
	}
	if ok {
		fmt.Printf("Hello, %s!\n", name)
	}
}
