// Masked entry with confirmation and a length validator.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/willoughby/ask"
)

func main() {
	secret, err := ask.NewPassword("New passphrase:").
		WithHelp("typing is hidden").
		WithValidator(func(v string) error {
			if len(v) < 8 {
				return errors.New("use at least 8 characters")
			}
			return nil
		}).
		Prompt()
	if errors.Is(err, ask.ErrConfirmationMismatch) {
		log.Fatal("the two entries did not match")
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Stored a %d-character passphrase.\n", len(secret))
}
