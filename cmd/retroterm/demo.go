package main

import (
	"context"
	"fmt"
	"math/rand/v2"

	"pkt.systems/retroterm"
)

// runDemo plays a short guess-the-number session through the façade.
// It exercises the banner, embedded color codes, tabbed output and all
// three input forms.
func runDemo(ctx context.Context, tty *retroterm.TTY) error {
	tty.Clear()
	tty.Hello("pkt.systems", "GUESS", "v1")

	name, err := tty.Input(ctx, "{C}What is your name? {W}")
	if err != nil {
		return err
	}
	if name == "" {
		name = "stranger"
	}
	tty.Println("{g}Hello, {G}", name, "{g}. I am thinking of a number from 1 to 100.")

	for {
		secret := rand.IntN(100) + 1
		tries := 0
		for {
			guess, err := tty.InputNumber(ctx, "{c}Your guess (1-100)? {W}", 1, 100)
			if err != nil {
				return err
			}
			tries++
			if guess < secret {
				tty.Println("{y}Higher.")
				continue
			}
			if guess > secret {
				tty.Println("{y}Lower.")
				continue
			}
			tty.Println()
			tty.Tab(8)
			tty.Print("{V}{W} You got it in ", fmt.Sprintf("%d", tries), " tries! {v}{_}")
			tty.Println()
			break
		}

		more, err := tty.InputYN(ctx, "{c}Play again (y/n)? {W}")
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	tty.Println("{m}Goodbye, {M}", name, "{m}.{_}")
	return nil
}
