package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/minichain/minichain/domain/statemachine/atm"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// runSession drives an interactive teller session against the pure ATM state
// machine, applying one action per line of input.
func runSession(cfg *configFlags) error {
	state := atm.NewState(cfg.CashInside)
	log.Infof("Teller session started with $%d inside the machine", cfg.CashInside)

	fmt.Printf("ATM loaded with $%d.\n", cfg.CashInside)
	fmt.Println("Commands: swipe, 1-4, enter, dump, quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		command := strings.ToLower(strings.TrimSpace(scanner.Text()))

		switch command {
		case "":

		case "quit", "exit":
			fmt.Println("Goodbye.")
			return nil

		case "dump":
			fmt.Print(spew.Sdump(state))

		case "swipe":
			digits, err := readPIN("Card PIN (digits 1-4): ")
			if err != nil {
				return err
			}
			pinKeys, err := keysFromDigits(digits)
			if err != nil {
				fmt.Printf("Card rejected: %s.\n", err)
				continue
			}
			state = applyAction(state, atm.SwipeCard{PINDigest: atm.PINDigest(pinKeys)})

		case "enter":
			state = applyAction(state, atm.PressKey{Key: atm.Enter})

		case "1", "2", "3", "4":
			state = applyAction(state, atm.PressKey{Key: atm.Key(command[0] - '0')})

		default:
			fmt.Printf("Unknown command %q.\n", command)
		}
	}

	return errors.WithStack(scanner.Err())
}

// applyAction advances the machine by one action and narrates the visible
// outcome on the console.
func applyAction(state *atm.State, action atm.Action) *atm.State {
	nextState := atm.NextState(state, action)
	log.Debugf("Applied %T: phase %s -> %s, cash $%d -> $%d",
		action, state.Phase, nextState.Phase, state.CashInside, nextState.CashInside)

	describeTransition(state, nextState)
	return nextState
}

func describeTransition(previous, next *atm.State) {
	if dispensed := previous.CashInside - next.CashInside; dispensed > 0 {
		fmt.Printf("Dispensed $%d. Please take your cash.\n", dispensed)
		return
	}

	switch {
	case previous.Phase == atm.Waiting && next.Phase == atm.Authenticating:
		fmt.Println("Card accepted. Key in your PIN and press enter.")

	case previous.Phase == atm.Authenticating && next.Phase == atm.Authenticated:
		fmt.Println("PIN accepted. Key in an amount and press enter.")

	case previous.Phase == atm.Authenticating && next.Phase == atm.Waiting:
		fmt.Println("Incorrect PIN. Card returned.")

	case previous.Phase == atm.Authenticated && next.Phase == atm.Waiting:
		fmt.Println("The machine cannot dispense that amount. Card returned.")

	case len(next.KeystrokeRegister) > len(previous.KeystrokeRegister):
		fmt.Printf("Keyed in %d digit(s).\n", len(next.KeystrokeRegister))

	case next.Equal(previous):
		fmt.Println("The machine ignores that right now.")
	}
}

// readPIN was adapted from https://gist.github.com/jlinoff/e8e26b4ffa38d379c7f1891fd174a6d0#file-getpassword2-go
func readPIN(prompt string) ([]byte, error) {
	// Get the initial state of the terminal.
	initialTermState, err := term.GetState(int(syscall.Stdin))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Restore it in the event of an interrupt.
	// CITATION: Konstantin Shaposhnikov - https://groups.google.com/forum/#!topic/golang-nuts/kTVAbtee9UA
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, os.Kill)
	go func() {
		<-c
		_ = term.Restore(int(syscall.Stdin), initialTermState)
		os.Exit(1)
	}()

	// Now get the PIN digits.
	fmt.Print(prompt)
	entered, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Stop looking for ^C on the channel.
	signal.Stop(c)

	return entered, nil
}

// keysFromDigits converts typed digits into keypad keys, rejecting anything
// the keypad does not have.
func keysFromDigits(digits []byte) ([]atm.Key, error) {
	if len(digits) == 0 {
		return nil, errors.New("the PIN cannot be empty")
	}

	keys := make([]atm.Key, 0, len(digits))
	for _, digit := range digits {
		if digit < '1' || digit > '4' {
			return nil, errors.Errorf("the PIN may only contain digits 1-4")
		}
		keys = append(keys, atm.Key(digit-'0'))
	}
	return keys, nil
}
