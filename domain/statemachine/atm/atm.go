// Package atm models an automated teller machine as a pure state machine.
//
// The machine gives out cash after a card swipe and a correct PIN. A swipe
// hands the machine the digest of the expected PIN. The user then keys in
// digits followed by enter: a wrong PIN returns the card and the machine
// goes back to waiting, a correct PIN lets the user key in an amount to
// withdraw. Withdrawals are bounded only by the cash in the machine, there
// is no account balance.
package atm

import (
	"github.com/minichain/minichain/domain/consensus/utils/hashing"
	"github.com/pkg/errors"
)

// Key is a key on the ATM keypad.
type Key byte

// The ATM keypad has four digit keys and an enter key. The digit keys carry
// their decimal value.
const (
	One Key = iota + 1
	Two
	Three
	Four
	Enter
)

func (k Key) String() string {
	switch k {
	case One:
		return "1"
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Enter:
		return "Enter"
	default:
		return "Unknown"
	}
}

// Action is something a user can do to the ATM.
type Action interface {
	isAction()
}

// SwipeCard is the action of swiping a card at the ATM. PINDigest is the
// digest of the PIN that should be keyed in on the keypad next.
type SwipeCard struct {
	PINDigest uint64
}

// PressKey is the action of pressing a key on the keypad.
type PressKey struct {
	Key Key
}

func (SwipeCard) isAction() {}
func (PressKey) isAction()  {}

// AuthPhase is the authentication status of the machine.
type AuthPhase byte

const (
	// Waiting means no session has begun yet. The machine waits for the
	// user to swipe their card.
	Waiting AuthPhase = iota
	// Authenticating means a card has been swiped and the machine waits
	// for the user to key in their PIN.
	Authenticating
	// Authenticated means the PIN matched and the machine waits for the
	// user to key in the amount of cash to withdraw.
	Authenticated
)

func (phase AuthPhase) String() string {
	switch phase {
	case Waiting:
		return "Waiting"
	case Authenticating:
		return "Authenticating"
	case Authenticated:
		return "Authenticated"
	default:
		return "Unknown"
	}
}

// State is the full state of the machine.
type State struct {
	// CashInside is how much money is in the machine.
	CashInside uint64
	// Phase is the machine's authentication status.
	Phase AuthPhase
	// ExpectedPINDigest is the digest the keyed in PIN is checked
	// against. It is meaningful only while authenticating and is zero in
	// every other phase.
	ExpectedPINDigest uint64
	// KeystrokeRegister holds the keys pressed since the last enter.
	KeystrokeRegister []Key
}

// NewState returns a waiting machine loaded with the given amount of cash.
func NewState(cashInside uint64) *State {
	return &State{CashInside: cashInside}
}

// Clone returns a clone of State
func (s *State) Clone() *State {
	keystrokeRegisterClone := make([]Key, len(s.KeystrokeRegister))
	copy(keystrokeRegisterClone, s.KeystrokeRegister)

	return &State{
		CashInside:        s.CashInside,
		Phase:             s.Phase,
		ExpectedPINDigest: s.ExpectedPINDigest,
		KeystrokeRegister: keystrokeRegisterClone,
	}
}

// If this doesn't compile, it means the type definition has been changed, so it's
// an indication to update Equal and Clone accordingly.
var _ = &State{0, Waiting, 0, []Key{}}

// Equal returns whether state equals to other
func (s *State) Equal(other *State) bool {
	if s == nil || other == nil {
		return s == other
	}

	if s.CashInside != other.CashInside {
		return false
	}

	if s.Phase != other.Phase {
		return false
	}

	if s.ExpectedPINDigest != other.ExpectedPINDigest {
		return false
	}

	if len(s.KeystrokeRegister) != len(other.KeystrokeRegister) {
		return false
	}

	for i, key := range s.KeystrokeRegister {
		if key != other.KeystrokeRegister[i] {
			return false
		}
	}

	return true
}

// NextState applies the given action to the given state and returns the
// resulting state. The input state is never mutated, so transitions may be
// replayed or explored freely.
func NextState(state *State, action Action) *State {
	switch action := action.(type) {
	case SwipeCard:
		return swipeCard(state, action.PINDigest)
	case PressKey:
		return pressKey(state, action.Key)
	default:
		// Action is a sealed interface, so no other implementations can
		// exist.
		panic(errors.Errorf("unknown action type %T", action))
	}
}

// swipeCard begins an authentication session. A swipe is meaningful only
// while the machine is waiting, mid-session swipes change nothing.
func swipeCard(state *State, pinDigest uint64) *State {
	if state.Phase != Waiting {
		return state.Clone()
	}

	next := state.Clone()
	next.Phase = Authenticating
	next.ExpectedPINDigest = pinDigest
	next.KeystrokeRegister = nil
	return next
}

func pressKey(state *State, key Key) *State {
	next := state.Clone()

	if key != Enter {
		// Digit keys register while a session is active and are ignored
		// while the machine waits for a swipe.
		switch state.Phase {
		case Authenticating, Authenticated:
			next.KeystrokeRegister = append(next.KeystrokeRegister, key)
		}
		return next
	}

	switch state.Phase {
	case Authenticating:
		if PINDigest(state.KeystrokeRegister) == state.ExpectedPINDigest {
			next.Phase = Authenticated
		} else {
			next.Phase = Waiting
		}
		next.ExpectedPINDigest = 0
		next.KeystrokeRegister = nil

	case Authenticated:
		withdrawAmount := KeysToAmount(state.KeystrokeRegister)
		if withdrawAmount <= next.CashInside {
			next.CashInside -= withdrawAmount
		}
		next.Phase = Waiting
		next.KeystrokeRegister = nil
	}

	return next
}

// PINDigest returns the digest of the given keystrokes, the value a card
// swipe carries for its expected PIN.
func PINDigest(keys []Key) uint64 {
	keyBytes := make([]byte, len(keys))
	for i, key := range keys {
		keyBytes[i] = byte(key)
	}
	return hashing.Bytes(keyBytes)
}

// KeysToAmount interprets the given keystrokes as a decimal amount, one
// digit per key.
func KeysToAmount(keys []Key) uint64 {
	amount := uint64(0)
	for _, key := range keys {
		amount *= 10
		switch key {
		case One, Two, Three, Four:
			amount += uint64(key)
		}
	}
	return amount
}
