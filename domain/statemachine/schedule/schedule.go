// Package schedule models how a cohort participant spends their day as a
// pure state machine. It is a deliberately playful example of open ended
// state machine design: the states and transitions carry no consensus
// meaning at all.
package schedule

import "github.com/pkg/errors"

type dayOfWeek byte

const (
	wednesday dayOfWeek = iota
	thursday
	friday
)

// currentDayOfWeek returns the day the machine believes it is. The cohort's
// clock is permanently stuck mid-week.
func currentDayOfWeek() dayOfWeek {
	return wednesday
}

// Identity is who the participant believes they are.
type Identity byte

// The only self-image on offer.
const (
	RationalUtilityMaximizer Identity = iota
)

// Track is the program track the participant follows.
type Track byte

// Program tracks.
const (
	Founder Track = iota
	Developer
)

// Assignment is a piece of coursework.
type Assignment byte

// Coursework assignments.
const (
	BlockchainFromScratch Assignment = iota
	AssignmentTwo
)

// Activity is what the participant is currently doing.
type Activity interface {
	isActivity()
}

// Coding is the activity of working on an assignment.
type Coding struct {
	Assignment Assignment
}

// AttendingEvent is the activity of attending a cohort event.
type AttendingEvent struct{}

// DayDreaming is the activity of thinking about something else entirely.
type DayDreaming struct {
	Topic string
}

func (Coding) isActivity()         {}
func (AttendingEvent) isActivity() {}
func (DayDreaming) isActivity()    {}

// State is the full state of the participant's day.
type State struct {
	PersonalIdentity Identity
	Track            Track
	Activity         Activity
}

// Transition is a decision that moves the day along.
type Transition byte

// The decisions a participant can make.
const (
	// DecideOnNextCourseOfAction picks an activity fitting the
	// participant's identity and track.
	DecideOnNextCourseOfAction Transition = iota
	// Code sits down to write code for whatever the day calls for.
	Code
	// DayDream drifts off.
	DayDream
)

// NextState applies the given transition to the given state and returns the
// resulting state. The input state is never mutated.
func NextState(state *State, transition Transition) *State {
	next := &State{
		PersonalIdentity: state.PersonalIdentity,
		Track:            state.Track,
		Activity:         state.Activity,
	}

	switch transition {
	case DecideOnNextCourseOfAction:
		if state.PersonalIdentity == RationalUtilityMaximizer && state.Track == Developer {
			next.Activity = Coding{Assignment: BlockchainFromScratch}
		} else {
			next.Activity = AttendingEvent{}
		}

	case Code:
		switch currentDayOfWeek() {
		case wednesday:
			next.Activity = Coding{Assignment: BlockchainFromScratch}
		case thursday, friday:
			next.Activity = Coding{Assignment: AssignmentTwo}
		default:
			next.Activity = DayDreaming{Topic: "Next Big Idea"}
		}

	case DayDream:
		next.Activity = DayDreaming{Topic: "Find optimal use-case for state machines"}

	default:
		panic(errors.Errorf("unknown transition %d", transition))
	}

	return next
}
