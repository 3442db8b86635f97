// Package oda tracks Open Data Application registrations: which
// (group type, group variant) pair has been dedicated to carrying a
// recognized application's data by a preceding Group 3A message.
package oda

import (
	"errors"
	"fmt"

	"github.com/openrds/rds/block"
)

// RTPlusAID is the ODA application identifier assigned to RadioText+.
const RTPlusAID = 0x4BD7

// Application enumerates the ODA applications this decoder recognizes.
type Application uint8

// RTPlus is the only Application this decoder understands; any other
// AID is rejected by Add.
const RTPlus Application = 1

func (a Application) String() string {
	if a == RTPlus {
		return "RTPlus"
	}
	return fmt.Sprintf("Application(%d)", uint8(a))
}

// ErrUnknownAID is returned by Add when the AID does not match a
// recognized application.
var ErrUnknownAID = errors.New("oda: unknown application identifier")

// ErrODAFull is returned by Add once the registry already holds
// MaxApplications entries and a distinct key is offered.
var ErrODAFull = errors.New("oda: maximum tracked applications exceeded")

// MaxApplications bounds how many distinct (group type, group variant)
// registrations the Registry retains at once. It sizes the
// fixed-capacity, allocation-free backing array.
const MaxApplications = 4

type key struct {
	groupType    block.GroupType
	groupVariant block.GroupVariant
}

type entry struct {
	key key
	app Application
}

// Registry maps (group type, group variant) pairs to the ODA
// application registered against them. Backed by a fixed-size array;
// it never allocates after construction. The zero value is ready to
// use.
type Registry struct {
	entries [MaxApplications]entry
	count   int
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

// Add registers app under aid at (groupType, groupVariant), replacing
// any existing registration for that exact pair. Returns ErrUnknownAID
// if aid is not recognized, or ErrODAFull if the registry is
// already at MaxApplications and the pair is not already registered.
func (r *Registry) Add(groupType block.GroupType, groupVariant block.GroupVariant, aid uint16) error {
	app, ok := applicationFor(aid)
	if !ok {
		return ErrUnknownAID
	}

	k := key{groupType, groupVariant}
	for i := 0; i < r.count; i++ {
		if r.entries[i].key == k {
			r.entries[i].app = app
			return nil
		}
	}

	if r.count >= MaxApplications {
		return ErrODAFull
	}
	r.entries[r.count] = entry{key: k, app: app}
	r.count++
	return nil
}

func applicationFor(aid uint16) (Application, bool) {
	if aid == RTPlusAID {
		return RTPlus, true
	}
	return 0, false
}

// Lookup reports the application registered at (groupType,
// groupVariant), if any.
func (r *Registry) Lookup(groupType block.GroupType, groupVariant block.GroupVariant) (Application, bool) {
	k := key{groupType, groupVariant}
	for i := 0; i < r.count; i++ {
		if r.entries[i].key == k {
			return r.entries[i].app, true
		}
	}
	return 0, false
}

// Reset discards every registration.
func (r *Registry) Reset() {
	r.count = 0
}
