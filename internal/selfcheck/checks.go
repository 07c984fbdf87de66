package selfcheck

import (
	"github.com/krew-solutions/unique-id-go/uniqueid/identity"
	"github.com/krew-solutions/unique-id-go/uniqueid/idset"
)

// slot is wide on purpose so a reallocation visibly moves the embedded id.
type slot struct {
	id  identity.UniqueId
	pad [48]byte
}

func mint(n int) []identity.UniqueId {
	ids := make([]identity.UniqueId, n)
	for i := range ids {
		ids[i] = identity.New()
	}
	return ids
}

func checkSelfEquality(id identity.UniqueId, rec *recorder) {
	same := id
	ok := id == same && id.Equal(same) && id.Uintptr() == same.Uintptr() && id.Compare(same) == 0
	rec.check(PropertySelfEquality, ok, "id %s does not equal itself", id)
}

func checkHash(id identity.UniqueId, rec *recorder) {
	same := id
	rec.check(PropertyHash, id.Hash() == same.Hash(), "id %s hashes inconsistently", id)
}

func checkClone(id identity.UniqueId, rec *recorder) {
	clone := id.Clone()
	ok := clone != id && !clone.Equal(id) && clone.Uintptr() != id.Uintptr()
	rec.check(PropertyCloneDistinct, ok, "clone %s of %s shares its identity", clone, id)
}

// checkPairOrder checks trichotomy and antisymmetry on neighbouring ids.
func checkPairOrder(ids []identity.UniqueId, rec *recorder) {
	for i := 1; i < len(ids); i++ {
		a, b := ids[i-1], ids[i]
		outcomes := 0
		if a.Less(b) {
			outcomes++
		}
		if a == b {
			outcomes++
		}
		if b.Less(a) {
			outcomes++
		}
		c := a.Compare(b)
		ok := outcomes == 1 &&
			c == -b.Compare(a) &&
			(c < 0) == (a.Uintptr() < b.Uintptr()) &&
			(c == 0) == (a == b)
		rec.check(PropertyTotalOrder, ok, "ids %s and %s compare inconsistently", a, b)
	}
}

// checkSetOrder walks all live ids in set order; a strictly ascending walk means the
// order is transitive over everything issued in the run.
func checkSetOrder(live *idset.Set, rec *recorder) {
	var prev identity.UniqueId
	first := true
	live.Ascend(func(id identity.UniqueId) bool {
		if !first {
			rec.check(PropertyTotalOrder, prev.Less(id) && prev.Uintptr() < id.Uintptr(),
				"ids %s and %s are out of order", prev, id)
		}
		prev, first = id, false
		return true
	})
}

func checkRelocation(id identity.UniqueId, pushes int, rec *recorder) {
	before := id.Uintptr()
	slots := make([]slot, 0, 1)
	slots = append(slots, slot{id: id})
	initialCap := cap(slots)
	for i := 0; i < pushes; i++ {
		slots = append(slots, slot{id: identity.New()})
	}
	rec.check(PropertyRelocation, cap(slots) > initialCap, "%d pushes did not reallocate", pushes)
	rec.check(PropertyRelocation, slots[0].id.Uintptr() == before,
		"id moved from %d to %d after reallocation", before, slots[0].id.Uintptr())

	slots = slots[:1]
	back := slots[0].id
	rec.check(PropertyRelocation, back == id && back.Uintptr() == before,
		"id %s came back as %s", id, back)
}

func checkEndToEnd(pushes int, rec *recorder) {
	a := identity.New()
	vA := a.Uintptr()
	b := identity.New()
	rec.check(PropertyEndToEnd, vA != b.Uintptr(), "two new ids share %d", vA)

	aClone := a.Clone()
	rec.check(PropertyEndToEnd, aClone != a && aClone.Uintptr() != vA, "clone of %s shares its identity", a)

	items := []identity.UniqueId{a}
	for i := 0; i < pushes; i++ {
		items = append(items, identity.New())
	}
	var popped identity.UniqueId
	for len(items) > 0 {
		popped, items = items[len(items)-1], items[:len(items)-1]
	}
	rec.check(PropertyEndToEnd, popped == a && popped.Uintptr() == vA,
		"id %d came back as %d", vA, popped.Uintptr())
}
