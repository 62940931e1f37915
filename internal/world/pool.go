package world

// Fixed capacities. Storage never grows during a session.
const (
	MaxEnemies     = 10
	MaxBullets     = 50
	MaxGems        = 200
	MaxDamageTexts = 50
)

// NoSlot is returned by acquire when every slot is alive.
const NoSlot = -1

// pooled is satisfied by a pointer to any record embedding Slot.
type pooled[T any] interface {
	*T
	IsDead() bool
	SetDead(bool)
}

// acquire marks the lowest-index dead slot alive and returns its index.
// When the pool is full it returns NoSlot and changes nothing.
func acquire[T any, P pooled[T]](slots []T) int {
	for i := range slots {
		p := P(&slots[i])
		if p.IsDead() {
			p.SetDead(false)
			return i
		}
	}
	return NoSlot
}

// release frees slot i. Out-of-range indices are ignored.
func release[T any, P pooled[T]](slots []T, i int) {
	if i < 0 || i >= len(slots) {
		return
	}
	P(&slots[i]).SetDead(true)
}

// countAlive returns the number of occupied slots.
func countAlive[T any, P pooled[T]](slots []T) int {
	n := 0
	for i := range slots {
		if !P(&slots[i]).IsDead() {
			n++
		}
	}
	return n
}

// killAll marks every slot dead.
func killAll[T any, P pooled[T]](slots []T) {
	for i := range slots {
		P(&slots[i]).SetDead(true)
	}
}
