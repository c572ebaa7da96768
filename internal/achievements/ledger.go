package achievements

import "time"

// Achievement is one awarded milestone. Reference names what earned it,
// such as a quiz result or assessment ID.
type Achievement struct {
	Kind      Kind      `json:"kind"`
	Title     string    `json:"title"`
	Points    int       `json:"points"`
	Reference string    `json:"reference"`
	AwardedAt time.Time `json:"awardedAt"`
}

// New builds an achievement of kind k using the kind's title and points.
func New(k Kind, reference string, at time.Time) Achievement {
	return Achievement{
		Kind:      k,
		Title:     k.Title(),
		Points:    k.Points(),
		Reference: reference,
		AwardedAt: at,
	}
}

// Ledger is an ordered list of achievements. A (Kind, Reference) pair
// appears at most once.
type Ledger []Achievement

// Has reports whether the ledger already holds kind k for reference.
func (l Ledger) Has(k Kind, reference string) bool {
	for _, a := range l {
		if a.Kind == k && a.Reference == reference {
			return true
		}
	}
	return false
}

// TotalPoints sums the points of every achievement.
func (l Ledger) TotalPoints() int {
	total := 0
	for _, a := range l {
		total += a.Points
	}
	return total
}

// CountByKind returns how many achievements of each kind are held.
func (l Ledger) CountByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for _, a := range l {
		counts[a.Kind]++
	}
	return counts
}

// Award returns a new ledger with a appended. The input ledger is never
// modified. It returns the original ledger and false when a is a duplicate.
func Award(ledger Ledger, a Achievement) (Ledger, bool) {
	if ledger.Has(a.Kind, a.Reference) {
		return ledger, false
	}
	out := make(Ledger, len(ledger), len(ledger)+1)
	copy(out, ledger)
	return append(out, a), true
}
