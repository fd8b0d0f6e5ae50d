package target

// HitKind classifies what a successful click did.
type HitKind int

const (
	// Scored: a normal target was whacked.
	Scored HitKind = iota
	// Blocked: an armored target lost a layer but is still up.
	Blocked
	// Broken: an armored target lost its last layer.
	Broken
	// Penalized: a decoy was hit.
	Penalized
)

func (k HitKind) String() string {
	switch k {
	case Scored:
		return "scored"
	case Blocked:
		return "blocked"
	case Broken:
		return "broken"
	case Penalized:
		return "penalized"
	}
	return "unknown"
}

// Scoring is the score delta per outcome.
type Scoring struct {
	Normal     int
	ArmorBreak int
	Decoy      int
}

// HitOutcome is the result of OnHit.
type HitOutcome struct {
	Kind   HitKind
	Delta  int
	Hidden bool
}

// OnHit applies a confirmed hit to the target. The caller is expected to
// have checked IsHit first.
func (t *Target) OnHit(now float64, s Scoring) HitOutcome {
	switch t.Variant {
	case Armored:
		t.Health--
		if t.Health > 0 {
			return HitOutcome{Kind: Blocked}
		}
		t.Health = 0
		t.Hide(now)
		return HitOutcome{Kind: Broken, Delta: s.ArmorBreak, Hidden: true}
	case Decoy:
		t.Hide(now)
		return HitOutcome{Kind: Penalized, Delta: s.Decoy, Hidden: true}
	default:
		t.Hide(now)
		return HitOutcome{Kind: Scored, Delta: s.Normal, Hidden: true}
	}
}
