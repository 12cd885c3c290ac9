// Snapshot is the persistence contract (spec §6): a compact tuple a
// caller's serialization layer can encode however it likes (this module
// only defines the Go struct; encoding format is explicitly out of
// scope, per spec §1's "serialization format details" exclusion). Every
// field not in the tuple is reconstructed by re-running Generate against
// the saved seed and inputs - the spec's own round-trip contract.
package planetoid

import (
	"github.com/google/uuid"

	"github.com/thousandworlds/planetoid/internal/habitability"
	"github.com/thousandworlds/planetoid/internal/planettype"
)

// Snapshot is the minimal persisted tuple named in spec §6.
type Snapshot struct {
	ID       uuid.UUID
	MasterSeed uint32
	Type     planettype.Type
	ParentID uuid.UUID
	Name     string
	IsSatellite bool

	StarLuminositySolar float64
	StarMassSolar       float64
	StellarAgeYears     float64
	MinOrbitAU          float64
	MaxOrbitAU          float64

	Habitability *habitability.Constraints

	// RotationPeriodSeconds and AtmosphericPressurePa capture the two
	// post-generation mutable fields Planetoid has setters for
	// (SetRotationPeriodSeconds, SetAtmosphericPressurePa), since
	// those can diverge from what Generate would produce on its own from
	// the seed. Rotational period is carried in seconds, matching the
	// SI units the rest of the persistence contract uses.
	RotationPeriodSeconds  float64
	AtmosphericPressurePa  float64
}

// ToSnapshot captures the compact persisted tuple for p.
func (p *Planetoid) ToSnapshot() Snapshot {
	return Snapshot{
		ID:                    p.ID,
		MasterSeed:            p.Seed,
		Type:                  p.Type,
		ParentID:              p.ParentID,
		Name:                  p.Name,
		RotationPeriodSeconds: p.RotationPeriodSeconds,
		AtmosphericPressurePa: p.Atmosphere.SurfacePressurePa,
	}
}

// FromSnapshot reconstructs a Planetoid by re-running the generation
// pipeline against the saved seed and inputs, then reapplying the two
// post-generation mutable fields the snapshot captured explicitly. Per
// spec §8's round-trip invariant, this must produce a planetoid equal
// under every §3 field and identical query outputs to the one the
// snapshot was taken from.
func FromSnapshot(s Snapshot) (*Planetoid, error) {
	p := Params{
		Seed:                s.MasterSeed,
		Type:                s.Type,
		Name:                s.Name,
		ParentID:            s.ParentID,
		IsSatellite:         s.IsSatellite,
		StarLuminositySolar: s.StarLuminositySolar,
		StarMassSolar:       s.StarMassSolar,
		StellarAgeYears:     s.StellarAgeYears,
		MinOrbitAU:          s.MinOrbitAU,
		MaxOrbitAU:          s.MaxOrbitAU,
		Habitability:        s.Habitability,
	}
	body, err := Generate(p)
	if err != nil {
		return nil, err
	}
	body.ID = s.ID
	if s.RotationPeriodSeconds != 0 {
		body.SetRotationPeriodSeconds(s.RotationPeriodSeconds)
	}
	if s.AtmosphericPressurePa != 0 {
		body.SetAtmosphericPressurePa(s.AtmosphericPressurePa)
	}
	return body, nil
}
