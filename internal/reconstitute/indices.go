package reconstitute

// Channel indices are the determinism contract referenced throughout §4 of
// the specification: every random quantity in the generator refers to one
// of these indices, and the distribution drawn from that index is fixed by
// DefaultTable below. Renumbering an index, or changing its Spec, silently
// changes every world ever saved against an older build - so new draws are
// appended, never inserted.
const (
	IdxEccentricity = iota
	IdxAxialTiltExtremeRoll
	IdxAxialTiltAngle
	IdxAxialPrecession
	IdxRotationExtremeRoll
	IdxRotationPeriod
	IdxTidalLockAge
	IdxDensityPuffyRoll
	IdxDensityPuffyFactor
	IdxCoreFraction
	IdxGravityTarget
	IdxWaterMassRatio
	IdxSurfaceWaterSplit
	IdxPlanetFlattening // see spec §9 open question: applied uniformly, including comets
	IdxNoiseSeedElevation
	IdxNoiseSeedRidge
	IdxNoiseSeedMountainMask
	IdxNoiseSeedPrecipMacro
	IdxNoiseSeedPrecipMicro
	IdxNoiseSeedHumidity
	IdxHydrosphereDeepFraction
	IdxAtmosphereTraceRoll
	IdxRingPresenceRoll
	IdxRingCountGiant
	IdxRingCountOther
	IdxMaxIndex // sentinel; keep last
)

// DefaultTable is the stock index -> distribution mapping used when a
// Reconstitution is constructed without an override (the common case).
// Individual components may still pass a custom table in tests to probe
// edge-of-distribution behavior deterministically.
var DefaultTable = map[int]Spec{
	IdxEccentricity:            {Kind: HalfNormal, Mean: 0, Sigma: 0.05, HasClamp: true, ClampLow: 0, ClampHigh: 0.999},
	IdxAxialTiltExtremeRoll:    {Kind: Uniform, Min: 0, Max: 1},
	IdxAxialTiltAngle:          {Kind: Uniform, Min: 0, Max: 1},
	IdxAxialPrecession:         {Kind: Uniform, Min: 0, Max: 1},
	IdxRotationExtremeRoll:     {Kind: Uniform, Min: 0, Max: 1},
	IdxRotationPeriod:          {Kind: Uniform, Min: 0, Max: 1},
	IdxTidalLockAge:            {Kind: LogNormal, Mean: 0, Sigma: 0.15}, // scaled against 4.6 Gyr by caller
	IdxDensityPuffyRoll:        {Kind: Uniform, Min: 0, Max: 1},
	IdxDensityPuffyFactor:      {Kind: Uniform, Min: 0.55, Max: 0.85},
	IdxCoreFraction:            {Kind: Uniform, Min: 0.2, Max: 0.55},
	IdxGravityTarget:           {Kind: Uniform, Min: 0, Max: 1},
	IdxWaterMassRatio:          {Kind: HalfNormal, Mean: 0, Sigma: 0.35, HasClamp: true, ClampLow: 0, ClampHigh: 1},
	IdxSurfaceWaterSplit:       {Kind: Normal, Mean: 0.055, Sigma: 0.01, HasClamp: true, ClampLow: 0, ClampHigh: 0.2},
	IdxPlanetFlattening:        {Kind: Uniform, Min: 0, Max: 0.09},
	IdxNoiseSeedElevation:      {Kind: Uniform, Min: 0, Max: 1 << 30},
	IdxNoiseSeedRidge:          {Kind: Uniform, Min: 0, Max: 1 << 30},
	IdxNoiseSeedMountainMask:   {Kind: Uniform, Min: 0, Max: 1 << 30},
	IdxNoiseSeedPrecipMacro:    {Kind: Uniform, Min: 0, Max: 1 << 30},
	IdxNoiseSeedPrecipMicro:    {Kind: Uniform, Min: 0, Max: 1 << 30},
	IdxNoiseSeedHumidity:       {Kind: Uniform, Min: 0, Max: 1 << 30},
	IdxHydrosphereDeepFraction: {Kind: Uniform, Min: 0.3, Max: 0.7},
	IdxAtmosphereTraceRoll:     {Kind: Uniform, Min: 0, Max: 1},
	IdxRingPresenceRoll:        {Kind: Uniform, Min: 0, Max: 1},
	IdxRingCountGiant:          {Kind: HalfNormal, Mean: 1, Sigma: 1, HasClamp: true, ClampLow: 1, ClampHigh: 12},
	IdxRingCountOther:          {Kind: HalfNormal, Mean: 1, Sigma: 0.1667, HasClamp: true, ClampLow: 1, ClampHigh: 4},
}
