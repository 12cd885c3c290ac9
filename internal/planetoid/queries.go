package planetoid

import "github.com/thousandworlds/planetoid/internal/surface"

// These thin wrappers are the spec §4.10 surface query layer as seen by
// a caller holding a *Planetoid: each delegates to the pure functions in
// internal/surface over the cached surface.Body view, so no query here
// mutates the body. Every time-dependent query takes tSeconds explicitly
// rather than reading an ambient clock (spec §9 Design Notes).

func (p *Planetoid) ElevationAtM(latDeg, lonDeg float64) float64 {
	return surface.ElevationAtM(p.SurfaceBody(), latDeg, lonDeg)
}

func (p *Planetoid) TemperatureAtK(tSeconds, latDeg, lonDeg float64) float64 {
	return surface.TemperatureAtK(p.SurfaceBody(), tSeconds, latDeg, lonDeg)
}

func (p *Planetoid) PrecipitationAtMM(tSeconds, latDeg, lonDeg, deltaYears float64) surface.Precipitation {
	return surface.PrecipitationAt(p.SurfaceBody(), tSeconds, latDeg, lonDeg, deltaYears)
}

func (p *Planetoid) HumidityAt(latDeg, lonDeg float64) float64 {
	return surface.HumidityAt(p.SurfaceBody(), latDeg, lonDeg)
}

func (p *Planetoid) SlopeAt(latDeg, lonDeg float64) float64 {
	return surface.SlopeAt(p.SurfaceBody(), latDeg, lonDeg)
}

func (p *Planetoid) AtmosphericPressureAtM(elevationM float64) float64 {
	return surface.AtmosphericPressureAtM(p.SurfaceBody(), elevationM)
}

func (p *Planetoid) IlluminationAt(tSeconds, latDeg, lonDeg float64) float64 {
	return surface.IlluminationAt(p.SurfaceBody(), tSeconds, latDeg, lonDeg)
}

func (p *Planetoid) SunriseSunset(tSeconds, latDeg float64) (sunrise, sunset *float64) {
	return surface.SunriseSunset(p.SurfaceBody(), tSeconds, latDeg)
}

func (p *Planetoid) ResourceRichnessAt(latDeg, lonDeg float64) float64 {
	return surface.ResourceRichnessAt(p.SurfaceBody(), latDeg, lonDeg)
}
