package rhodix

// Plane is a sector floor or ceiling
type Plane struct {
	Texture  int
	Z        float64
	HasSlope bool

	// Slope coefficients, as stored in the sector record (0x26 floor, 0x36 ceiling)
	SlopeA, SlopeB, SlopeC, SlopeD int32
}

// ZatPoint returns the plane height at (x, y). Sloped planes truncate x and y to integers before
// applying the coefficients, and all arithmetic is 32 bit, as the engine's fixed point code does.
func (p *Plane) ZatPoint(x, y float64) float64 {
	if !p.HasSlope || p.SlopeB == 0 {
		return p.Z
	}
	return float64((-(p.SlopeA * int32(x)) - p.SlopeC*int32(y) - p.SlopeD) / p.SlopeB)
}
