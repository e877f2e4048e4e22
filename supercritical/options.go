package supercritical

// Option supplies an optional property or flow parameter to a correlation.
// Correlations ignore options they do not use.
type Option func(*conditions)

// conditions holds the optional inputs of a single evaluation. The has*
// flags distinguish an omitted parameter from one given as zero, so that a
// zero wall property surfaces as a domain error rather than being skipped.
type conditions struct {
	rhoW, rhoB float64 // wall, bulk density, kg/m3
	hasRho     bool

	muW, muB float64 // wall, bulk viscosity, Pa s
	hasMu    bool

	cpAvg, cpB float64 // average, bulk isobaric heat capacity, J/kg/K
	hasCp      bool

	kW, kB float64 // wall, bulk thermal conductivity, W/m/K
	hasK   bool

	tB, tW, tPc float64 // bulk, wall, pseudocritical temperature, K
	hasT        bool

	prPc    float64 // Prandtl number at the pseudocritical temperature
	hasPrPc bool

	prW    float64 // Prandtl number at the wall temperature
	hasPrW bool

	h    float64 // bulk specific enthalpy, J/kg
	hasH bool

	g    float64 // mass flux, kg/m2/s
	hasG bool

	q    float64 // wall heat flux, W/m2
	hasQ bool

	d, x     float64 // tube diameter and distance from the inlet, m
	hasEntry bool

	gr    float64 // average Grashof number
	hasGr bool

	downward bool
}

func newConditions(opts []Option) conditions {
	var c conditions
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithDensities sets the fluid density at the wall and bulk temperatures, kg/m3.
func WithDensities(rhoW, rhoB float64) Option {
	return func(c *conditions) {
		c.rhoW, c.rhoB, c.hasRho = rhoW, rhoB, true
	}
}

// WithViscosities sets the fluid viscosity at the wall and bulk temperatures, Pa s.
func WithViscosities(muW, muB float64) Option {
	return func(c *conditions) {
		c.muW, c.muB, c.hasMu = muW, muB, true
	}
}

// WithHeatCapacities sets the average heat capacity between the wall and bulk
// temperatures, (H_w - H_b)/(T_w - T_b), and the bulk heat capacity, J/kg/K.
func WithHeatCapacities(cpAvg, cpB float64) Option {
	return func(c *conditions) {
		c.cpAvg, c.cpB, c.hasCp = cpAvg, cpB, true
	}
}

// WithConductivities sets the thermal conductivity at the wall and bulk
// temperatures, W/m/K.
func WithConductivities(kW, kB float64) Option {
	return func(c *conditions) {
		c.kW, c.kB, c.hasK = kW, kB, true
	}
}

// WithTemperatures sets the bulk, wall and pseudocritical temperatures, K.
func WithTemperatures(tB, tW, tPc float64) Option {
	return func(c *conditions) {
		c.tB, c.tW, c.tPc, c.hasT = tB, tW, tPc, true
	}
}

// WithPseudocriticalPrandtl sets the Prandtl number at the pseudocritical
// temperature.
func WithPseudocriticalPrandtl(prPc float64) Option {
	return func(c *conditions) {
		c.prPc, c.hasPrPc = prPc, true
	}
}

// WithWallPrandtl sets the Prandtl number at the wall temperature.
func WithWallPrandtl(prW float64) Option {
	return func(c *conditions) {
		c.prW, c.hasPrW = prW, true
	}
}

// WithEnthalpy sets the bulk specific enthalpy, J/kg.
func WithEnthalpy(h float64) Option {
	return func(c *conditions) {
		c.h, c.hasH = h, true
	}
}

// WithMassFlux sets the mass flux, kg/m2/s.
func WithMassFlux(g float64) Option {
	return func(c *conditions) {
		c.g, c.hasG = g, true
	}
}

// WithHeatFlux sets the wall heat flux, W/m2.
func WithHeatFlux(q float64) Option {
	return func(c *conditions) {
		c.q, c.hasQ = q, true
	}
}

// WithEntryLength sets the tube diameter and the distance from the tube
// inlet, both in m.
func WithEntryLength(d, x float64) Option {
	return func(c *conditions) {
		c.d, c.x, c.hasEntry = d, x, true
	}
}

// WithGrashof sets the average Grashof number, used for buoyancy effects.
func WithGrashof(gr float64) Option {
	return func(c *conditions) {
		c.gr, c.hasGr = gr, true
	}
}

// WithDownwardFlow marks the flow as vertical downward. Upward is assumed
// otherwise.
func WithDownwardFlow() Option {
	return func(c *conditions) {
		c.downward = true
	}
}

// minPrandtl is the lesser of the bulk and, if given, the wall Prandtl number.
func (c *conditions) minPrandtl(pr float64) float64 {
	if c.hasPrW && c.prW < pr {
		return c.prW
	}
	return pr
}
