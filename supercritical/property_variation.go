package supercritical

import "math"

// Default exponent of the heat capacity ratio when the temperatures needed
// to select one are not given.
const defaultCpExponent = 0.4

// Prandtl exponent of the Kitoh correlation without its heat flux
// correction, used when enthalpy, mass flux and heat flux are not all given.
const defaultKitohExponent = 0.69

// filonenko returns the Filonenko smooth-tube Darcy friction factor.
func filonenko(re float64) float64 {
	return math.Pow(1.82*math.Log10(re)-1.64, -2)
}

// petukhovKirillov returns the constant-property Nusselt number for a Darcy
// friction factor fd.
func petukhovKirillov(re, pr, fd float64) float64 {
	return fd / 8 * re * pr / (1.07 + 12.7*math.Sqrt(fd/8)*(math.Pow(pr, 2.0/3.0)-1))
}

/*
Jackson returns the Nusselt number of the Jackson (2002) correlation, a
modification of Jackson and Hall (1979).

	Nu_b = 0.0183 Re_b^0.82 Pr_b^0.5 (rho_w/rho_b)^0.3 (Cp_avg/Cp_b)^n

	Args:
		re: bulk Reynolds number
		pr: bulk Prandtl number
		WithDensities: optional density correction
		WithHeatCapacities: optional heat capacity correction
		WithTemperatures: selects n; n = 0.4 when omitted

	Returns:
		bulk Nusselt number

	Notes:
		n = 0.4 for T_b < T_w <= T_pc or 1.2 T_pc <= T_b < T_w
		n = 0.4 + 0.2 (T_w/T_pc - 1) for T_b <= T_pc <= T_w
		n = 0.4 + 0.2 (T_w/T_pc - 1)(1 - 5 (T_b/T_pc - 1)) otherwise,
		which includes cooling (T_w < T_b)
*/
func Jackson(re, pr float64, opts ...Option) (float64, error) {
	c := newConditions(opts)
	nu := 0.0183 * math.Pow(re, 0.82) * math.Pow(pr, 0.5)
	if c.hasRho {
		nu *= math.Pow(c.rhoW/c.rhoB, 0.3)
	}
	if c.hasCp {
		nu *= math.Pow(c.cpAvg/c.cpB, c.jacksonExponent())
	}
	return finite("Jackson", re, pr, nu)
}

func (c *conditions) jacksonExponent() float64 {
	if !c.hasT {
		return defaultCpExponent
	}
	switch {
	case c.tB < c.tW && c.tW <= c.tPc, 1.2*c.tPc <= c.tB && c.tB < c.tW:
		return 0.4
	case c.tB <= c.tPc && c.tPc <= c.tW:
		return 0.4 + 0.2*(c.tW/c.tPc-1)
	default:
		return 0.4 + 0.2*(c.tW/c.tPc-1)*(1-5*(c.tB/c.tPc-1))
	}
}

/*
Krasnoshchekov returns the Nusselt number of the Krasnoshchekov et al.
(1967) correlation.

	Nu_b = Nu_0 (rho_w/rho_b)^0.3 (Cp_avg/Cp_b)^n

	Args:
		re: bulk Reynolds number
		pr: bulk Prandtl number
		WithDensities: optional density correction
		WithHeatCapacities: optional heat capacity correction
		WithTemperatures: selects n; n = 0.4 when omitted

	Returns:
		bulk Nusselt number

	Notes:
		Nu_0 is the Petukhov-Kirillov constant-property value with the
		Filonenko friction factor.
		n = 0.4 for T_b < T_w <= T_pc or 1.2 T_pc <= T_b < T_w
		n = n1 = 0.22 + 0.18 T_w/T_pc for T_b < T_pc < T_w
		n = n1 + (5 n1 - 2)(1 - T_b/T_pc) otherwise, which includes cooling
*/
func Krasnoshchekov(re, pr float64, opts ...Option) (float64, error) {
	c := newConditions(opts)
	nu := petukhovKirillov(re, pr, filonenko(re))
	if c.hasRho {
		nu *= math.Pow(c.rhoW/c.rhoB, 0.3)
	}
	if c.hasCp {
		nu *= math.Pow(c.cpAvg/c.cpB, c.krasnoshchekovExponent())
	}
	return finite("Krasnoshchekov", re, pr, nu)
}

func (c *conditions) krasnoshchekovExponent() float64 {
	if !c.hasT {
		return defaultCpExponent
	}
	if c.tB < c.tW && c.tW <= c.tPc || 1.2*c.tPc <= c.tB && c.tB < c.tW {
		return 0.4
	}
	n1 := 0.22 + 0.18*c.tW/c.tPc
	if c.tB < c.tPc && c.tPc < c.tW {
		return n1
	}
	return n1 + (5*n1-2)*(1-c.tB/c.tPc)
}

/*
KrasnoshchekovProtopopov returns the Nusselt number of the Krasnoshchekov
and Protopopov (1966) correlation.

	Nu_b = Nu_0 (mu_b/mu_w)^0.11 (k_b/k_w)^-0.33 (Cp_avg/Cp_b)^0.35

	Args:
		re: bulk Reynolds number
		pr: average bulk Prandtl number
		WithViscosities: optional viscosity correction
		WithConductivities: optional conductivity correction
		WithHeatCapacities: optional heat capacity correction

	Returns:
		bulk Nusselt number
*/
func KrasnoshchekovProtopopov(re, pr float64, opts ...Option) (float64, error) {
	c := newConditions(opts)
	nu := petukhovKirillov(re, pr, filonenko(re))
	if c.hasMu {
		nu *= math.Pow(c.muB/c.muW, 0.11)
	}
	if c.hasK {
		nu *= math.Pow(c.kB/c.kW, -0.33)
	}
	if c.hasCp {
		nu *= math.Pow(c.cpAvg/c.cpB, 0.35)
	}
	return finite("KrasnoshchekovProtopopov", re, pr, nu)
}

/*
Petukhov returns the Nusselt number of the Petukhov et al. (1961)
correlation with the supercritical friction factor correction.

	Nu_b = (f/8) Re_b Pr_b / (1 + 900/Re_b + 12.7 sqrt(f/8)(Pr_b^(2/3) - 1))
	f = f_0 (rho_w/rho_b)^0.4 (mu_w/mu_b)^0.2

	Args:
		re: bulk Reynolds number
		pr: bulk Prandtl number
		WithDensities: optional friction factor correction
		WithViscosities: optional friction factor correction

	Returns:
		bulk Nusselt number
*/
func Petukhov(re, pr float64, opts ...Option) (float64, error) {
	c := newConditions(opts)
	fd := filonenko(re)
	if c.hasRho {
		fd *= math.Pow(c.rhoW/c.rhoB, 0.4)
	}
	if c.hasMu {
		fd *= math.Pow(c.muW/c.muB, 0.2)
	}
	nu := fd / 8 * re * pr / (1 + 900/re + 12.7*math.Sqrt(fd/8)*(math.Pow(pr, 2.0/3.0)-1))
	return finite("Petukhov", re, pr, nu)
}

/*
Yamagata returns the Nusselt number of the Yamagata et al. (1972)
correlation.

	Nu_b = 0.0135 Re_b^0.85 Pr_b^0.8 F_c

	Args:
		re: bulk Reynolds number
		pr: bulk Prandtl number
		WithPseudocriticalPrandtl, WithHeatCapacities, WithTemperatures:
			all three are needed for F_c; F_c = 1 otherwise

	Returns:
		bulk Nusselt number

	Notes:
		E = (T_pc - T_b)/(T_w - T_b)
		E > 1:      F_c = 1
		0 <= E <= 1: F_c = 0.67 Pr_pc^-0.05 (Cp_avg/Cp_b)^n1, n1 = -0.77 (1 + 1/Pr_pc) + 1.49
		E < 0:      F_c = (Cp_avg/Cp_b)^n2, n2 = 1.44 (1 + 1/Pr_pc) - 0.53
*/
func Yamagata(re, pr float64, opts ...Option) (float64, error) {
	c := newConditions(opts)

	fc := 1.0
	if c.hasPrPc && c.hasCp && c.hasT {
		e := (c.tPc - c.tB) / (c.tW - c.tB)
		switch {
		case e > 1:
			fc = 1.0
		case e >= 0:
			n1 := -0.77*(1+1/c.prPc) + 1.49
			fc = 0.67 * math.Pow(c.prPc, -0.05) * math.Pow(c.cpAvg/c.cpB, n1)
		case e < 0:
			n2 := 1.44*(1+1/c.prPc) - 0.53
			fc = math.Pow(c.cpAvg/c.cpB, n2)
		default:
			// E is NaN; let it reach the domain check.
			fc = e
		}
	}

	nu := 0.0135 * math.Pow(re, 0.85) * math.Pow(pr, 0.8) * fc
	return finite("Yamagata", re, pr, nu)
}

/*
Kitoh returns the Nusselt number of the Kitoh et al. (1999) correlation.

	Nu_b = 0.015 Re_b^0.85 Pr_b^m

	Args:
		re: bulk Reynolds number
		pr: bulk Prandtl number
		WithEnthalpy, WithMassFlux, WithHeatFlux: all three are needed for m;
			m = 0.69 otherwise

	Returns:
		bulk Nusselt number

	Notes:
		m = 0.69 - 81000/q_dht + f_c q, q_dht = 200 G^1.2
		f_c = 2.9e-8 + 0.11/q_dht   for H < 1500 kJ/kg
		f_c = -8.7e-8 - 0.65/q_dht  for 1500 <= H <= 3300 kJ/kg
		f_c = -9.7e-7 + 1.3/q_dht   for H > 3300 kJ/kg
*/
func Kitoh(re, pr float64, opts ...Option) (float64, error) {
	c := newConditions(opts)
	nu := 0.015 * math.Pow(re, 0.85) * math.Pow(pr, c.kitohExponent())
	return finite("Kitoh", re, pr, nu)
}

func (c *conditions) kitohExponent() float64 {
	if !(c.hasH && c.hasG && c.hasQ) {
		return defaultKitohExponent
	}
	qdht := 200 * math.Pow(c.g, 1.2)

	var fc float64
	switch {
	case c.h < 1.5e6:
		fc = 2.9e-8 + 0.11/qdht
	case c.h <= 3.3e6:
		fc = -8.7e-8 - 0.65/qdht
	default:
		fc = -9.7e-7 + 1.3/qdht
	}
	return 0.69 - 81000/qdht + fc*c.q
}
