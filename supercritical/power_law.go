package supercritical

import "math"

/*
McAdams returns the Nusselt number of the McAdams form of the Dittus-Boelter
equation, as applied to supercritical fluids.

	Nu_b = 0.0243 Re_b^0.8 Pr_b^0.4

	Args:
		re: bulk Reynolds number
		pr: bulk Prandtl number

	Returns:
		bulk Nusselt number

	Notes:
		Recommended by Pioro and Duffey as the simplest baseline; it ignores
		all property variation near the pseudocritical point.
*/
func McAdams(re, pr float64, _ ...Option) (float64, error) {
	nu := 0.0243 * math.Pow(re, 0.8) * math.Pow(pr, 0.4)
	return finite("McAdams", re, pr, nu)
}

/*
Shitsman returns the Nusselt number of the Shitsman (1963) correlation.

	Nu_b = 0.023 Re_b^0.8 Pr_min^0.8

	Args:
		re: bulk Reynolds number
		pr: bulk Prandtl number
		WithWallPrandtl: Pr_min is the smaller of the bulk and wall values

	Returns:
		bulk Nusselt number
*/
func Shitsman(re, pr float64, opts ...Option) (float64, error) {
	c := newConditions(opts)
	nu := 0.023 * math.Pow(re, 0.8) * math.Pow(c.minPrandtl(pr), 0.8)
	return finite("Shitsman", re, pr, nu)
}

/*
Griem returns the Nusselt number of the Griem (1996) correlation.

	Nu_b = 0.0169 Re_b^0.8356 Pr_sel^0.432 w

	Args:
		re: bulk Reynolds number
		pr: Prandtl number selected from five points between wall and bulk
		WithEnthalpy: bulk enthalpy, J/kg; w = 1 when omitted

	Returns:
		bulk Nusselt number

	Notes:
		w = 0.82 below 1540 kJ/kg, 1 above 1740 kJ/kg and linear between.
*/
func Griem(re, pr float64, opts ...Option) (float64, error) {
	c := newConditions(opts)

	w := 1.0
	if c.hasH {
		switch {
		case c.h < 1.54e6:
			w = 0.82
		case c.h > 1.74e6:
			w = 1.0
		default:
			w = 0.82 + 9e-7*(c.h-1.54e6)
		}
	}

	nu := 0.0169 * math.Pow(re, 0.8356) * math.Pow(pr, 0.432) * w
	return finite("Griem", re, pr, nu)
}

/*
Gupta returns the Nusselt number of the Gupta et al. (2013) wall-based
correlation.

	Nu_w = 0.004 Re_w^0.923 Pr_w,avg^0.773 (rho_w/rho_b)^0.186 (mu_w/mu_b)^0.366

	Args:
		re: wall Reynolds number
		pr: average Prandtl number at the wall
		WithDensities: optional density correction
		WithViscosities: optional viscosity correction

	Returns:
		wall Nusselt number
*/
func Gupta(re, pr float64, opts ...Option) (float64, error) {
	c := newConditions(opts)
	nu := 0.004 * math.Pow(re, 0.923) * math.Pow(pr, 0.773)
	if c.hasRho {
		nu *= math.Pow(c.rhoW/c.rhoB, 0.186)
	}
	if c.hasMu {
		nu *= math.Pow(c.muW/c.muB, 0.366)
	}
	return finite("Gupta", re, pr, nu)
}

/*
Swenson returns the Nusselt number of the Swenson et al. (1965) correlation.

	Nu_w = 0.00459 Re_w^0.923 Pr_w,avg^0.613 (rho_w/rho_b)^0.231

	Args:
		re: wall Reynolds number
		pr: average Prandtl number at the wall
		WithDensities: optional density correction

	Returns:
		wall Nusselt number
*/
func Swenson(re, pr float64, opts ...Option) (float64, error) {
	c := newConditions(opts)
	nu := 0.00459 * math.Pow(re, 0.923) * math.Pow(pr, 0.613)
	if c.hasRho {
		nu *= math.Pow(c.rhoW/c.rhoB, 0.231)
	}
	return finite("Swenson", re, pr, nu)
}

/*
Xu returns the Nusselt number of the Xu et al. (2005) correlation.

	Nu_b = 0.02269 Re_b^0.8079 Pr_b,avg^0.9213 (rho_w/rho_b)^0.6638 (mu_w/mu_b)^0.8687

	Args:
		re: bulk Reynolds number
		pr: average bulk Prandtl number
		WithDensities: optional density correction
		WithViscosities: optional viscosity correction

	Returns:
		bulk Nusselt number
*/
func Xu(re, pr float64, opts ...Option) (float64, error) {
	c := newConditions(opts)
	nu := 0.02269 * math.Pow(re, 0.8079) * math.Pow(pr, 0.9213)
	if c.hasRho {
		nu *= math.Pow(c.rhoW/c.rhoB, 0.6638)
	}
	if c.hasMu {
		nu *= math.Pow(c.muW/c.muB, 0.8687)
	}
	return finite("Xu", re, pr, nu)
}

/*
Mokry returns the Nusselt number of the Mokry et al. (2010) correlation.

	Nu_b = 0.0061 Re_b^0.904 Pr_b,avg^0.684 (rho_w/rho_b)^0.564

	Args:
		re: bulk Reynolds number
		pr: average bulk Prandtl number
		WithDensities: optional density correction

	Returns:
		bulk Nusselt number
*/
func Mokry(re, pr float64, opts ...Option) (float64, error) {
	c := newConditions(opts)
	nu := 0.0061 * math.Pow(re, 0.904) * math.Pow(pr, 0.684)
	if c.hasRho {
		nu *= math.Pow(c.rhoW/c.rhoB, 0.564)
	}
	return finite("Mokry", re, pr, nu)
}

/*
BringerSmith returns the local Nusselt number of the Bringer and Smith
(1957) correlation.

	Nu_x = 0.0266 Re_x^0.77 Pr_w^0.55

	Args:
		re: Reynolds number at the reference temperature
		pr: Prandtl number at the wall

	Returns:
		Nusselt number at the reference temperature
*/
func BringerSmith(re, pr float64, _ ...Option) (float64, error) {
	nu := 0.0266 * math.Pow(re, 0.77) * math.Pow(pr, 0.55)
	return finite("BringerSmith", re, pr, nu)
}

/*
Ornatsky returns the Nusselt number of the Ornatsky et al. (1970)
correlation.

	Nu_b = 0.023 Re_b^0.8 Pr_min^0.8 (rho_w/rho_b)^0.3

	Args:
		re: bulk Reynolds number
		pr: bulk Prandtl number
		WithWallPrandtl: Pr_min is the smaller of the bulk and wall values
		WithDensities: optional density correction

	Returns:
		bulk Nusselt number
*/
func Ornatsky(re, pr float64, opts ...Option) (float64, error) {
	c := newConditions(opts)
	nu := 0.023 * math.Pow(re, 0.8) * math.Pow(c.minPrandtl(pr), 0.8)
	if c.hasRho {
		nu *= math.Pow(c.rhoW/c.rhoB, 0.3)
	}
	return finite("Ornatsky", re, pr, nu)
}

/*
Gorban returns the Nusselt number of the Gorban et al. (1990) correlation,
fit to R-12 data.

	Nu_b = 0.0059 Re_b^0.90 Pr_b^-0.12

	Args:
		re: bulk Reynolds number
		pr: bulk Prandtl number

	Returns:
		bulk Nusselt number
*/
func Gorban(re, pr float64, _ ...Option) (float64, error) {
	nu := 0.0059 * math.Pow(re, 0.90) * math.Pow(pr, -0.12)
	return finite("Gorban", re, pr, nu)
}

/*
Zhu returns the Nusselt number of the Zhu et al. (2009) wall-based
correlation.

	Nu_w = 0.0068 Re_w^0.9 Pr_w,avg^0.63 (rho_w/rho_b)^0.17 (k_w/k_b)^0.29

	Args:
		re: wall Reynolds number
		pr: average Prandtl number at the wall
		WithDensities: optional density correction
		WithConductivities: optional conductivity correction

	Returns:
		wall Nusselt number
*/
func Zhu(re, pr float64, opts ...Option) (float64, error) {
	c := newConditions(opts)
	nu := 0.0068 * math.Pow(re, 0.9) * math.Pow(pr, 0.63)
	if c.hasRho {
		nu *= math.Pow(c.rhoW/c.rhoB, 0.17)
	}
	if c.hasK {
		nu *= math.Pow(c.kW/c.kB, 0.29)
	}
	return finite("Zhu", re, pr, nu)
}

/*
Bishop returns the Nusselt number of the Bishop et al. (1964) correlation.

	Nu_b = 0.0069 Re_b^0.9 Pr_b,avg^0.66 (rho_w/rho_b)^0.43 (1 + 2.4 D/x)

	Args:
		re: bulk Reynolds number
		pr: average bulk Prandtl number
		WithDensities: optional density correction
		WithEntryLength: optional entrance-region correction

	Returns:
		bulk Nusselt number
*/
func Bishop(re, pr float64, opts ...Option) (float64, error) {
	c := newConditions(opts)
	nu := 0.0069 * math.Pow(re, 0.9) * math.Pow(pr, 0.66)
	if c.hasRho {
		nu *= math.Pow(c.rhoW/c.rhoB, 0.43)
	}
	if c.hasEntry {
		nu *= 1 + 2.4*c.d/c.x
	}
	return finite("Bishop", re, pr, nu)
}

/*
WattsChou returns the Nusselt number of the Watts and Chou (1982)
correlation, including its buoyancy factor.

	Nu_b = 0.021 Re_b^0.8 Pr_b,avg^0.55 (rho_w/rho_b)^0.35 phi

	Args:
		re: bulk Reynolds number
		pr: average bulk Prandtl number
		WithDensities: optional density correction
		WithGrashof: average Grashof number; phi = 1 when omitted
		WithDownwardFlow: use the downward-flow buoyancy factor

	Returns:
		bulk Nusselt number

	Notes:
		Bu = Gr/(Re^2.7 Pr^0.5). Upward flow: phi = (1 - 3000 Bu)^0.295 below
		Bu = 1e-4, (7000 Bu)^0.295 above. Downward flow: phi = (1 + 30000 Bu)^0.295.
*/
func WattsChou(re, pr float64, opts ...Option) (float64, error) {
	c := newConditions(opts)
	nu := 0.021 * math.Pow(re, 0.8) * math.Pow(pr, 0.55)
	if c.hasRho {
		nu *= math.Pow(c.rhoW/c.rhoB, 0.35)
	}
	if c.hasGr {
		bu := c.gr / (math.Pow(re, 2.7) * math.Pow(pr, 0.5))
		var phi float64
		switch {
		case c.downward:
			phi = math.Pow(1+30000*bu, 0.295)
		case bu < 1e-4:
			phi = math.Pow(1-3000*bu, 0.295)
		default:
			phi = math.Pow(7000*bu, 0.295)
		}
		nu *= phi
	}
	return finite("WattsChou", re, pr, nu)
}
