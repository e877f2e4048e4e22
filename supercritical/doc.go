/*
Package supercritical implements empirical correlations for the Nusselt
number of fluids flowing in heated tubes near or above the thermodynamic
critical point.

Every correlation shares one signature:

	nu, err := supercritical.Jackson(1e5, 1.2,
		supercritical.WithDensities(330, 290),
		supercritical.WithHeatCapacities(2080.845, 2048.621),
		supercritical.WithTemperatures(620, 700, 600),
	)

Re and Pr are bulk values unless a correlation notes otherwise. Property
ratios that modify a correlation are passed as options; when an option is
omitted the matching correction factor is dropped, or the documented default
exponent is used.

Numeric domain failures (a zero denominator, a negative base under a
fractional power, log of a non-positive Reynolds number) are not repaired.
They are reported as errors wrapping ErrDomain.

References

	Pioro, I. L. and Duffey, R. B. "Experimental Heat Transfer in Supercritical
	Water Flowing inside Channels (Survey)." Nuclear Engineering and Design
	235, no. 22 (2005): 2407-30.

	Chen, Weiwei, Xiande Fang, Yu Xu, and Xianghui Su. "An Assessment of
	Correlations of Forced Convection Heat Transfer to Water at Supercritical
	Pressure." Annals of Nuclear Energy 76 (2015): 451-60.
*/
package supercritical
