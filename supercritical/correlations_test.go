package supercritical

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Flow condition shared by the reference cases.
const (
	testRe = 1e5
	testPr = 1.2
)

var (
	densities      = WithDensities(330, 290)
	viscosities    = WithViscosities(0.8e-4, 1e-4)
	heatCapacities = WithHeatCapacities(2080.845, 2048.621)
	conductivities = WithConductivities(0.06, 0.07)
)

func TestCorrelationReferenceValues(t *testing.T) {
	tests := []struct {
		name string
		fn   Correlation
		opts []Option
		want float64
	}{
		{"McAdams", McAdams, nil, 261.3838629346147},
		{"Shitsman", Shitsman, nil, 266.1171311047253},
		{"Shitsman wall Pr lower", Shitsman, []Option{WithWallPrandtl(1.1)}, 248.22297941874504},
		{"Shitsman wall Pr higher", Shitsman, []Option{WithWallPrandtl(2.0)}, 266.1171311047253},
		{"Griem", Griem, nil, 275.4818576600527},
		{"Griem enthalpy", Griem, []Option{WithEnthalpy(1.6e6)}, 240.77114359488607},
		{"Jackson", Jackson, nil, 252.37231572974918},
		{"Jackson full", Jackson, []Option{densities, heatCapacities, WithTemperatures(620, 700, 600)}, 264.1046334957799},
		{"Gupta", Gupta, nil, 189.78727690467736},
		{"Gupta full", Gupta, []Option{densities, viscosities}, 179.1577480880061},
		{"Swenson", Swenson, nil, 211.51968418167206},
		{"Swenson full", Swenson, []Option{densities}, 217.92827034803668},
		{"Xu", Xu, nil, 293.9572513612297},
		{"Xu full", Xu, []Option{densities, viscosities}, 263.8446010803975},
		{"Mokry", Mokry, nil, 228.8178008454556},
		{"Mokry full", Mokry, []Option{densities}, 246.11563191569923},
		{"BringerSmith", BringerSmith, nil, 208.17631753279107},
		{"Ornatsky", Ornatsky, nil, 266.1171311047253},
		{"Ornatsky full", Ornatsky, []Option{WithWallPrandtl(1.1), densities}, 258.0339001475479},
		{"Gorban", Gorban, nil, 182.5367282733999},
		{"Zhu", Zhu, nil, 241.2087720246979},
		{"Zhu full", Zhu, []Option{densities, conductivities}, 235.78612158633683},
		{"Bishop", Bishop, nil, 246.09835634820243},
		{"Bishop full", Bishop, []Option{densities, WithEntryLength(0.01, 0.5)}, 272.6464522035308},
		{"Yamagata", Yamagata, nil, 277.7657957034424},
		{"Yamagata 0<=E<=1", Yamagata, []Option{WithPseudocriticalPrandtl(1.5), heatCapacities, WithTemperatures(580, 650, 600)}, 182.95733039944722},
		{"Yamagata E<0", Yamagata, []Option{WithPseudocriticalPrandtl(1.5), heatCapacities, WithTemperatures(620, 650, 600)}, 285.9919657830664},
		{"Kitoh", Kitoh, nil, 302.5006546293724},
		{"Kitoh full", Kitoh, []Option{WithEnthalpy(2e6), WithMassFlux(1000), WithHeatFlux(5e5)}, 273.46792303323235},
		{"Kitoh low enthalpy", Kitoh, []Option{WithEnthalpy(1.3e6), WithMassFlux(1500), WithHeatFlux(5e6)}, 331.80234139591306},
		{"Kitoh high enthalpy", Kitoh, []Option{WithEnthalpy(3.5e6), WithMassFlux(1500), WithHeatFlux(5e6)}, 308.40146536866945},
		{"KrasnoshchekovProtopopov", KrasnoshchekovProtopopov, nil, 234.82855185610364},
		{"KrasnoshchekovProtopopov full", KrasnoshchekovProtopopov, []Option{viscosities, conductivities, heatCapacities}, 229.9804395067031},
		{"Petukhov", Petukhov, nil, 248.0091408787574},
		{"Petukhov full", Petukhov, []Option{densities, viscosities}, 249.70210924114224},
		{"Krasnoshchekov", Krasnoshchekov, nil, 234.82855185610364},
		{"Krasnoshchekov full", Krasnoshchekov, []Option{densities, heatCapacities, WithTemperatures(610, 700, 600)}, 245.7442274108651},
		{"WattsChou", WattsChou, nil, 232.15015611819126},
		{"WattsChou low buoyancy", WattsChou, []Option{densities, WithGrashof(1e9)}, 236.48532752144922},
		{"WattsChou high buoyancy", WattsChou, []Option{WithGrashof(1e11)}, 563.4996726263984},
		{"WattsChou downward", WattsChou, []Option{WithGrashof(1e9), WithDownwardFlow()}, 279.0549032438372},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(testRe, testPr, tt.opts...)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.want, got, 1e-12)
		})
	}
}

func TestUnusedOptionsAreIgnored(t *testing.T) {
	base, err := McAdams(testRe, testPr)
	require.NoError(t, err)

	got, err := McAdams(testRe, testPr, densities, viscosities, WithGrashof(1e9))
	require.NoError(t, err)
	assert.Equal(t, base, got)

	base, err = Swenson(testRe, testPr, densities)
	require.NoError(t, err)
	got, err = Swenson(testRe, testPr, densities, conductivities, WithEnthalpy(2e6))
	require.NoError(t, err)
	assert.Equal(t, base, got)
}

func TestDefaultExponents(t *testing.T) {
	var c conditions
	assert.Equal(t, 0.4, c.jacksonExponent())
	assert.Equal(t, 0.4, c.krasnoshchekovExponent())
	assert.Equal(t, 0.69, c.kitohExponent())

	// Kitoh needs all of H, G and q.
	c = newConditions([]Option{WithEnthalpy(2e6), WithMassFlux(1000)})
	assert.Equal(t, 0.69, c.kitohExponent())

	c = newConditions([]Option{WithEnthalpy(2e6), WithMassFlux(1000), WithHeatFlux(5e5)})
	assert.InEpsilon(t, 0.136587054403555, c.kitohExponent(), 1e-12)

	// Without heat flux and with a huge mass flux the correction vanishes.
	c = newConditions([]Option{WithEnthalpy(1e6), WithMassFlux(1e9), WithHeatFlux(0)})
	assert.InDelta(t, 0.69, c.kitohExponent(), 1e-6)
}

func TestKitohEnthalpyBands(t *testing.T) {
	tests := []struct {
		name string
		h    float64
		want float64
	}{
		{"below 1500 kJ/kg", 1.3e6, 1.197104011576966},
		{"at 1500 kJ/kg", 1.5e6, -2.3167877666585808},
		{"at 3300 kJ/kg", 3.3e6, -2.3167877666585808},
		{"above 3300 kJ/kg", 3.5e6, 0.7959608748668354},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newConditions([]Option{WithEnthalpy(tt.h), WithMassFlux(1500), WithHeatFlux(5e6)})
			assert.InEpsilon(t, tt.want, c.kitohExponent(), 1e-12)
		})
	}
}

func TestHeatCapacityExponents(t *testing.T) {
	tests := []struct {
		name           string
		tB, tW, tPc    float64
		jackson        float64
		krasnoshchekov float64
	}{
		{"wall below pseudocritical", 550, 590, 600, 0.4, 0.4},
		{"bulk far above pseudocritical", 730, 800, 600, 0.4, 0.4},
		{"straddling pseudocritical", 580, 700, 600, 0.4 + 0.2*(700.0/600-1), 0.22 + 0.18*700.0/600},
		{"bulk just above pseudocritical", 620, 700, 600, 0.4277777777777778, 0.22 + 0.18*700.0/600 + (5*(0.22+0.18*700.0/600)-2)*(1-620.0/600)},
		{"Krasnoshchekov reference", 610, 700, 600, 0.4 + 0.2*(700.0/600-1)*(1-5*(610.0/600-1)), 0.4275},
		{"cooling below pseudocritical", 590, 570, 600, 0.38916666666666666, 0.39025},
		{"cooling far above pseudocritical", 800, 750, 600, 0.4 + 0.2*(750.0/600-1)*(1-5*(800.0/600-1)), 0.22 + 0.18*750.0/600 + (5*(0.22+0.18*750.0/600)-2)*(1-800.0/600)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newConditions([]Option{WithTemperatures(tt.tB, tt.tW, tt.tPc)})
			assert.InDelta(t, tt.jackson, c.jacksonExponent(), 1e-12)
			assert.InDelta(t, tt.krasnoshchekov, c.krasnoshchekovExponent(), 1e-12)
		})
	}
}

func TestPiecewiseContinuity(t *testing.T) {
	const tPc = 600.0
	const eps = 1e-9

	// Both exponents return to 0.4 as T_b approaches 1.2 T_pc from below.
	c := newConditions([]Option{WithTemperatures(1.2*tPc-eps, 800, tPc)})
	assert.InDelta(t, 0.4, c.jacksonExponent(), 1e-9)
	assert.InDelta(t, 0.4, c.krasnoshchekovExponent(), 1e-9)

	// Jackson's two straddling branches meet at T_b = T_pc.
	below := newConditions([]Option{WithTemperatures(tPc, 700, tPc)})
	above := newConditions([]Option{WithTemperatures(tPc+eps, 700, tPc)})
	assert.InDelta(t, below.jacksonExponent(), above.jacksonExponent(), 1e-9)

	// Krasnoshchekov's n1 branch meets the blended branch at T_b = T_pc.
	below = newConditions([]Option{WithTemperatures(tPc-eps, 700, tPc)})
	above = newConditions([]Option{WithTemperatures(tPc, 700, tPc)})
	assert.InDelta(t, below.krasnoshchekovExponent(), above.krasnoshchekovExponent(), 1e-9)

	// Griem's weight is 1 at the upper enthalpy bound.
	plain, err := Griem(testRe, testPr)
	require.NoError(t, err)
	atBound, err := Griem(testRe, testPr, WithEnthalpy(1.74e6))
	require.NoError(t, err)
	assert.InEpsilon(t, plain, atBound, 1e-12)

	low, err := Griem(testRe, testPr, WithEnthalpy(1.0e6))
	require.NoError(t, err)
	atLower, err := Griem(testRe, testPr, WithEnthalpy(1.54e6))
	require.NoError(t, err)
	assert.InEpsilon(t, low, atLower, 1e-12)
	assert.InEpsilon(t, 0.82*plain, low, 1e-12)

	// Watts-Chou upward branches meet at Bu = 1e-4.
	gr := 1e-4 * math.Pow(testRe, 2.7) * math.Pow(testPr, 0.5)
	left, err := WattsChou(testRe, testPr, WithGrashof(gr*(1-1e-12)))
	require.NoError(t, err)
	right, err := WattsChou(testRe, testPr, WithGrashof(gr))
	require.NoError(t, err)
	assert.InEpsilon(t, left, right, 1e-9)
}

func TestYamagataOutsidePseudocriticalRegion(t *testing.T) {
	plain, err := Yamagata(testRe, testPr)
	require.NoError(t, err)

	// E = 2: the wall stays below the pseudocritical temperature.
	got, err := Yamagata(testRe, testPr, WithPseudocriticalPrandtl(1.5), heatCapacities, WithTemperatures(500, 550, 600))
	require.NoError(t, err)
	assert.Equal(t, plain, got)

	// Partial inputs leave F_c at 1.
	got, err = Yamagata(testRe, testPr, heatCapacities, WithTemperatures(580, 650, 600))
	require.NoError(t, err)
	assert.Equal(t, plain, got)
}

func TestDomainErrors(t *testing.T) {
	tests := []struct {
		name string
		fn   Correlation
		re   float64
		opts []Option
	}{
		{"negative Re under fractional power", McAdams, -1e5, nil},
		{"negative Re in friction factor", Petukhov, -1e5, nil},
		{"zero bulk density", Gupta, testRe, []Option{WithDensities(330, 0)}},
		{"negative density ratio", Jackson, testRe, []Option{WithDensities(-330, 290)}},
		{"zero entry distance", Bishop, testRe, []Option{WithEntryLength(0.01, 0)}},
		{"zero bulk heat capacity", KrasnoshchekovProtopopov, testRe, []Option{WithHeatCapacities(2080, 0)}},
		{"equal temperatures", Yamagata, testRe, []Option{WithPseudocriticalPrandtl(1.5), heatCapacities, WithTemperatures(600, 600, 600)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nu, err := tt.fn(tt.re, testPr, tt.opts...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDomain))
			assert.True(t, math.IsNaN(nu) || math.IsInf(nu, 0))

			var de *DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.re, de.Re)
			assert.Equal(t, testPr, de.Pr)
		})
	}
}

func TestDomainErrorMessage(t *testing.T) {
	_, err := McAdams(-1, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "McAdams")
	assert.Contains(t, err.Error(), ErrDomain.Error())
}
