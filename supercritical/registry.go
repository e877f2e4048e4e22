package supercritical

import (
	"fmt"
	"strings"
)

// Correlation is the common signature of every Nusselt number correlation
// in this package.
type Correlation func(re, pr float64, opts ...Option) (float64, error)

type method struct {
	name string
	fn   Correlation
}

var methods = []method{
	{"McAdams", McAdams},
	{"Shitsman", Shitsman},
	{"Griem", Griem},
	{"Jackson", Jackson},
	{"Gupta", Gupta},
	{"Swenson", Swenson},
	{"Xu", Xu},
	{"Mokry", Mokry},
	{"BringerSmith", BringerSmith},
	{"Ornatsky", Ornatsky},
	{"Gorban", Gorban},
	{"Zhu", Zhu},
	{"Bishop", Bishop},
	{"Yamagata", Yamagata},
	{"Kitoh", Kitoh},
	{"KrasnoshchekovProtopopov", KrasnoshchekovProtopopov},
	{"Petukhov", Petukhov},
	{"Krasnoshchekov", Krasnoshchekov},
	{"WattsChou", WattsChou},
}

// Methods returns the names of all registered correlations in a stable order.
func Methods() []string {
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.name
	}
	return names
}

// Lookup returns the correlation registered under name. Matching ignores
// case, underscores and a leading "Nu_" so the literature spellings
// ("Nu_Bringer_Smith") resolve as well.
func Lookup(name string) (Correlation, error) {
	m, err := lookupMethod(name)
	if err != nil {
		return nil, err
	}
	return m.fn, nil
}

// CanonicalName returns the registered spelling of name, as listed by Methods.
func CanonicalName(name string) (string, error) {
	m, err := lookupMethod(name)
	if err != nil {
		return "", err
	}
	return m.name, nil
}

func lookupMethod(name string) (method, error) {
	key := normalizeName(name)
	for _, m := range methods {
		if normalizeName(m.name) == key {
			return m, nil
		}
	}
	return method{}, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

func normalizeName(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimPrefix(key, "nu_")
	return strings.ReplaceAll(key, "_", "")
}
