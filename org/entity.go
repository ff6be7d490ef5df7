package org

// entityNames is the recognized subset of the standard org-entities
// table (org-entities.el): backslash-escaped names such as \alpha or
// \copy that the object parser (spec.md §4.7) turns into ENTITY nodes.
// Not exhaustive — the full table numbers in the hundreds — but covers
// the common Greek letters, math symbols, and typographic marks likely
// to appear in real documents.
var entityNames = map[string]bool{
	"alpha": true, "beta": true, "gamma": true, "delta": true, "epsilon": true,
	"zeta": true, "eta": true, "theta": true, "iota": true, "kappa": true,
	"lambda": true, "mu": true, "nu": true, "xi": true, "omicron": true,
	"pi": true, "rho": true, "sigma": true, "tau": true, "upsilon": true,
	"phi": true, "chi": true, "psi": true, "omega": true,
	"Alpha": true, "Beta": true, "Gamma": true, "Delta": true, "Epsilon": true,
	"Theta": true, "Lambda": true, "Xi": true, "Pi": true, "Sigma": true,
	"Phi": true, "Psi": true, "Omega": true,
	"copy": true, "reg": true, "trade": true, "deg": true, "plusminus": true,
	"pm": true, "times": true, "div": true, "infinity": true, "infin": true,
	"nbsp": true, "ldots": true, "dots": true, "mdash": true, "ndash": true,
	"hellip": true, "rarr": true, "larr": true, "rArr": true, "lArr": true,
	"checkmark": true, "star": true, "dagger": true, "S": true, "sect": true,
}

func isEntityName(name string) bool {
	return entityNames[name]
}

// entityNameRegexp-equivalent byte scan: an entity name is a maximal run
// of ASCII letters directly after the backslash.
func scanEntityName(s string) string {
	i := 0
	for i < len(s) && isASCIILetter(s[i]) {
		i++
	}
	return s[:i]
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
