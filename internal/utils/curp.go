package utils

import (
	"regexp"
	"strings"
)

// curpPattern matches the 18-character CURP shape: four name letters, a
// yymmdd birth date, sex marker, state code, three internal consonants, a
// homonymy character and a check digit. The check digit itself is not
// verified; the value is otherwise treated as opaque.
var curpPattern = regexp.MustCompile(`^[A-Z][AEIOUX][A-Z]{2}\d{2}(0[1-9]|1[0-2])(0[1-9]|[12]\d|3[01])[HM][A-Z]{2}[B-DF-HJ-NP-TV-Z]{3}[A-Z0-9]\d$`)

// ValidateCURP validates the format of a CURP
func ValidateCURP(curp string) bool {
	curp = strings.ToUpper(strings.TrimSpace(curp))
	return curpPattern.MatchString(curp)
}
