package volume

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Precision is the number of significant digits a volume is shown with.
const Precision = 4

// FormatVolume renders v with Precision significant digits and drops
// insignificant zeros after the decimal point. Integer digits are kept, so
// 1000 renders as "1000" and 4188.79 as "4189".
func FormatVolume(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return trimFraction(toPrecision(v, Precision))
}

// toPrecision mirrors Number.prototype.toPrecision: fixed notation while the
// decimal exponent lies in [-6, p), exponential otherwise. A value lying
// exactly halfway between two p-digit decimals takes the larger magnitude.
func toPrecision(v float64, p int) string {
	if v == 0 {
		v = 0 // drop the sign of negative zero
	}
	sci := strconv.FormatFloat(v, 'e', p-1, 64)
	idx := strings.LastIndexByte(sci, 'e')
	exp, _ := strconv.Atoi(sci[idx+1:])
	digits := strings.Replace(strings.TrimPrefix(sci[:idx], "-"), ".", "", 1)

	// strconv rounds ties to even.
	if up, ok := roundTieUp(v, p, exp); ok {
		digits = up
		if len(digits) > p {
			digits = digits[:p]
			exp++
		}
	}

	sign := ""
	if v < 0 {
		sign = "-"
	}
	return sign + layout(digits, exp, p)
}

// roundTieUp reports whether |v| scaled to p significant digits at exponent
// exp ends in exactly .5 and, if so, returns the digits rounded up.
func roundTieUp(v float64, p, exp int) (string, bool) {
	r := new(big.Rat).SetFloat64(math.Abs(v))
	shift := p - 1 - exp
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(max(shift, -shift))), nil)
	if shift >= 0 {
		r.Mul(r, new(big.Rat).SetInt(pow))
	} else {
		r.Quo(r, new(big.Rat).SetInt(pow))
	}

	twice := r.Mul(r, big.NewRat(2, 1))
	if !twice.IsInt() || twice.Num().Bit(0) == 0 {
		return "", false
	}
	n := new(big.Int).Add(twice.Num(), big.NewInt(1))
	n.Rsh(n, 1)
	return n.String(), true
}

// layout places p significant digits around the decimal exponent exp.
func layout(digits string, exp, p int) string {
	if exp < -6 || exp >= p {
		mantissa := digits[:1]
		if len(digits) > 1 {
			mantissa += "." + digits[1:]
		}
		sign := "+"
		if exp < 0 {
			sign = "-"
			exp = -exp
		}
		return mantissa + "e" + sign + strconv.Itoa(exp)
	}
	if exp >= 0 {
		out := digits[:exp+1]
		if exp+1 < len(digits) {
			out += "." + digits[exp+1:]
		}
		return out
	}
	return "0." + strings.Repeat("0", -exp-1) + digits
}

func trimFraction(s string) string {
	mantissa, exponent := s, ""
	if idx := strings.IndexByte(s, 'e'); idx >= 0 {
		mantissa, exponent = s[:idx], s[idx:]
	}
	if strings.Contains(mantissa, ".") {
		mantissa = strings.TrimRight(mantissa, "0")
		mantissa = strings.TrimSuffix(mantissa, ".")
	}
	return mantissa + exponent
}
