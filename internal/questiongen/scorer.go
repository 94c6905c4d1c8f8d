package questiongen

import "math/big"

// DigitRuns returns the maximal runs of consecutive digits in sequence, in
// order. A run ending the sequence is included.
func DigitRuns(sequence string) []string {
	var runs []string
	start := -1
	for i := 0; i < len(sequence); i++ {
		if isDigit(sequence[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			runs = append(runs, sequence[start:i])
			start = -1
		}
	}
	if start >= 0 {
		runs = append(runs, sequence[start:])
	}
	return runs
}

// Score counts the digit runs of sequence that satisfy typ.
func Score(sequence string, typ Type, rule PrimeRule) int {
	count := 0
	for _, run := range DigitRuns(sequence) {
		if matches(run, typ, rule) {
			count++
		}
	}
	return count
}

// matches reports whether the decimal run satisfies typ. Parity only needs
// the last digit; primality parses the whole run since runs can exceed int64.
func matches(run string, typ Type, rule PrimeRule) bool {
	odd := (run[len(run)-1]-'0')%2 == 1
	switch typ {
	case TypeEven:
		return !odd
	case TypeOdd:
		return odd
	case TypePrime:
		if rule == PrimeRuleOdd {
			return odd
		}
		n, ok := new(big.Int).SetString(run, 10)
		return ok && IsPrime(n)
	}
	return false
}

// IsPrime reports whether n is prime. Values below 2 are not prime.
func IsPrime(n *big.Int) bool {
	if n.Sign() <= 0 {
		return false
	}
	if n.IsInt64() {
		return isPrimeInt64(n.Int64())
	}
	// ProbablyPrime is exact for inputs below 2^64 and has error at most
	// 4^-20 above that.
	return n.ProbablyPrime(20)
}

func isPrimeInt64(n int64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	if n > 1<<40 {
		return big.NewInt(n).ProbablyPrime(20)
	}
	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
