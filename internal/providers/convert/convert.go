package convert

import (
	"fmt"
	"strconv"

	"github.com/mathforge/mathforge/internal/providers/common"
)

// BinaryToDecimal parses a binary numeral string.
func BinaryToDecimal(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 2, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid binary string %q", common.ErrInvalidFormat, s)
	}
	return n, nil
}

// DecimalToBinary renders a non-negative integer as a binary string.
func DecimalToBinary(n int64) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: cannot encode negative number %d", common.ErrInvalidArgument, n)
	}
	return strconv.FormatInt(n, 2), nil
}

// HexToDecimal parses a hexadecimal numeral string.
func HexToDecimal(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid hexadecimal string %q", common.ErrInvalidFormat, s)
	}
	return n, nil
}

// DecimalToHex renders a non-negative integer as a lowercase
// hexadecimal string.
func DecimalToHex(n int64) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: cannot encode negative number %d", common.ErrInvalidArgument, n)
	}
	return strconv.FormatInt(n, 16), nil
}

// SumOfDigits adds the decimal digits of |n|.
func SumOfDigits(n int64) int64 {
	if n < 0 {
		n = -n
	}
	sum := int64(0)
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// ProductOfDigits multiplies the decimal digits of |n|. Zero for
// n == 0, whose single digit is zero.
func ProductOfDigits(n int64) int64 {
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return 0
	}
	product := int64(1)
	for n > 0 {
		product *= n % 10
		n /= 10
	}
	return product
}

// IsArmstrong reports whether n equals the sum of its digits each
// raised to the power of the digit count. False for negatives.
func IsArmstrong(n int64) bool {
	if n < 0 {
		return false
	}

	digits := strconv.FormatInt(n, 10)
	power := len(digits)

	sum := int64(0)
	for _, d := range digits {
		term := intPow(int64(d-'0'), power)
		// Exceeding n already rules n out; checking before the add
		// also keeps the sum from overflowing on 19-digit inputs.
		if term > n-sum {
			return false
		}
		sum += term
	}
	return sum == n
}

// intPow computes base^exp in integer arithmetic. With base <= 9 and
// exp <= 19 the result stays within int64.
func intPow(base int64, exp int) int64 {
	result := int64(1)
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

// ArmstrongUpTo returns all Armstrong numbers in [1, limit].
func ArmstrongUpTo(limit int64) []int64 {
	var result []int64
	for n := int64(1); n <= limit; n++ {
		if IsArmstrong(n) {
			result = append(result, n)
		}
	}
	return result
}
