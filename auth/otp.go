package auth

import (
	"crypto/rand"
	"math/big"
	"strconv"

	goerrors "github.com/goliatone/go-errors"
)

const (
	otpMin  = 100000
	otpSpan = 900000
)

// OTPGenerator produces 6 digit codes drawn uniformly from
// [100000, 999999] using crypto/rand.
type OTPGenerator struct{}

var _ CodeGenerator = OTPGenerator{}

func (OTPGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpSpan))
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to generate OTP")
	}
	return strconv.FormatInt(otpMin+n.Int64(), 10), nil
}
