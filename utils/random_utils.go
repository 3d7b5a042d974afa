package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// RandomDigits 生成指定长度的安全随机数字串，允许以0开头
func RandomDigits(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("length must be positive")
	}

	ten := big.NewInt(10)
	buf := make([]byte, n)
	for i := range buf {
		d, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		buf[i] = byte('0' + d.Int64())
	}
	return string(buf), nil
}
