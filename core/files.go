package core

import (
	"os"
	"strconv"
	"strings"

	"powtool/pow"

	"github.com/pkg/errors"
)

// Value files hold a single decimal integer with no trailing newline.
const valueFileMode = 0644

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrFileNotFound, "%s", path)
		}
		return nil, errors.Wrapf(ErrIO, "read %s: %v", path, err)
	}
	return data, nil
}

func writeFile(path string, value string) error {
	if err := os.WriteFile(path, []byte(value), valueFileMode); err != nil {
		return errors.Wrapf(ErrIO, "write %s: %v", path, err)
	}
	return nil
}

// ReadInput returns the raw bytes of the challenge input.
func ReadInput(path string) ([]byte, error) {
	return readFile(path)
}

func ReadTarget(path string) (pow.Target, error) {
	data, err := readFile(path)
	if err != nil {
		return pow.Target{}, err
	}
	target, err := pow.ParseTarget(string(data))
	if err != nil {
		return pow.Target{}, errors.Wrapf(ErrParse, "target file %s: %v", path, err)
	}
	return target, nil
}

func WriteTarget(path string, target pow.Target) error {
	return writeFile(path, target.String())
}

func ReadNonce(path string) (uint64, error) {
	data, err := readFile(path)
	if err != nil {
		return 0, err
	}
	nonce, err := ParseNonce(string(data))
	if err != nil {
		return 0, errors.Wrapf(err, "solution file %s", path)
	}
	return nonce, nil
}

// ParseNonce reads a decimal nonce, ignoring surrounding whitespace.
func ParseNonce(s string) (uint64, error) {
	nonce, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrParse, "%q: %v", s, err)
	}
	return nonce, nil
}

func WriteNonce(path string, nonce uint64) error {
	return writeFile(path, strconv.FormatUint(nonce, 10))
}
