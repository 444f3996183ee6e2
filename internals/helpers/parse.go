// file: internals/helpers/parse.go
package helper

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDecimal menerima "1234.56" maupun "1234,56" (form dari frontend lama
// mengirim koma desimal tergantung locale device). Titik/koma ribuan TIDAK
// didukung; hanya satu pemisah desimal.
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty decimal")
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	return strconv.ParseFloat(s, 64)
}

// ParseDecimalPtr: "" → nil, selain itu seperti ParseDecimal.
func ParseDecimalPtr(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := ParseDecimal(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func ParseBool(s string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(s))
}

func ParseIntDefault(s string, def int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return n
	}
	return def
}
