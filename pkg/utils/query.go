package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// SplitCSV turns "go, react,,sql" into ["go" "react" "sql"].
func SplitCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// QueryFloat reads a numeric query parameter. ok is false when the parameter
// is absent; err is set when it is present but not a finite number.
func QueryFloat(c echo.Context, name string) (value float64, ok bool, err error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return 0, false, nil
	}
	value, err = strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false, fmt.Errorf("%s must be a finite number", name)
	}
	return value, true, nil
}

func QueryString(c echo.Context, name string) string {
	return strings.TrimSpace(c.QueryParam(name))
}
