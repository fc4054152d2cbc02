package domain

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
)

const (
	salaryMaxDigits     = 10
	salaryDecimalPlaces = 2
)

// Salary is a fixed-point decimal amount with two decimal places, stored and
// serialized as a string so the submitted precision survives the round trip
// through the database ("1000" and "1000.00" both come back as "1000.00").
type Salary string

// ParseSalary validates and normalizes a decimal string. It enforces at most
// 10 digits overall and 2 decimal places, mirroring a NUMERIC(10,2) column.
func ParseSalary(s string) (Salary, error) {
	raw := strings.TrimSpace(s)
	neg := strings.HasPrefix(raw, "-")
	body := strings.TrimPrefix(raw, "-")
	if body == "" {
		return "", fmt.Errorf("salary: empty value")
	}

	intPart, fracPart, hasDot := strings.Cut(body, ".")
	if intPart == "" || !isDigits(intPart) {
		return "", fmt.Errorf("salary: %q is not a valid decimal", s)
	}
	if hasDot && (fracPart == "" || !isDigits(fracPart)) {
		return "", fmt.Errorf("salary: %q is not a valid decimal", s)
	}
	if len(fracPart) > salaryDecimalPlaces {
		return "", fmt.Errorf("salary: no more than %d decimal places allowed", salaryDecimalPlaces)
	}
	digits := len(strings.TrimLeft(intPart, "0"))
	if digits == 0 {
		digits = 1
	}
	if digits+salaryDecimalPlaces > salaryMaxDigits {
		return "", fmt.Errorf("salary: no more than %d digits allowed", salaryMaxDigits)
	}

	for len(fracPart) < salaryDecimalPlaces {
		fracPart += "0"
	}
	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}
	out := intPart + "." + fracPart
	if neg {
		out = "-" + out
	}
	return Salary(out), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Value implements driver.Valuer.
func (s Salary) Value() (driver.Value, error) {
	return string(s), nil
}

// Scan implements sql.Scanner. SQLite hands back floats for NUMERIC columns,
// Postgres hands back the text form; both normalize to two decimal places.
func (s *Salary) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = ""
		return nil
	case string:
		parsed, err := ParseSalary(v)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	case []byte:
		return s.Scan(string(v))
	case float64:
		return s.Scan(strconv.FormatFloat(v, 'f', salaryDecimalPlaces, 64))
	case int64:
		return s.Scan(strconv.FormatInt(v, 10))
	default:
		return fmt.Errorf("salary: cannot scan %T", src)
	}
}

func (s Salary) String() string {
	return string(s)
}
