package commands

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/mamadbah2/boletim/internal/domain/models"
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrAgeNotInteger = errors.New("age must be a valid integer")
	ErrAgeNegative   = errors.New("age must not be negative")
	ErrNegativeScore = errors.New("negative scores are not allowed")
	ErrNoValidScores = errors.New("at least one valid score (0 to 10) is required")
)

// 2^53: past this point float64 no longer holds every integer.
const maxExactInteger = 1 << 53

var (
	reScoreSeparators = regexp.MustCompile(`[\s;]+`)
	reDecimalComma    = regexp.MustCompile(`^[+-]?\d+,\d+$`)
)

// ParseName trims the name and rejects blank input.
func ParseName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrNameRequired
	}
	return name, nil
}

// ParseAge reads a non-negative integer age. "20.0" is accepted as 20.
func ParseAge(raw string) (int, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrAgeNotInteger
	}
	if value != math.Trunc(value) || math.Abs(value) > maxExactInteger {
		return 0, ErrAgeNotInteger
	}
	if value < 0 {
		return 0, ErrAgeNegative
	}
	return int(value), nil
}

// ParseScores converts free-form input such as "8,5 7; 10" into scores.
// Any negative number rejects the whole input. Tokens that are not numbers or
// fall outside [0, 10] are dropped; if nothing survives the input is rejected.
func ParseScores(raw string) ([]float64, error) {
	numbers := make([]float64, 0)
	for _, token := range tokenizeScores(raw) {
		n, err := strconv.ParseFloat(token, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			continue
		}
		numbers = append(numbers, n)
	}

	for _, n := range numbers {
		if n < 0 {
			return nil, ErrNegativeScore
		}
	}

	scores := make([]float64, 0, len(numbers))
	for _, n := range numbers {
		if n < models.MinScore || n > models.MaxScore {
			continue
		}
		if n == 0 {
			n = 0 // "-0"
		}
		scores = append(scores, n)
	}

	if len(scores) == 0 {
		return nil, ErrNoValidScores
	}
	return scores, nil
}

// tokenizeScores splits on whitespace and semicolons. A chunk shaped like "8,5"
// is a single number written with a decimal comma; any other chunk is split on
// its commas, so "8,7,10" yields three tokens.
func tokenizeScores(raw string) []string {
	var tokens []string
	for _, chunk := range reScoreSeparators.Split(strings.TrimSpace(raw), -1) {
		if chunk == "" {
			continue
		}
		if reDecimalComma.MatchString(chunk) {
			tokens = append(tokens, strings.Replace(chunk, ",", ".", 1))
			continue
		}
		for _, part := range strings.Split(chunk, ",") {
			if part != "" {
				tokens = append(tokens, part)
			}
		}
	}
	return tokens
}
