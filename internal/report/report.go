package report

import (
	"strconv"
	"strings"
)

// Risk is the closed set of levels a finding can carry.
type Risk string

const (
	RiskLow    Risk = "Low"
	RiskMedium Risk = "Medium"
	RiskHigh   Risk = "High"
)

const (
	TestParameterRemoval = "parameter_removal"

	highBelow   = 0.90
	mediumBelow = 0.97
)

// ClassifyRisk maps a similarity ratio to a risk level. Lower similarity
// after removing a parameter means the parameter drives the response.
func ClassifyRisk(similarity float64) Risk {
	switch {
	case similarity < highBelow:
		return RiskHigh
	case similarity < mediumBelow:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Score is a similarity ratio rounded to two decimals. It marshals with a
// trailing ".0" for whole numbers, so 1 is written as 1.0.
type Score float64

// RoundScore rounds v to two decimals from its exact binary value, with
// exact ties going to the even digit (0.125 becomes 0.12).
func RoundScore(v float64) Score {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return Score(v)
	}
	return Score(r)
}

func (s Score) MarshalJSON() ([]byte, error) {
	out := strconv.FormatFloat(float64(s), 'f', -1, 64)
	if !strings.ContainsAny(out, ".eE") {
		out += ".0"
	}
	return []byte(out), nil
}

type Finding struct {
	Endpoint        string `json:"endpoint"`
	Parameter       string `json:"parameter"`
	Test            string `json:"test"`
	SimilarityScore Score  `json:"similarity_score"`
	Risk            Risk   `json:"risk"`
}

// NewRemovalFinding records the outcome of one removal probe. The risk is
// derived from the rounded score that ends up in the report.
func NewRemovalFinding(endpoint, parameter string, similarity float64) Finding {
	score := RoundScore(similarity)
	return Finding{
		Endpoint:        endpoint,
		Parameter:       parameter,
		Test:            TestParameterRemoval,
		SimilarityScore: score,
		Risk:            ClassifyRisk(float64(score)),
	}
}
