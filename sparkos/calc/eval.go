package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"
)

// ErrEvaluation is the single user-visible failure kind. Every cause wraps it.
var ErrEvaluation = errors.New("evaluation error")

var (
	ErrMalformed    = fmt.Errorf("%w: malformed expression", ErrEvaluation)
	ErrIncomplete   = fmt.Errorf("%w: incomplete expression", ErrEvaluation)
	ErrDivideByZero = fmt.Errorf("%w: division by zero", ErrEvaluation)
	ErrOverflow     = fmt.Errorf("%w: result out of range", ErrEvaluation)
)

// Outcome is the result of Evaluate: a normalized numeral or a failure.
type Outcome struct {
	value string
	err   error
}

// Value returns a successful Outcome.
func Value(s string) Outcome { return Outcome{value: s} }

// Failure returns a failed Outcome carrying its cause.
func Failure(err error) Outcome {
	if err == nil {
		err = ErrEvaluation
	}
	return Outcome{err: err}
}

func (o Outcome) IsError() bool { return o.err != nil }

// Err returns the folded cause of a failure, or nil.
func (o Outcome) Err() error { return o.err }

// String returns the numeral, or ErrorMarker for a failure.
func (o Outcome) String() string {
	if o.err != nil {
		return ErrorMarker
	}
	return o.value
}

// Evaluate computes a display or canonical expression.
//
// Multiplication and division bind tighter than addition and subtraction; equal
// precedence associates left to right. A lone numeral evaluates to itself.
func Evaluate(expression string) Outcome {
	v, err := evaluate(expression)
	if err != nil {
		return Failure(err)
	}
	s, err := formatResult(v)
	if err != nil {
		return Failure(err)
	}
	return Value(s)
}

func evaluate(expression string) (float64, error) {
	segs := Split(ToCanonical(expression))
	if len(segs) > 1 && segs[len(segs)-1] == "" {
		return 0, fmt.Errorf("%w: trailing operator", ErrIncomplete)
	}

	nums := make([]float64, 0, len(segs)/2+1)
	for i := 0; i < len(segs); i += 2 {
		n, err := parseNumeral(segs[i])
		if err != nil {
			return 0, err
		}
		nums = append(nums, n)
	}
	if len(nums) == 1 {
		return nums[0], nil
	}

	for i := 1; i < len(segs); i += 2 {
		if segs[i] == "/" && nums[(i+1)/2] == 0 {
			return 0, ErrDivideByZero
		}
	}
	return hostEval(segs, nums)
}

func parseNumeral(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: missing operand", ErrIncomplete)
	}
	if !IsNumeral(s) {
		if strings.HasSuffix(s, string(ExponentMarker)) {
			return 0, fmt.Errorf("%w: unterminated exponent in %q", ErrIncomplete, s)
		}
		return 0, fmt.Errorf("%w: bad numeral %q", ErrMalformed, s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && !math.IsInf(v, 0) {
			return v, nil
		}
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
		}
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return v, nil
}

// hostEval hands the operator skeleton to govaluate with every numeral bound as a
// parameter, so exponents and signs never reach its lexer.
func hostEval(segs []string, nums []float64) (v float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrMalformed, r)
		}
	}()

	var sb strings.Builder
	params := make(map[string]interface{}, len(nums))
	for i, s := range segs {
		if i%2 == 0 {
			name := "n" + strconv.Itoa(i/2)
			params[name] = nums[i/2]
			sb.WriteString(name)
			continue
		}
		sb.WriteByte(' ')
		sb.WriteString(s)
		sb.WriteByte(' ')
	}

	expr, err := govaluate.NewEvaluableExpression(sb.String())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	res, err := expr.Evaluate(params)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	f, ok := res.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: non-numeric result %T", ErrMalformed, res)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrOverflow
	}
	return f, nil
}
