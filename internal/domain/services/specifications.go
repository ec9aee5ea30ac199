// Package services contains domain services for the locus domain model.
// These are stateless services that encapsulate business logic.
package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/reglet-dev/locus/internal/domain/entities"
	"github.com/reglet-dev/locus/internal/domain/values"
)

const (
	// maxExpressionLength bounds rule source size.
	maxExpressionLength = 1000
	// maxASTNodes bounds rule complexity.
	maxASTNodes = 100
)

// Ensure interface compliance
var (
	_ entities.LocationRule = (*AndSpecification)(nil)
	_ entities.LocationRule = (*BoundsSpecification)(nil)
	_ entities.LocationRule = (*ExpressionSpecification)(nil)
)

// AndSpecification combines multiple rules with logical AND.
type AndSpecification struct {
	specs []entities.LocationRule
}

// NewAndSpecification creates a new AndSpecification.
func NewAndSpecification(specs ...entities.LocationRule) *AndSpecification {
	return &AndSpecification{specs: specs}
}

// IsSatisfiedBy checks if all specifications are satisfied.
func (s *AndSpecification) IsSatisfiedBy(loc values.Location) (bool, string) {
	for _, spec := range s.specs {
		if satisfied, reason := spec.IsSatisfiedBy(loc); !satisfied {
			return false, reason
		}
	}
	return true, ""
}

// BoundsSpecification accepts locations inside an inclusive box.
type BoundsSpecification struct {
	bounds values.Bounds
}

// NewBoundsSpecification creates a new BoundsSpecification.
func NewBoundsSpecification(bounds values.Bounds) (*BoundsSpecification, error) {
	if bounds.Min.X > bounds.Max.X || bounds.Min.Y > bounds.Max.Y {
		return nil, fmt.Errorf("bounds min %s exceeds max %s", bounds.Min, bounds.Max)
	}
	return &BoundsSpecification{bounds: bounds}, nil
}

// IsSatisfiedBy checks if the location lies within the bounds.
func (s *BoundsSpecification) IsSatisfiedBy(loc values.Location) (bool, string) {
	if !s.bounds.Contains(loc) {
		return false, fmt.Sprintf("outside bounds %s", s.bounds)
	}
	return true, ""
}

// BuildLocationRule combines optional bounds and an optional rule expression
// into one rule. It returns nil when neither is given.
func BuildLocationRule(expression string, bounds *values.Bounds) (entities.LocationRule, error) {
	var rules []entities.LocationRule

	if bounds != nil {
		spec, err := NewBoundsSpecification(*bounds)
		if err != nil {
			return nil, err
		}
		rules = append(rules, spec)
	}

	if expression != "" {
		spec, err := CompileLocationRule(expression)
		if err != nil {
			return nil, err
		}
		rules = append(rules, spec)
	}

	switch len(rules) {
	case 0:
		return nil, nil
	case 1:
		return rules[0], nil
	default:
		return NewAndSpecification(rules...), nil
	}
}

// LocationEnv is the variable set visible to rule expressions.
type LocationEnv struct {
	X float64 `expr:"x"`
	Y float64 `expr:"y"`
}

// ExpressionSpecification accepts locations for which an expr program is true.
type ExpressionSpecification struct {
	program *vm.Program
	source  string
}

// CompileLocationRule compiles a boolean rule over x and y.
func CompileLocationRule(expression string) (*ExpressionSpecification, error) {
	if expression == "" {
		return nil, errors.New("rule expression cannot be empty")
	}
	if len(expression) > maxExpressionLength {
		return nil, fmt.Errorf("rule expression exceeds %d characters", maxExpressionLength)
	}

	program, err := expr.Compile(expression,
		expr.Env(LocationEnv{}),
		expr.AsBool(),
		expr.MaxNodes(maxASTNodes),
		expr.Function("abs", func(params ...interface{}) (interface{}, error) {
			f, ok := params[0].(float64)
			if !ok {
				return nil, fmt.Errorf("abs: expected float, got %T", params[0])
			}
			return math.Abs(f), nil
		}, new(func(float64) float64)),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid rule %q: %w", expression, err)
	}

	return &ExpressionSpecification{program: program, source: expression}, nil
}

// Source returns the rule text.
func (s *ExpressionSpecification) Source() string {
	return s.source
}

// IsSatisfiedBy evaluates the expr program against the location.
func (s *ExpressionSpecification) IsSatisfiedBy(loc values.Location) (bool, string) {
	output, err := expr.Run(s.program, LocationEnv{X: loc.X, Y: loc.Y})
	if err != nil {
		return false, fmt.Sprintf("rule expression error: %v", err)
	}

	result, ok := output.(bool)
	if !ok {
		return false, fmt.Sprintf("rule expression did not return boolean: %v", output)
	}

	if !result {
		return false, fmt.Sprintf("rejected by rule %q", s.source)
	}

	return true, ""
}
