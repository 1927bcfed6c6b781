// Package errors defines the engine's error taxonomy: a single AppError type
// carrying a stable machine-readable Code plus structured Details, in place of
// sentinel errors scattered across packages.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode string

const (
	// Arithmetic and data-model errors
	ErrCodeArithmeticOverflow ErrorCode = "ARITHMETIC_OVERFLOW"
	ErrCodeCurrencyMismatch   ErrorCode = "CURRENCY_MISMATCH"
	ErrCodePercentConversion  ErrorCode = "PERCENT_CONVERSION"
	ErrCodeItemNotFound       ErrorCode = "ITEM_NOT_FOUND"

	// Discount and promotion errors
	ErrCodeInvalidDiscount ErrorCode = "INVALID_DISCOUNT"
	ErrCodeNoItems         ErrorCode = "NO_ITEMS"

	// Graph and builder errors
	ErrCodeGraphCycle     ErrorCode = "GRAPH_CYCLE"
	ErrCodeGraphMalformed ErrorCode = "GRAPH_MALFORMED"
	ErrCodeBuilderFailure ErrorCode = "BUILDER_FAILURE"

	// Solver errors
	ErrCodeInfeasible    ErrorCode = "INFEASIBLE"
	ErrCodeUnbounded     ErrorCode = "UNBOUNDED"
	ErrCodeSolverBackend ErrorCode = "SOLVER_BACKEND"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// AppError represents an engine error with additional machine-readable context.
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  map[string]interface{} `json:"details,omitempty"`
	Internal error                  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Internal
}

// WithDetail adds a detail field to the error.
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithInternal attaches the underlying cause.
func (e *AppError) WithInternal(err error) *AppError {
	e.Internal = err
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps an existing error into an AppError.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Internal: err}
}

// Is delegates to errors.Is.
func Is(err error, target error) bool {
	return errors.Is(err, target)
}

// As delegates to errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Code returns the ErrorCode carried by err, or ErrCodeInternal if err is not an *AppError.
func Code(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeInternal
}

// HasCode reports whether err is an *AppError carrying the given code.
func HasCode(err error, code ErrorCode) bool {
	return Code(err) == code
}

// ArithmeticOverflow reports a minor-unit or fixed-point operation that exceeded
// the representable range.
func ArithmeticOverflow(message string) *AppError {
	return New(ErrCodeArithmeticOverflow, message)
}

// CurrencyMismatch reports that the item at index does not share the group's currency.
func CurrencyMismatch(index int, itemCurrency, groupCurrency string) *AppError {
	return New(ErrCodeCurrencyMismatch, fmt.Sprintf(
		"item %d has currency %s, expected %s", index, itemCurrency, groupCurrency)).
		WithDetail("index", index).
		WithDetail("item_currency", itemCurrency).
		WithDetail("group_currency", groupCurrency)
}

// PercentConversion reports that a percentage-of-minor-units computation could
// not be represented as a 64-bit minor-unit integer.
func PercentConversion(message string) *AppError {
	return New(ErrCodePercentConversion, message)
}

// ItemNotFound reports an out-of-range item index into an ItemGroup.
func ItemNotFound(index int) *AppError {
	return New(ErrCodeItemNotFound, fmt.Sprintf("no item at index %d", index)).
		WithDetail("index", index)
}

// InvalidDiscount reports a SimpleDiscount whose parameters cannot be applied,
// such as a negative AmountOverride.
func InvalidDiscount(message string) *AppError {
	return New(ErrCodeInvalidDiscount, message)
}

// NoItems reports an operation that required at least one item but received none.
func NoItems(message string) *AppError {
	return New(ErrCodeNoItems, message)
}

// GraphCycle reports that the promotion layer graph contains a cycle.
func GraphCycle(message string) *AppError {
	return New(ErrCodeGraphCycle, message)
}

// GraphMalformed reports a structurally invalid promotion layer graph, such as
// a PassThrough layer with a Participating or NonParticipating outgoing edge.
func GraphMalformed(message string) *AppError {
	return New(ErrCodeGraphMalformed, message)
}

// BuilderFailure reports an internal failure while assembling the MILP formulation.
func BuilderFailure(err error, message string) *AppError {
	return Wrap(err, ErrCodeBuilderFailure, message)
}

// Infeasible reports that the solver returned no feasible assignment; the
// default BranchAndBound backend also reports this when its time or node
// limit ends the search before one is found.
func Infeasible(message string) *AppError {
	return New(ErrCodeInfeasible, message)
}

// Unbounded reports that the solver proved the objective unbounded.
func Unbounded(message string) *AppError {
	return New(ErrCodeUnbounded, message)
}

// SolverBackend reports a failure internal to the MILP backend, such as a
// backend returning a status outside Optimal/Infeasible/Unbounded.
func SolverBackend(err error, message string) *AppError {
	return Wrap(err, ErrCodeSolverBackend, message)
}
