package domain

import "errors"

// Outcome дискриминированный результат операции. Транспортный слой отображает его на свои коды ответа.
type Outcome string

const (
	OutcomeSuccess           Outcome = "success"
	OutcomeValidation        Outcome = "validation_error"
	OutcomeNotFound          Outcome = "not_found"
	OutcomeForbidden         Outcome = "forbidden"
	OutcomeConflict          Outcome = "conflict"
	OutcomeInsufficientFunds Outcome = "insufficient_funds"
	OutcomeDependency        Outcome = "dependency_failure"
	OutcomeInternal          Outcome = "internal"
)

// OutcomeOf определяет вид результата по ошибке. nil - успех.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrValidation):
		return OutcomeValidation
	case errors.Is(err, ErrRecordNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrForbidden):
		return OutcomeForbidden
	case errors.Is(err, ErrConflict), errors.Is(err, ErrDuplicateKey):
		return OutcomeConflict
	case errors.Is(err, ErrInsufficientFunds):
		return OutcomeInsufficientFunds
	case errors.Is(err, ErrDependencyFailure):
		return OutcomeDependency
	default:
		return OutcomeInternal
	}
}

// IsExpected сообщает, является ли ошибка ожидаемым исходом бизнес-операции. Такие ошибки не логируются как сбои.
func (o Outcome) IsExpected() bool {
	switch o {
	case OutcomeValidation, OutcomeNotFound, OutcomeForbidden, OutcomeConflict, OutcomeInsufficientFunds:
		return true
	default:
		return false
	}
}
