package settings

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/notify"
)

// TierViolation is one reason a tier collection cannot be saved.
type TierViolation string

const (
	ViolationNoTiers        TierViolation = "at least one tier required"
	ViolationFirstTierStart TierViolation = "first tier must start at 0"
	ViolationNotContiguous  TierViolation = "tiers must be contiguous, no gaps or overlaps"
	ViolationMinNotBelowMax TierViolation = "min distance must be less than max distance"
	ViolationNegativeValue  TierViolation = "distances and fees must not be negative"
)

// InvalidTiersTitle is the title of the notification emitted on a failed validation.
const InvalidTiersTitle = "Invalid delivery tiers"

func (v TierViolation) String() string {
	return string(v)
}

// CheckDeliveryTiers returns every rule the collection breaks, in check order:
// start at 0, contiguity, min < max, non-negative values. An empty result means
// the tiers can be saved. Each rule is reported at most once.
func CheckDeliveryTiers(tiers []DeliveryTier) []TierViolation {
	if len(tiers) == 0 {
		return []TierViolation{ViolationNoTiers}
	}

	sorted := SortTiers(tiers)
	var violations []TierViolation

	if sorted[0].MinDistance != 0 {
		violations = append(violations, ViolationFirstTierStart)
	}

	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].MaxDistance != sorted[i].MinDistance {
			violations = append(violations, ViolationNotContiguous)
			break
		}
	}

	for _, t := range sorted {
		if t.MinDistance >= t.MaxDistance {
			violations = append(violations, ViolationMinNotBelowMax)
			break
		}
	}

	for _, t := range sorted {
		if t.MinDistance < 0 || t.MaxDistance < 0 || t.Fee < 0 {
			violations = append(violations, ViolationNegativeValue)
			break
		}
	}

	return violations
}

// TierValidationError carries the violations found by ValidateDeliveryTiers.
type TierValidationError struct {
	Violations []TierViolation
}

func (e *TierValidationError) Error() string {
	return errs.NewValueIsInvalidErrorWithCause("delivery tiers", errors.New(e.Description())).Error()
}

func (e *TierValidationError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// Description joins the violation messages with "; ".
func (e *TierValidationError) Description() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return strings.Join(parts, "; ")
}

// ValidateDeliveryTiers is CheckDeliveryTiers as an error.
func ValidateDeliveryTiers(tiers []DeliveryTier) error {
	if violations := CheckDeliveryTiers(tiers); len(violations) > 0 {
		return &TierValidationError{Violations: violations}
	}
	return nil
}

// DeliveryTierValidator validates tiers edited in the settings form and tells
// the editor what is wrong. It never persists anything.
type DeliveryTierValidator struct {
	notifier notify.Notifier
}

func NewDeliveryTierValidator(notifier notify.Notifier) DeliveryTierValidator {
	return DeliveryTierValidator{notifier: notifier}
}

// Validate returns true when the tiers can be saved. Otherwise it emits exactly
// one destructive notification listing every violation and returns false.
func (v DeliveryTierValidator) Validate(ctx context.Context, tiers []DeliveryTier) bool {
	err := ValidateDeliveryTiers(tiers)
	if err == nil {
		return true
	}

	description := err.Error()
	var tve *TierValidationError
	if errors.As(err, &tve) {
		description = tve.Description()
	}
	notify.NotifyFailure(ctx, v.notifier, InvalidTiersTitle, description)
	return false
}
