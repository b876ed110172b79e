package reconciler

import (
	"github.com/upbvirtual/enroller/pkg/errors"
	"github.com/upbvirtual/enroller/pkg/roster"
)

// options configures a reconciler.
type options struct {
	strategy Strategy
	accounts *roster.Accounts
	variant  roster.Variant
}

func defaultOptions() *options {
	return &options{
		strategy: NewEnrollStrategy(),
		accounts: roster.NewAccounts(nil),
		variant:  roster.Student,
	}
}

// Option is a function that configures a Reconciler.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns reconciler options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithStrategy sets the process strategy.
func WithStrategy(strategy Strategy) Option {
	return func(o *options) error {
		if strategy == nil {
			return &errors.ValidationError{
				Field:   "strategy",
				Message: "cannot be nil",
			}
		}
		o.strategy = strategy
		return nil
	}
}

// WithMode selects the strategy for a process mode.
func WithMode(mode roster.Mode) Option {
	return func(o *options) error {
		strategy, err := NewStrategy(mode)
		if err != nil {
			return err
		}
		o.strategy = strategy
		return nil
	}
}

// WithAccounts sets the reference accounts used to tell new users from
// existing ones.
func WithAccounts(accounts *roster.Accounts) Option {
	return func(o *options) error {
		if accounts == nil {
			return &errors.ValidationError{
				Field:   "accounts",
				Message: "cannot be nil",
			}
		}
		o.accounts = accounts
		return nil
	}
}

// WithVariant sets whether records are students or moderators.
func WithVariant(variant roster.Variant) Option {
	return func(o *options) error {
		switch variant {
		case roster.Student, roster.Moderator:
			o.variant = variant
			return nil
		default:
			return &errors.ValidationError{
				Field:   "variant",
				Value:   variant,
				Message: "must be student or moderator",
			}
		}
	}
}
