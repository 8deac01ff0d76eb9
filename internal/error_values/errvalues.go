package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrFamilyNotFound = errors.New("family doesn't exist")
	ErrWrongFamily    = errors.New("resource belongs to different family")

	ErrKidNotFound  = errors.New("kid doesn't exist")
	ErrKidNameTaken = errors.New("family already has kid with such name")

	ErrTaskNotFound = errors.New("task doesn't exist")
	ErrTaskInactive = errors.New("task is not active")

	ErrCompletionNotFound  = errors.New("completion doesn't exist")
	ErrCompletionProcessed = errors.New("completion already processed")
	ErrCompletedToday      = errors.New("task already completed today")

	ErrRewardNotFound      = errors.New("reward doesn't exist")
	ErrRedemptionNotFound  = errors.New("redemption doesn't exist")
	ErrRedemptionProcessed = errors.New("redemption already processed")
	ErrInsufficientBalance = errors.New("not enough points")
	ErrBadgeNotFound       = errors.New("badge doesn't exist")
)
