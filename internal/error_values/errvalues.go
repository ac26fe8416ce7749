package errorvalues

import "errors"

var (
	ErrWrongCredentials = errors.New("wrong password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrWrongOwner       = errors.New("entity belongs to another user")
	ErrOwnerNotFound    = errors.New("owner doesn't exist")
	ErrValidation       = errors.New("validation error")
)

var (
	ErrTaskNotFound       = errors.New("task doesn't exist")
	ErrInvalidStatus      = errors.New("invalid task status")
	ErrGoalNotFound       = errors.New("goal doesn't exist")
	ErrStatsNotFound      = errors.New("stats don't exist")
	ErrStatsExist         = errors.New("stats for this date already exist")
	ErrStreakNotFound     = errors.New("streak doesn't exist")
	ErrStreakExist        = errors.New("streak already exists")
	ErrReflectionNotFound = errors.New("reflection doesn't exist")
	ErrDayPlanNotFound    = errors.New("day plan doesn't exist")
	ErrCoachUnavailable   = errors.New("coach provider is not configured")
	ErrMemoNotFound       = errors.New("calendar memo doesn't exist")
)
