package catalog

import "errors"

var (
	ErrNoQuestions     = errors.New("catalog has no questions")
	ErrInvalidQuestion = errors.New("invalid question")
	ErrInvalidProfile  = errors.New("invalid profile")
)
