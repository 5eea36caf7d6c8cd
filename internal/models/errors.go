package models

import "errors"

var (
	ErrGeneral               = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound      = errors.New("there is no")
	ErrCategoryNameNotUnique = errors.New("the category name is already in use")
	ErrKeywordNotUnique      = errors.New("the keyword is already in use by another category")
)
