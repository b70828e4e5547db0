package service

import "errors"

var (
	ErrProvinceNotFound  = errors.New("province not found")
	ErrProvinceNameTaken = errors.New("province name already taken")
	ErrProvinceMissing   = errors.New("referenced province does not exist")

	ErrCityNotFound  = errors.New("city not found")
	ErrCityNameTaken = errors.New("city name already taken in province")
)
