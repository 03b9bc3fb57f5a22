package domain

type (
	Email    = string
	Password = string

	AccountId = int64
	AddressId = int64
	PhoneId   = int64
)
