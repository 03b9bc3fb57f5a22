package api

// Request DTOs
//
// Update requests use pointer fields: an absent (or null) field means "keep
// the stored value". Create requests carry plain values.

type CreateAccountRequest struct {
	Name      string                 `json:"name"`
	Email     string                 `json:"email" validate:"required"`
	Password  string                 `json:"password" validate:"required"`
	Addresses []CreateAddressRequest `json:"addresses"`
	Phones    []CreatePhoneRequest   `json:"phones"`
}

type UpdateAccountRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type CreateAddressRequest struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	City       string `json:"city"`
	State      string `json:"state"`
	Zip        string `json:"zip"`
}

type UpdateAddressRequest struct {
	Street     *string `json:"street"`
	Number     *string `json:"number"`
	Complement *string `json:"complement"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	Zip        *string `json:"zip"`
}

type CreatePhoneRequest struct {
	AreaCode string `json:"area_code"`
	Number   string `json:"number"`
}

type UpdatePhoneRequest struct {
	AreaCode *string `json:"area_code"`
	Number   *string `json:"number"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs
//
// The password hash never leaves the service.

type AccountResponse struct {
	Id        int64             `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Addresses []AddressResponse `json:"addresses,omitempty"`
	Phones    []PhoneResponse   `json:"phones,omitempty"`
}

type AddressResponse struct {
	Id         int64  `json:"id"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	City       string `json:"city"`
	State      string `json:"state"`
	Zip        string `json:"zip"`
	AccountId  int64  `json:"account_id"`
}

type PhoneResponse struct {
	Id        int64  `json:"id"`
	AreaCode  string `json:"area_code"`
	Number    string `json:"number"`
	AccountId int64  `json:"account_id"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
