package domain

type Address struct {
	Id         AddressId
	Street     string
	Number     string
	Complement string
	City       string
	State      string
	Zip        string
	AccountId  AccountId
}

type NewAddress struct {
	Street     string
	Number     string
	Complement string
	City       string
	State      string
	Zip        string
}

// AddressPatch is a sparse update document; nil fields keep the stored value.
// The owning account is never part of a patch.
type AddressPatch struct {
	Street     *string
	Number     *string
	Complement *string
	City       *string
	State      *string
	Zip        *string
}
