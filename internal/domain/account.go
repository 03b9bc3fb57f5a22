package domain

// Account is the stored form of a user record. PassHash always holds the
// bcrypt digest, never the plaintext password.
type Account struct {
	Id        AccountId
	Name      string
	Email     Email
	PassHash  string
	Addresses []Address
	Phones    []Phone
}

// NewAccount carries the data of an account creation request before the
// password has been hashed. Addresses and phones may be embedded and are
// attached to the account on first save.
type NewAccount struct {
	Name      string
	Email     Email
	Password  Password
	Addresses []NewAddress
	Phones    []NewPhone
}

// AccountPatch is a sparse update document. A nil field means "keep the
// stored value". Email and Name replace the stored scalars when present;
// Password, when present, must be hashed before the patch reaches the merge.
type AccountPatch struct {
	Name     *string
	Email    *Email
	Password *Password
}

type Credentials struct {
	Email    Email
	Password Password
}
