package domain

type Phone struct {
	Id        PhoneId
	AreaCode  string
	Number    string
	AccountId AccountId
}

type NewPhone struct {
	AreaCode string
	Number   string
}

// PhonePatch is a sparse update document; nil fields keep the stored value.
type PhonePatch struct {
	AreaCode *string
	Number   *string
}
