package entity

// User is a registered account. PinHash holds the bcrypt digest of the PIN,
// never the PIN itself.
type User struct {
	Email   string
	PinHash string
}
