package model

// User is a seller account.  The terminal only ever sees its own
// account (via the "me" endpoint); the stub backend additionally
// keeps the bcrypt password hash for login verification.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login name of the seller.
//  FullName     – display name shown in the terminal header.
//  PasswordHash – bcrypt hashed password (never serialized).
type User struct {
	ID           uint64 `json:"id"`
	Username     string `json:"username"`
	FullName     string `json:"full_name"`
	PasswordHash string `json:"-"`
}
