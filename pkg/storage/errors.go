package storage

import "errors"

// ErrPhoneAlreadyRegistered is returned when an account with the same phone
// number already exists in the collection.
var ErrPhoneAlreadyRegistered = errors.New("phone number already registered")
