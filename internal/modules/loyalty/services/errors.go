package services

import "errors"

// Lookup sentinels shared across services. Handlers map these to 404;
// anything else is a 500. Ownership mismatches return the same sentinel
// so cross-tenant probing cannot distinguish "absent" from "not yours".
var (
	ErrClientNotFound   = errors.New("client not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrPurchaseNotFound = errors.New("purchase not found")
)
