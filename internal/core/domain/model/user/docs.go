// Package user contains the User aggregate for account management.
//
// A user is either a customer (role "user") or an administrator (role
// "admin"). Authentication concerns such as password hashing and token
// issuance live outside the domain model; this package only holds the
// already hashed credential and the validation rules for account data.
package user
