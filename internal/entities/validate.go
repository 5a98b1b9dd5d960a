package entities

import "github.com/go-playground/validator/v10"

// Shared validator instance for request structs.
var validate = validator.New()
