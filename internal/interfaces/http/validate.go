package http

import "github.com/go-playground/validator/v10"

// validate instancia única del validador de DTOs (los tags viven en application/dto).
var validate = validator.New()
