package whatsapp

import "errors"

var errNoMessage = errors.New("No message")

const fileNotFoundMessage = "Archivo no encontrado"
