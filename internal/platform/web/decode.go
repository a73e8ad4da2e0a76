package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"reflect"
	"strings"

	"github.com/gorilla/schema"
)

var (
	// ErrBadRequest indica un cuerpo que no se pudo decodificar.
	ErrBadRequest = errors.New("bad request")
	// ErrBodyTooLarge: el cuerpo superó el límite de http.MaxBytesReader.
	ErrBodyTooLarge = errors.New("request body too large")
)

const maxFormMemory = 10 << 20

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	// Los formularios usan los mismos nombres que el JSON.
	d.SetAliasTag("json")
	d.IgnoreUnknownKeys(true)
	d.ZeroEmpty(true)
	d.RegisterConverter(false, convertBool)
	return d
}

// convertBool acepta los valores que mandan checkboxes y selects sim/não.
func convertBool(s string) reflect.Value {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1", "sim", "s", "yes":
		return reflect.ValueOf(true)
	case "", "off", "false", "0", "nao", "não", "n", "no":
		return reflect.ValueOf(false)
	default:
		return reflect.Value{}
	}
}

// Decode llena dst desde un cuerpo JSON o desde un formulario
// (urlencoded o multipart).
func Decode(r *http.Request, dst any) error {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch ct {
	case "application/json":
		dec := json.NewDecoder(r.Body)
		if err := dec.Decode(dst); err != nil {
			return bodyError("invalid json", err)
		}
		return nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return bodyError("invalid multipart form", err)
		}
	default:
		if err := r.ParseForm(); err != nil {
			return bodyError("invalid form", err)
		}
	}

	if err := formDecoder.Decode(dst, r.PostForm); err != nil {
		return fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return nil
}

func bodyError(what string, err error) error {
	if IsBodyTooLarge(err) {
		return fmt.Errorf("%w: %v", ErrBodyTooLarge, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrBadRequest, what, err)
}

// IsBodyTooLarge reconoce el error de http.MaxBytesReader.
func IsBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.Is(err, ErrBodyTooLarge) || errors.As(err, &maxErr)
}

// WriteDecodeError responde 413 si el cuerpo excedió el límite y 400 en otro caso.
func WriteDecodeError(w http.ResponseWriter, err error) {
	if IsBodyTooLarge(err) {
		WriteStatus(w, http.StatusRequestEntityTooLarge, StatusError, "Arquivo ou formulário grande demais.")
		return
	}
	http.Error(w, "invalid body", http.StatusBadRequest)
}
