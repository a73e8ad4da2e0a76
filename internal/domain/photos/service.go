package photos

import (
	"context"
	"errors"
	"io"
	"net/http"
)

var (
	ErrInvalidPhoto = errors.New("arquivo não é uma imagem válida")
	ErrTooLarge     = errors.New("imagem muito grande")
)

// Store persiste la imagen y devuelve la URL pública.
type Store interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	return s.store.Save(ctx, filename, r)
}

// FromRequest guarda el archivo del campo field si el request es multipart y lo trae.
// ok=false cuando no se envió archivo (el formulario puede traer una URL ya subida).
func (s *Service) FromRequest(r *http.Request, field string) (url string, ok bool, err error) {
	if s == nil || r.MultipartForm == nil {
		return "", false, nil
	}
	f, hdr, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	defer f.Close()

	url, err = s.store.Save(r.Context(), hdr.Filename, f)
	if err != nil {
		return "", false, err
	}
	return url, true, nil
}
