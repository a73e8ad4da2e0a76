package fsmedia

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/SENAI-Morvan-Figueiredo/ResgatandoVidas-4-Patas/internal/domain/photos"
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Store guarda fotos en un afero.Fs (disco en producción, memoria en tests).
type Store struct {
	fs        afero.Fs
	urlPrefix string
	maxBytes  int64
}

func New(fs afero.Fs, urlPrefix string, maxBytes int64) *Store {
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}
	return &Store{fs: fs, urlPrefix: urlPrefix, maxBytes: maxBytes}
}

// NewOS usa dir como raíz de los archivos.
func NewOS(dir, urlPrefix string, maxBytes int64) (*Store, error) {
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return New(afero.NewBasePathFs(osFs, dir), urlPrefix, maxBytes), nil
}

func (s *Store) Save(_ context.Context, filename string, r io.Reader) (string, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]
	if n == 0 {
		return "", photos.ErrInvalidPhoto
	}

	ext, ok := extensions[http.DetectContentType(head)]
	if !ok {
		return "", fmt.Errorf("%w: %s", photos.ErrInvalidPhoto, filename)
	}

	// Lee hasta max+1 para detectar excedentes sin cargar todo.
	body := io.MultiReader(bytes.NewReader(head), r)
	buf, err := io.ReadAll(io.LimitReader(body, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(buf)) > s.maxBytes {
		return "", fmt.Errorf("%w: limite de %s", photos.ErrTooLarge, humanize.Bytes(uint64(s.maxBytes)))
	}

	key := uuid.NewString() + ext
	if err := afero.WriteFile(s.fs, "/"+key, buf, 0o644); err != nil {
		return "", fmt.Errorf("write photo: %w", err)
	}
	return s.urlPrefix + key, nil
}

// Handler sirve los archivos guardados bajo el prefijo público.
// Los directorios responden 404: no se listan.
func (s *Store) Handler() http.Handler {
	return http.StripPrefix(s.urlPrefix, http.FileServer(filesOnly{afero.NewHttpFs(s.fs).Dir("/")}))
}

type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, os.ErrNotExist
	}
	return file, nil
}
