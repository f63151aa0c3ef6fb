package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/afero"
)

// FileStore grava os objetos num diretório; a chave vira o caminho relativo
type FileStore struct {
	fs   afero.Fs
	base string
}

func NewFileStore(fs afero.Fs, base string) *FileStore {
	if base == "" {
		base = "data"
	}
	if abs, err := filepath.Abs(base); err == nil {
		base = abs
	}
	return &FileStore{
		fs:   afero.NewBasePathFs(fs, base),
		base: base,
	}
}

func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	name, err := cleanKey(key)
	if err != nil {
		return nil, err
	}

	content, err := afero.ReadFile(s.fs, name)
	if errors.Is(err, os.ErrNotExist) {
		return nil, pkgerrors.Wrap(ErrObjectNotFound, key)
	}
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "erro ao ler %s", key)
	}
	return content, nil
}

// Put escreve num arquivo temporário e renomeia: o objeto existe inteiro ou não existe
func (s *FileStore) Put(_ context.Context, key string, content []byte) error {
	name, err := cleanKey(key)
	if err != nil {
		return err
	}

	if err := s.fs.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return pkgerrors.Wrapf(err, "erro ao criar diretório de %s", key)
	}

	suffix, err := gonanoid.New(8)
	if err != nil {
		return pkgerrors.Wrap(err, "erro ao gerar nome temporário")
	}
	tmp := name + ".tmp-" + suffix

	if err := afero.WriteFile(s.fs, tmp, content, 0o644); err != nil {
		_ = s.fs.Remove(tmp)
		return pkgerrors.Wrapf(err, "erro ao gravar %s", key)
	}
	if err := s.fs.Rename(tmp, name); err != nil {
		_ = s.fs.Remove(tmp)
		return pkgerrors.Wrapf(err, "erro ao publicar %s", key)
	}
	return nil
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	name, err := cleanKey(key)
	if err != nil {
		return err
	}

	err = s.fs.Remove(name)
	if errors.Is(err, os.ErrNotExist) {
		return pkgerrors.Wrap(ErrObjectNotFound, key)
	}
	return pkgerrors.Wrapf(err, "erro ao remover %s", key)
}

func (s *FileStore) List(_ context.Context, prefix string) ([]ObjectInfo, error) {
	objects := make([]ObjectInfo, 0)

	err := afero.Walk(s.fs, "/", func(p string, info os.FileInfo, err error) error {
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return err
		}
		if info.IsDir() || strings.Contains(info.Name(), ".tmp-") {
			return nil
		}

		key := strings.TrimPrefix(filepath.ToSlash(p), "/")
		if !strings.HasPrefix(key, prefix) {
			return nil
		}
		objects = append(objects, ObjectInfo{
			Key:       key,
			Size:      info.Size(),
			UpdatedAt: info.ModTime().UTC(),
		})
		return nil
	})
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "erro ao listar %s", prefix)
	}

	sort.Slice(objects, func(i, j int) bool { return objects[i].Key < objects[j].Key })
	return objects, nil
}

func (s *FileStore) Info() StoreInfo {
	return StoreInfo{Driver: "fs", Location: s.base}
}
