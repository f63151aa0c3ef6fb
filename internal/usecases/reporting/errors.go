package reporting

import "errors"

var (
	ErrEmptyFile        = errors.New("arquivo vazio")
	ErrArtifactNotFound = errors.New("artefato não encontrado")
	ErrTemplateNotFound = errors.New("template do país não encontrado")
)
