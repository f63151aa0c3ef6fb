package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateArtifactID gera identificadores mais longos para nomes de artefatos no storage
func GenerateArtifactID() (string, error) {
	return gonanoid.Generate(characters, 12)
}
