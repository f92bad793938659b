// Package clipboard provides access to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
)

// Copier copies the assembled document to the system clipboard.
type Copier interface {
	Copy(documentText string) error
}

// Service implements Copier using github.com/atotto/clipboard.
type Service struct{}

// NewService constructs a clipboard service implementation.
func NewService() *Service {
	return &Service{}
}

// Copy writes the document text to the system clipboard.
func (service *Service) Copy(documentText string) error {
	return clipboard.WriteAll(documentText)
}

var _ Copier = (*Service)(nil)
