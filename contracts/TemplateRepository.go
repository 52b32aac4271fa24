package contracts

import "errors"

type TemplateRepository interface {
	Put(name string, buffer []byte) error
	Get(name string) ([]byte, error)
	List() ([]string, error)
}

var TemplateNotFoundError = errors.New("template not found")
