package path

import (
	"fmt"
	"os"
	"strings"
)

// Builder of template, dataset and output paths.
type Builder struct {
	templateDir string
	datasetDir  string
	outputDir   string
	uuidFunc    func() string
}

// NewBuilder ...
func NewBuilder(
	templateDir string,
	datasetDir string,
	outputDir string,
	uuidFunc func() string,
) (*Builder, error) {
	dirs := []*string{&templateDir, &datasetDir, &outputDir}
	for _, dir := range dirs {
		if _, err := os.Stat(*dir); os.IsNotExist(err) {
			return nil, fmt.Errorf("path %s is not exist", *dir)
		}
		if !strings.HasSuffix(*dir, "/") {
			*dir += "/"
		}
	}

	return &Builder{
		templateDir: templateDir,
		datasetDir:  datasetDir,
		outputDir:   outputDir,
		uuidFunc:    uuidFunc,
	}, nil
}

// Template returns the path to a template by name.
func (b *Builder) Template(name string) string {
	return b.templateDir + name
}

// Dataset returns the path to a dataset by name.
func (b *Builder) Dataset(name string) string {
	return b.datasetDir + name
}

// Output returns a collision-free output path for a generated
// document name.
func (b *Builder) Output(name string) string {
	return b.outputDir + b.uuidFunc() + "_" + name
}
