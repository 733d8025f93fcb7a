package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	cueyaml "cuelang.org/go/encoding/yaml"
	"gopkg.in/yaml.v3"
)

// Error codes produced while loading mockup documents.
const (
	ErrCodeNotFound  = "NOT_FOUND"
	ErrCodeYAMLParse = "YAML_PARSE"
	ErrCodeSchema    = "SCHEMA_VIOLATION"
)

// LoadError is a positioned, coded loading failure.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Load reads, validates, and decodes one mockup file.
func Load(path string) (*Mockup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("mockup file not found: %s", path)}
		}
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("reading %s: %v", path, err)}
	}
	return Parse(path, data)
}

// Parse validates raw YAML against the embedded CUE schema and decodes it
// into the typed document model. The filename is used for error positions
// only.
func Parse(filename string, data []byte) (*Mockup, error) {
	if err := validate(filename, data); err != nil {
		return nil, err
	}

	var m Mockup
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &LoadError{Code: ErrCodeYAMLParse, Message: fmt.Sprintf("decoding %s: %v", filename, err)}
	}
	return &m, nil
}

// validate unifies the document with the #Mockup definition and requires a
// fully concrete result.
func validate(filename string, data []byte) error {
	ctx := cuecontext.New()
	schemaVal := ctx.CompileString(mockupCUE)
	if err := schemaVal.Err(); err != nil {
		return &LoadError{Code: ErrCodeSchema, Message: fmt.Sprintf("internal schema error: %v", err)}
	}

	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return &LoadError{Code: ErrCodeYAMLParse, Message: fmt.Sprintf("parsing %s: %v", filename, err)}
	}

	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return &LoadError{Code: ErrCodeYAMLParse, Message: fmt.Sprintf("building %s: %v", filename, err)}
	}

	unified := schemaVal.LookupPath(cue.ParsePath("#Mockup")).Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return schemaError(err)
	}
	return nil
}

// schemaError folds a CUE validation error into a single positioned
// LoadError carrying every violation message.
func schemaError(err error) *LoadError {
	errs := cueerrors.Errors(err)
	msgs := make([]string, 0, len(errs))
	var pos token.Pos
	for _, e := range errs {
		msgs = append(msgs, e.Error())
		if !pos.IsValid() {
			positions := cueerrors.Positions(e)
			if len(positions) > 0 {
				pos = positions[0]
			}
		}
	}
	return &LoadError{
		Code:    ErrCodeSchema,
		Message: strings.Join(msgs, "; "),
		Pos:     pos,
	}
}

// FindMockupFiles returns the sorted .yaml/.yml files directly under dir.
func FindMockupFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yaml", ".yml":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
