package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"
	cueyaml "cuelang.org/go/encoding/yaml"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/roach88/refined/internal/compiler"
	"github.com/roach88/refined/internal/document"
	"github.com/roach88/refined/internal/rules"
)

// LoadResult contains a compiled schema.
type LoadResult struct {
	Schema    *rules.Schema
	CUEValue  cue.Value // The raw CUE value for additional processing
	FileCount int       // Number of schema files read
}

// LoadError represents an error that occurred while loading a schema or
// document.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadSchema loads and compiles a schema. path is a directory holding a CUE
// package, or a single .cue, .json, .yaml or .yml file.
//
// The returned errors are all schema errors found; LoadResult is nil when
// any occurred.
func LoadSchema(path string) (*LoadResult, []error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("schema not found: %s", path)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing schema: %v", err)}}
	}

	ctx := cuecontext.New()
	var value cue.Value
	files := 1

	if info.IsDir() {
		cueFiles, err := FindCUEFiles(path)
		if err != nil {
			return nil, []error{&LoadError{Code: ErrCodeScanError, Message: fmt.Sprintf("error scanning directory: %v", err)}}
		}
		if len(cueFiles) == 0 {
			return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", path)}}
		}
		files = len(cueFiles)

		instances := load.Instances([]string{"."}, &load.Config{Dir: path})
		if len(instances) == 0 {
			return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}}
		}
		inst := instances[0]
		if inst.Err != nil {
			return nil, []error{sourceLoadError("loading CUE files", inst.Err)}
		}
		value = ctx.BuildInstance(inst)
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, []error{&LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("reading schema: %v", err)}}
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			f, err := cueyaml.Extract(path, data)
			if err != nil {
				return nil, []error{sourceLoadError("parsing YAML schema", err)}
			}
			value = ctx.BuildFile(f)
		case ".cue", ".json":
			value = ctx.CompileBytes(data, cue.Filename(path))
		default:
			return nil, []error{&LoadError{Code: ErrCodeUnsupported, Message: fmt.Sprintf("unsupported schema file %s: want .cue, .json, .yaml or .yml", path)}}
		}
	}

	if err := value.Err(); err != nil {
		return nil, []error{sourceLoadError("building CUE value", err)}
	}

	schema, compileErrs := compiler.CompileSchema(value)
	if len(compileErrs) > 0 {
		errs := make([]error, len(compileErrs))
		for i, err := range compileErrs {
			errs[i] = convertCompileError(err)
		}
		return nil, errs
	}

	return &LoadResult{Schema: schema, CUEValue: value, FileCount: files}, nil
}

// LoadDocument reads the records of a JSON or YAML document.
func LoadDocument(path string) ([]document.Object, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("document not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("reading document: %v", err)}
	}

	v, err := document.Decode(data, document.FormatForPath(path))
	if err != nil {
		return nil, &LoadError{Code: ErrCodeDecodeFailed, Message: fmt.Sprintf("%s: %v", path, err)}
	}
	records, err := document.Records(v)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeDecodeFailed, Message: fmt.Sprintf("%s: %v", path, err)}
	}
	return records, nil
}

// FindCUEFiles returns the .cue files under dir, recursively, in lexical
// order.
func FindCUEFiles(dir string) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(dir), "**/*.cue", doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	files := make([]string, len(matches))
	for i, m := range matches {
		files[i] = filepath.Join(dir, filepath.FromSlash(m))
	}
	slices.Sort(files)
	return files, nil
}

// sourceLoadError reports schema source that was read but does not parse or
// build, at the first position CUE reports.
func sourceLoadError(action string, err error) *LoadError {
	le := &LoadError{Code: ErrCodeSchemaSource, Message: fmt.Sprintf("%s: %v", action, err)}
	if list := cueerrors.Errors(err); len(list) > 0 {
		if pos := cueerrors.Positions(list[0]); len(pos) > 0 {
			le.Pos = pos[0]
		}
	}
	return le
}

// convertCompileError converts a compiler error to a LoadError with position info.
func convertCompileError(err error) *LoadError {
	var compileErr *compiler.CompileError
	if errors.As(err, &compileErr) {
		code := compileErr.Code
		if code == "" {
			code = MapFieldToErrorCode(compileErr.Field)
		}
		return &LoadError{
			Code:    code,
			Message: fmt.Sprintf("%s: %s", compileErr.Field, compileErr.Message),
			Pos:     compileErr.Pos,
		}
	}
	return &LoadError{Code: ErrCodeGeneric, Message: err.Error()}
}

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric      = "E001" // Generic/unknown error
	ErrCodeScanError    = "E002" // Directory scan error
	ErrCodeNoFiles      = "E003" // No CUE files found
	ErrCodeLoadFailed   = "E004" // No CUE instance in the directory
	ErrCodeNotFound     = "E005" // Path not found
	ErrCodeReadFailed   = "E007" // File read error
	ErrCodeDecodeFailed = "E008" // Document is not valid JSON/YAML records
	ErrCodeUnsupported  = "E009" // Unsupported file extension
	ErrCodeDatabase     = "E010" // SQLite open/query failure

	// Schema structure errors
	ErrCodeSchemaFields   = "E101" // fields missing or empty
	ErrCodeSchemaField    = "E102" // field entry malformed
	ErrCodeSchemaStrict   = "E103" // strict is not a boolean
	ErrCodeSchemaRequired = "E104" // required is not a boolean
	ErrCodeSchemaSource   = "E105" // CUE or YAML source does not parse or build

	// Check results
	ErrCodeViolations = "E300" // Records violate the schema
)

// MapFieldToErrorCode maps a compiler error field to an error code.
// Rule errors carry their own E2xx code and never reach here.
func MapFieldToErrorCode(field string) string {
	switch {
	case field == "fields":
		return ErrCodeSchemaFields
	case field == "strict":
		return ErrCodeSchemaStrict
	case strings.HasSuffix(field, ".required"):
		return ErrCodeSchemaRequired
	case strings.HasPrefix(field, "fields."):
		return ErrCodeSchemaField
	case field == "cue":
		return ErrCodeSchemaSource
	default:
		return ErrCodeGeneric
	}
}
