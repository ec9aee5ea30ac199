// Package config provides infrastructure for loading scene documents.
// This package handles YAML parsing and schema validation.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/reglet-dev/locus/internal/domain/services"
)

// SupportedSceneVersions is the semver constraint scene documents must meet.
const SupportedSceneVersions = "^1.0.0"

// maxSceneSize bounds how much of a reader is consumed.
const maxSceneSize = 1 << 20

// YAML 1.1 only reads an exponent as a number when the mantissa has a dot.
const numberHint = " (quoted value, or an exponent without a decimal point: write 1.0e+3, not 1e3)"

//go:embed scene.schema.json
var sceneSchemaJSON []byte

var compileSceneSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource("scene.schema.json", bytes.NewReader(sceneSchemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add scene schema resource: %w", err)
	}
	return compiler.Compile("scene.schema.json")
})

// SceneLoader handles loading scenes from YAML files.
type SceneLoader struct{}

// NewSceneLoader creates a new scene loader.
func NewSceneLoader() *SceneLoader {
	return &SceneLoader{}
}

// LoadScene loads, parses and validates a scene from a YAML file.
func (l *SceneLoader) LoadScene(path string) (*Scene, error) {
	// Security: Use os.OpenRoot to prevent path traversal attacks
	root, err := os.OpenRoot(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open scene directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open scene: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	return l.LoadSceneFromReader(file)
}

// LoadSceneFromReader loads a scene from an io.Reader.
func (l *SceneLoader) LoadSceneFromReader(r io.Reader) (*Scene, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSceneSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	if len(data) > maxSceneSize {
		return nil, fmt.Errorf("scene exceeds %d bytes", maxSceneSize)
	}
	return ParseScene(data)
}

// ParseScene decodes YAML, checks it against the scene schema and
// validates the result.
func ParseScene(data []byte) (*Scene, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("failed to decode scene YAML: %w", err)
	}

	if err := ValidateScene(&scene); err != nil {
		return nil, err
	}

	return &scene, nil
}

// ValidateScene performs structural validation that the schema cannot express.
func ValidateScene(scene *Scene) error {
	var problems []string

	if err := checkVersion(scene.Version); err != nil {
		problems = append(problems, err.Error())
	}

	if _, err := services.BuildLocationRule(scene.Rule, scene.Bounds); err != nil {
		problems = append(problems, err.Error())
	}

	if len(scene.Circles) == 0 {
		problems = append(problems, "at least one circle is required")
	}

	names := make(map[string]bool, len(scene.Circles))
	for i, c := range scene.Circles {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			problems = append(problems, fmt.Sprintf("circle %d: name is required", i))
			continue
		}
		if names[name] {
			problems = append(problems, fmt.Sprintf("duplicate circle name: %s", name))
		}
		names[name] = true
	}

	if len(problems) > 0 {
		return &SceneValidationError{Problems: problems}
	}
	return nil
}

func checkVersion(raw string) error {
	v, err := semver.NewVersion(raw)
	if err != nil {
		return fmt.Errorf("scene version %q is not valid semver: %w", raw, err)
	}

	constraint, err := semver.NewConstraint(SupportedSceneVersions)
	if err != nil {
		return err
	}

	if !constraint.Check(v) {
		return fmt.Errorf("scene version %s is not supported (want %s)", v, SupportedSceneVersions)
	}
	return nil
}

func validateSchema(data []byte) error {
	schema, err := compileSceneSchema()
	if err != nil {
		return fmt.Errorf("failed to compile scene schema: %w", err)
	}

	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return fmt.Errorf("failed to decode scene YAML: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(jsonData))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("failed to decode scene YAML: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return formatSchemaValidationError(validationErr)
		}
		return fmt.Errorf("scene schema validation failed: %w", err)
	}
	return nil
}

// formatSchemaValidationError flattens a JSON Schema validation error.
func formatSchemaValidationError(err *jsonschema.ValidationError) error {
	var problems []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if e.Message != "" && len(e.Causes) == 0 {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			message := e.Message
			if strings.HasPrefix(message, "expected number, but got string") {
				message += numberHint
			}
			problems = append(problems, fmt.Sprintf("%s: %s", location, message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(problems) == 0 {
		problems = append(problems, err.Error())
	}
	return &SceneValidationError{Problems: problems}
}
