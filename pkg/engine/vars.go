package engine

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/wildfunctions/formula_tree/pkg/expr"
)

// LoadVarsFile reads a YAML mapping of single letters to integers, e.g.
//
//	a: 5
//	b: -3
func LoadVarsFile(path string) (expr.Vars, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load vars file")
	}
	return ParseVarsYAML(data)
}

// ParseVarsYAML decodes the vars file format.
func ParseVarsYAML(data []byte) (expr.Vars, error) {
	raw := map[string]int64{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "decode vars file")
	}
	vars := make(expr.Vars, len(raw))
	for name, v := range raw {
		if !expr.IsVariableName(name) {
			return nil, errors.Errorf("decode vars file: variable name %q is not a single letter", name)
		}
		vars[name] = v
	}
	return vars, nil
}

// ParseVarFlags converts name=value flag pairs into Vars.
func ParseVarFlags(pairs map[string]string) (expr.Vars, error) {
	vars := make(expr.Vars, len(pairs))
	for name, s := range pairs {
		if !expr.IsVariableName(name) {
			return nil, errors.Errorf("variable name %q is not a single letter", name)
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "value of variable %s", name)
		}
		vars[name] = v
	}
	return vars, nil
}

// MergeVars returns the union of all sets; later sets win.
func MergeVars(sets ...expr.Vars) expr.Vars {
	merged := expr.Vars{}
	for _, set := range sets {
		for name, v := range set {
			merged[name] = v
		}
	}
	return merged
}
