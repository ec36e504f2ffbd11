// core/textab/styles.go
package textab

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadStyles reads named option presets from a YAML file, e.g.
//
//	report:
//	  environment: tblr
//	  colspec: "S[table-format=2.2] S[table-format=1.3]"
//	  sisetup: ["table-number-alignment = center"]
//	  columns: true
//	  uarray: true
//
// Presets carry everything but the rounding policy, which callers wire
// explicitly.
func LoadStyles(path string) (map[string]Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read styles: %w", err)
	}
	var styles map[string]Options
	if err := yaml.Unmarshal(data, &styles); err != nil {
		return nil, fmt.Errorf("parse styles %s: %w", path, err)
	}
	return styles, nil
}
