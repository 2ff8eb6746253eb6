// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package qc

import "fmt"

// ConfigError reports a configured analyte or setting the plate data
// cannot satisfy, such as a background analyte missing from the table.
type ConfigError struct {
	Setting string
	Detail  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration %s: %s", e.Setting, e.Detail)
}
