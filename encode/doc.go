// Package encode writes IR nodes as YAML or JSON text.
package encode
