// Package file provides a file-based implementation of the ConfigStore port.
// Configuration persists as TOML on the local filesystem, so users can edit
// it directly as well as through the config commands.
package file
