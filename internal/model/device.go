// Package model provides data models for the MOS device manager.
package model

import (
	"strings"
	"time"
)

// DeviceRecord describes one MOS device server launch entry.
// The first six fields come straight from the launch file; the last three
// are derived by the enricher.
type DeviceRecord struct {
	Host       string `json:"host" yaml:"host"`             // Server host
	Port       int    `json:"port" yaml:"port"`             // Server port
	User       string `json:"user" yaml:"user"`             // Account running the server
	XMLFile    string `json:"xmlfile" yaml:"xmlfile"`       // Device description, relative (no leading '/')
	Namespace  string `json:"namespace" yaml:"namespace"`   // OPC-UA namespace
	MountPoint string `json:"mountpoint" yaml:"mountpoint"` // Vire mount point

	MountPoint2 string `json:"mountpoint2" yaml:"mountpoint2"` // Mount point relative to the base path
	OutputDir   string `json:"outputdir" yaml:"outputdir"`     // Second namespace segment
	ModelName   string `json:"modelname" yaml:"modelname"`     // Server model name

	Source string `json:"-" yaml:"-"` // Launch file the record was read from
	Line   int    `json:"-" yaml:"-"` // 1-based line in the launch file
}

// SummaryFields returns the columns of the summary table in output order:
// xmlfile, mountpoint, mountpoint2, outputdir, modelname.
func (r *DeviceRecord) SummaryFields() []string {
	return []string{r.XMLFile, r.MountPoint, r.MountPoint2, r.OutputDir, r.ModelName}
}

// DeviceSet is the result of one run over a launch file.
type DeviceSet struct {
	Source      string          `json:"source" yaml:"source"`
	BasePath    string          `json:"base_path" yaml:"base_path"`
	ModelPrefix string          `json:"model_prefix" yaml:"model_prefix"`
	GeneratedAt time.Time       `json:"generated_at" yaml:"generated_at"`
	Version     string          `json:"version,omitempty" yaml:"version,omitempty"`
	Devices     []*DeviceRecord `json:"devices" yaml:"devices"`
}

// Count returns the number of devices in the set.
func (s *DeviceSet) Count() int {
	if s == nil {
		return 0
	}
	return len(s.Devices)
}

// MountPointSuffix strips basePath and the separator that follows it from
// mountPoint, then drops a single trailing '/'.
// It reports false when mountPoint is not under basePath or nothing is left
// after the separator.
func MountPointSuffix(mountPoint, basePath string) (string, bool) {
	if !strings.HasPrefix(mountPoint, basePath) {
		return "", false
	}
	cut := len(basePath) + 1
	if len(mountPoint) <= cut {
		return "", false
	}
	return strings.TrimSuffix(mountPoint[cut:], "/"), true
}

// NamespaceOutputDir returns the second '/'-delimited segment of namespace.
func NamespaceOutputDir(namespace string) (string, bool) {
	segments := strings.Split(namespace, "/")
	if len(segments) < 2 {
		return "", false
	}
	return segments[1], true
}

// MountPointTokens returns every segment of mountPoint2 except the last one.
func MountPointTokens(mountPoint2 string) []string {
	segments := strings.Split(mountPoint2, "/")
	return segments[:len(segments)-1]
}

// MountPointPath joins tokens into a dotted path with a leading dot,
// e.g. [A B] -> ".A.B". No tokens gives an empty path.
func MountPointPath(tokens []string) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteByte('.')
		sb.WriteString(tok)
	}
	return sb.String()
}

// XMLBaseName returns the last path segment of xmlFile truncated at its
// first '.', so "dir/device.v2.xml" gives "device".
func XMLBaseName(xmlFile string) string {
	name := xmlFile
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	base, _, _ := strings.Cut(name, ".")
	return base
}

// ModelName builds "<prefix>.mos<mp path>.<xml base name>".
func ModelName(prefix, mountPoint2, xmlFile string) string {
	return prefix + ".mos" + MountPointPath(MountPointTokens(mountPoint2)) + "." + XMLBaseName(xmlFile)
}
