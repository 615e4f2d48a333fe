// Package distro identifies which Linux distribution the tool is running on
// so distro-keyed actions can pick the right command family.
package distro

import (
	"errors"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// Tag is one of the closed set of supported distribution identifiers.
type Tag string

const (
	CentOS  Tag = "centos"
	RHEL    Tag = "rhel"
	Fedora  Tag = "fedora"
	Debian  Tag = "debian"
	Ubuntu  Tag = "ubuntu"
	Unknown Tag = "unknown"
)

// Family groups distributions by package tooling.
type Family int

const (
	FamilyNone Family = iota
	FamilyRPM
	FamilyDeb
)

// ErrUnsupportedDistro is returned when a distro-keyed action is invoked
// under an Unknown tag.
var ErrUnsupportedDistro = errors.New("unsupported distribution")

// Resolve identifies the running distribution. It never fails: anything it
// cannot map lands on Unknown, and actions that need a known distro error
// at invocation time instead.
func Resolve() Tag {
	if info, err := host.Info(); err == nil {
		if t := fromID(info.Platform); t != Unknown {
			return t
		}
	}

	// gopsutil reads /etc/os-release itself, but fall back to the raw file
	// for minimal containers where host.Info errors.
	if data, err := os.ReadFile("/etc/os-release"); err == nil {
		return fromOSRelease(string(data))
	}
	return Unknown
}

// Family returns the package-tooling family of the tag.
func (t Tag) Family() Family {
	switch t {
	case CentOS, RHEL, Fedora:
		return FamilyRPM
	case Debian, Ubuntu:
		return FamilyDeb
	default:
		return FamilyNone
	}
}

func (t Tag) String() string { return string(t) }

// fromID maps an os-release style identifier onto a Tag.
func fromID(id string) Tag {
	id = strings.ToLower(strings.TrimSpace(id))
	switch {
	case strings.Contains(id, "centos"):
		return CentOS
	case strings.Contains(id, "rhel"), strings.Contains(id, "redhat"), strings.Contains(id, "red hat"):
		return RHEL
	case strings.Contains(id, "fedora"):
		return Fedora
	case strings.Contains(id, "ubuntu"):
		return Ubuntu
	case strings.Contains(id, "debian"):
		return Debian
	default:
		return Unknown
	}
}

// fromOSRelease extracts the ID= field of an os-release document and maps it.
func fromOSRelease(data string) Tag {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "ID=") {
			continue
		}
		id := strings.Trim(strings.TrimPrefix(line, "ID="), `"'`)
		return fromID(id)
	}
	return Unknown
}
