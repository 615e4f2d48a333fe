package clean

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/sys/unix"

	"github.com/reclaimtool/reclaim/internal/cmdexec"
	"github.com/reclaimtool/reclaim/internal/distro"
)

// actionPackageCache purges the local package-manager cache.
func actionPackageCache(e *Env) error {
	switch e.Distro.Family() {
	case distro.FamilyRPM:
		if cmdexec.Exists("dnf") {
			return e.Command("dnf clean all", false, "dnf", "clean", "all")
		}
		return e.Command("yum clean all", false, "yum", "clean", "all")

	case distro.FamilyDeb:
		if err := e.Command("apt-get clean", false, "apt-get", "clean"); err != nil {
			return err
		}
		return e.Command("apt-get autoclean", false, "apt-get", "autoclean")

	default:
		return e.Gate("package cache clean", false, func() error {
			return fmt.Errorf("%w: %s", distro.ErrUnsupportedDistro, e.Distro)
		})
	}
}

// actionOrphans removes dependency packages no longer required by anything
// installed. A missing helper tool is a logged skip, not an error.
func actionOrphans(e *Env) error {
	switch e.Distro.Family() {
	case distro.FamilyRPM:
		if cmdexec.Exists("dnf") {
			return e.Command("dnf autoremove", false, "dnf", "-y", "autoremove")
		}
		if cmdexec.Exists("package-cleanup") {
			return e.Command("package-cleanup --leaves", false, "package-cleanup", "-y", "--leaves")
		}
		e.Log.Logf("dnf and package-cleanup not found, skipping orphaned package removal")
		return nil

	case distro.FamilyDeb:
		if cmdexec.Exists("deborphan") {
			return e.Gate("deborphan | apt-get remove --purge", false, func() error {
				return removeDebOrphans(e)
			})
		}
		return e.Command("apt-get autoremove --purge", false, "apt-get", "-y", "autoremove", "--purge")

	default:
		return e.Gate("orphaned package removal", false, func() error {
			return fmt.Errorf("%w: %s", distro.ErrUnsupportedDistro, e.Distro)
		})
	}
}

func removeDebOrphans(e *Env) error {
	out, err := cmdexec.Output(e.Ctx, "deborphan")
	if err != nil {
		return fmt.Errorf("deborphan: %w", err)
	}

	orphans := nonEmptyLines(string(out))
	if len(orphans) == 0 {
		e.Log.Logf("no orphaned packages found")
		return nil
	}

	e.Log.Logf("removing %d orphaned package(s): %s", len(orphans), strings.Join(orphans, " "))
	args := append([]string{"-y", "remove", "--purge"}, orphans...)
	return cmdexec.Run(e.Ctx, e.Log.Writer(), "apt-get", args...)
}

// actionOldKernels removes installed kernels other than the one currently
// running. The live kernel release is always excluded from the removal set.
func actionOldKernels(e *Env) error {
	switch e.Distro.Family() {
	case distro.FamilyRPM:
		if cmdexec.Exists("dnf") {
			// dnf refuses to remove the running kernel (protect_running_kernel).
			return e.Command("dnf remove --oldinstallonly", false,
				"dnf", "-y", "remove", "--oldinstallonly")
		}
		if cmdexec.Exists("package-cleanup") {
			return e.Command("package-cleanup --oldkernels", false,
				"package-cleanup", "-y", "--oldkernels", "--count=1")
		}
		e.Log.Logf("dnf and package-cleanup not found, skipping old kernel removal")
		return nil

	case distro.FamilyDeb:
		return e.Gate("purge old linux-image packages", false, func() error {
			return purgeDebKernels(e)
		})

	default:
		return e.Gate("old kernel removal", false, func() error {
			return fmt.Errorf("%w: %s", distro.ErrUnsupportedDistro, e.Distro)
		})
	}
}

func purgeDebKernels(e *Env) error {
	running := kernelRelease()
	if running == "" {
		return fmt.Errorf("cannot determine running kernel release")
	}
	e.Log.Logf("running kernel: %s", running)

	out, err := cmdexec.Output(e.Ctx, "dpkg-query", "-W", "-f", "${Package}\n", "linux-image-*")
	if err != nil {
		// dpkg-query exits non-zero when nothing matches the glob.
		e.Log.Logf("no linux-image packages installed")
		return nil
	}

	var versioned []string
	for _, pkg := range nonEmptyLines(string(out)) {
		// Meta packages (linux-image-generic, linux-image-amd64) carry no
		// version digits and must stay so upgrades keep working.
		if !strings.ContainsFunc(pkg, unicode.IsDigit) {
			continue
		}
		versioned = append(versioned, pkg)
	}

	// The newest installed kernel stays even when it is not the running one:
	// an upgrade staged for the next reboot must survive the purge.
	var newest string
	for _, pkg := range versioned {
		if newest == "" || kernelVersionLess(newest, pkg) {
			newest = pkg
		}
	}

	var old []string
	for _, pkg := range versioned {
		if strings.Contains(pkg, running) || pkg == newest {
			continue
		}
		old = append(old, pkg)
	}

	if len(old) == 0 {
		e.Log.Logf("no old kernels to remove")
		return nil
	}

	e.Log.Logf("purging %d old kernel package(s): %s", len(old), strings.Join(old, " "))
	args := append([]string{"-y", "purge"}, old...)
	return cmdexec.Run(e.Ctx, e.Log.Writer(), "apt-get", args...)
}

// kernelVersionLess orders kernel package names by the numeric components
// embedded in them (5.4.0-42 < 5.15.0-3). Non-numeric text only breaks
// ties by length.
func kernelVersionLess(a, b string) bool {
	av, bv := numericChunks(a), numericChunks(b)
	for i := 0; i < len(av) && i < len(bv); i++ {
		if av[i] != bv[i] {
			return av[i] < bv[i]
		}
	}
	return len(av) < len(bv)
}

func numericChunks(s string) []int {
	var out []int
	n, in := 0, false
	for _, r := range s {
		if unicode.IsDigit(r) {
			n = n*10 + int(r-'0')
			in = true
			continue
		}
		if in {
			out = append(out, n)
			n, in = 0, false
		}
	}
	if in {
		out = append(out, n)
	}
	return out
}

// kernelRelease returns the running kernel version (uname -r).
func kernelRelease() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}
	return unix.ByteSliceToString(uts.Release[:])
}

func nonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
